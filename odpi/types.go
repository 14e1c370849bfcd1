// Package odpi exposes the native Oracle client record layer consumed by
// fetch code: column type tags, column descriptors, and the fixed-layout
// structs the client runtime decodes column data into. The package performs
// no decoding itself; records arrive here already parsed by the client
// library.
package odpi

// Oracle column type tags
const (
	TypeNone = iota
	TypeVarchar
	TypeNvarchar
	TypeChar
	TypeNchar
	TypeRowid
	TypeRaw
	TypeNativeFloat
	TypeNativeDouble
	TypeNativeInt
	TypeNumber
	TypeDate
	TypeTimestamp
	TypeTimestampTZ
	TypeTimestampLTZ
	TypeIntervalDS
	TypeIntervalYM
	TypeCLOB
	TypeNCLOB
	TypeBLOB
	TypeBFILE
	TypeLong
	TypeLongRaw
	TypeBoolean
)

// TypeInfo describes a fetched column or bind position
type TypeInfo struct {
	Name       string
	OracleType uint32
	Precision  uint8 // leading field precision for interval types, digits for NUMBER
	Scale      uint8 // fractional second precision for interval types, scale for NUMBER
}

// IntervalDS mirrors the fixed layout of the client runtime's day-to-second
// interval record. FSeconds holds the fractional seconds in nanoseconds.
type IntervalDS struct {
	Days     int32
	Hours    int32
	Minutes  int32
	Seconds  int32
	FSeconds int32
}

// IntervalYM mirrors the fixed layout of the client runtime's year-to-month
// interval record.
type IntervalYM struct {
	Years  int32
	Months int32
}
