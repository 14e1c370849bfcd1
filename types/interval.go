// Package types provides Go representations of Oracle column values.
package types

import (
	"database/sql/driver"
	"fmt"
	"strings"

	"github.com/connerohnesorge/oradb-go/internal/scan"
)

// IntervalDS represents an Oracle INTERVAL DAY TO SECOND value.
//
// The value carries five signed components (days, hours, minutes, seconds,
// nanoseconds) plus two display precisions. The leading field precision
// controls zero padding of the day field and the fractional second precision
// controls how many fractional digits String renders; neither participates
// in comparison, so use Equal rather than == when comparing values.
//
// All components must be zero or positive for a positive interval, and zero
// or negative for a negative one. Constructors perform no range validation;
// out-of-domain components only degrade the textual form.
//
// Arithmetic methods are deliberately not provided. Convert with Duration
// and IntervalDSFromDuration when sums or differences are needed.
type IntervalDS struct {
	days        int32
	hours       int32
	minutes     int32
	seconds     int32
	nanoseconds int32
	lfprec      uint8
	fsprec      uint8
}

// fsecScale maps a fractional second precision in [1,9] to the divisor that
// truncates a nanosecond magnitude to that many leading digits. Only the
// nine enumerated levels are defined; any other precision omits the
// fraction entirely.
var fsecScale = [10]int32{
	0,
	100000000,
	10000000,
	1000000,
	100000,
	10000,
	1000,
	100,
	10,
	1,
}

// NewIntervalDS creates a new IntervalDS with both precisions set to 9.
//
// Valid component ranges are days and nanoseconds in [-999999999,
// 999999999], hours in [-23, 23], minutes and seconds in [-59, 59].
func NewIntervalDS(days, hours, minutes, seconds, nanoseconds int32) IntervalDS {
	return IntervalDS{
		days:        days,
		hours:       hours,
		minutes:     minutes,
		seconds:     seconds,
		nanoseconds: nanoseconds,
		lfprec:      9,
		fsprec:      9,
	}
}

// AndPrec returns a copy of the interval with the leading field precision
// and fractional second precision replaced. Both belong in [0, 9]; the
// precisions affect only the textual representation, never comparison.
func (i IntervalDS) AndPrec(lfprec, fsprec uint8) IntervalDS {
	i.lfprec = lfprec
	i.fsprec = fsprec
	return i
}

// Days returns the days component
func (i IntervalDS) Days() int32 {
	return i.days
}

// Hours returns the hours component
func (i IntervalDS) Hours() int32 {
	return i.hours
}

// Minutes returns the minutes component
func (i IntervalDS) Minutes() int32 {
	return i.minutes
}

// Seconds returns the seconds component
func (i IntervalDS) Seconds() int32 {
	return i.seconds
}

// Nanoseconds returns the nanoseconds component
func (i IntervalDS) Nanoseconds() int32 {
	return i.nanoseconds
}

// LeadingPrecision returns the leading field precision
func (i IntervalDS) LeadingPrecision() uint8 {
	return i.lfprec
}

// FractionalPrecision returns the fractional second precision
func (i IntervalDS) FractionalPrecision() uint8 {
	return i.fsprec
}

// Equal reports whether both intervals hold the same five components.
// Precisions are ignored.
func (i IntervalDS) Equal(other IntervalDS) bool {
	return i.days == other.days &&
		i.hours == other.hours &&
		i.minutes == other.minutes &&
		i.seconds == other.seconds &&
		i.nanoseconds == other.nanoseconds
}

// String renders the canonical form <sign><days> <hh>:<mm>:<ss>[.<frac>].
// The day field is zero padded to the leading field precision when it is in
// [2, 9] and printed at natural width otherwise. The fraction holds exactly
// fractional-second-precision digits, truncated toward zero, and is omitted
// when the precision is outside [1, 9].
func (i IntervalDS) String() string {
	var b strings.Builder
	if i.days < 0 || i.hours < 0 || i.minutes < 0 || i.seconds < 0 || i.nanoseconds < 0 {
		b.WriteByte('-')
	} else {
		b.WriteByte('+')
	}
	if 2 <= i.lfprec && i.lfprec <= 9 {
		fmt.Fprintf(&b, "%0*d", int(i.lfprec), abs32(i.days))
	} else {
		fmt.Fprintf(&b, "%d", abs32(i.days))
	}
	fmt.Fprintf(&b, " %02d:%02d:%02d", abs32(i.hours), abs32(i.minutes), abs32(i.seconds))
	if 1 <= i.fsprec && i.fsprec <= 9 {
		fmt.Fprintf(&b, ".%0*d", int(i.fsprec), abs32(i.nanoseconds)/fsecScale[i.fsprec])
	}
	return b.String()
}

// ParseIntervalDS parses the canonical textual form
//
//	[+-]days hh:mm:ss[.fraction]
//
// The leading field precision is taken from the day field's digit count and
// the fractional second precision from the fraction's digit count, clamped
// at 9; fractional digits beyond the ninth are discarded by truncation.
// Any missing digit run, missing delimiter, or trailing input returns a
// *ParseError and no value.
func ParseIntervalDS(s string) (IntervalDS, error) {
	sc := scan.New(s)
	minus := false
	switch c, _ := sc.Char(); c {
	case '+':
		sc.Next()
	case '-':
		minus = true
		sc.Next()
	}
	days, ok := sc.ReadDigits()
	if !ok {
		return IntervalDS{}, newParseError("IntervalDS")
	}
	lfprec := sc.NDigits()
	if c, ok := sc.Char(); !ok || c != ' ' {
		return IntervalDS{}, newParseError("IntervalDS")
	}
	sc.Next()
	hours, ok := sc.ReadDigits()
	if !ok {
		return IntervalDS{}, newParseError("IntervalDS")
	}
	if c, ok := sc.Char(); !ok || c != ':' {
		return IntervalDS{}, newParseError("IntervalDS")
	}
	sc.Next()
	minutes, ok := sc.ReadDigits()
	if !ok {
		return IntervalDS{}, newParseError("IntervalDS")
	}
	if c, ok := sc.Char(); !ok || c != ':' {
		return IntervalDS{}, newParseError("IntervalDS")
	}
	sc.Next()
	seconds, ok := sc.ReadDigits()
	if !ok {
		return IntervalDS{}, newParseError("IntervalDS")
	}
	var nsecs uint64
	fsprec := 0
	if c, ok := sc.Char(); ok && c == '.' {
		sc.Next()
		nsecs, ok = sc.ReadDigits()
		if !ok {
			return IntervalDS{}, newParseError("IntervalDS")
		}
		fsprec = sc.NDigits()
		if fsprec < 9 {
			nsecs *= pow10(9 - fsprec)
		} else if fsprec > 9 {
			nsecs /= pow10(fsprec - 9)
			fsprec = 9
		}
	}
	if _, ok := sc.Char(); ok {
		return IntervalDS{}, newParseError("IntervalDS")
	}
	it := IntervalDS{
		days:        int32(days),
		hours:       int32(hours),
		minutes:     int32(minutes),
		seconds:     int32(seconds),
		nanoseconds: int32(nsecs),
		lfprec:      uint8(lfprec),
		fsprec:      uint8(fsprec),
	}
	if minus {
		it.days = -it.days
		it.hours = -it.hours
		it.minutes = -it.minutes
		it.seconds = -it.seconds
		it.nanoseconds = -it.nanoseconds
	}
	return it, nil
}

// MarshalText implements encoding.TextMarshaler
func (i IntervalDS) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (i *IntervalDS) UnmarshalText(text []byte) error {
	it, err := ParseIntervalDS(string(text))
	if err != nil {
		return err
	}
	*i = it
	return nil
}

// Value implements driver.Valuer
func (i IntervalDS) Value() (driver.Value, error) {
	return i.String(), nil
}

// Scan implements sql.Scanner
func (i *IntervalDS) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*i = IntervalDS{}
		return nil
	case string:
		it, err := ParseIntervalDS(v)
		if err != nil {
			return err
		}
		*i = it
		return nil
	case []byte:
		it, err := ParseIntervalDS(string(v))
		if err != nil {
			return err
		}
		*i = it
		return nil
	case IntervalDS:
		*i = v
		return nil
	case *IntervalDS:
		*i = *v
		return nil
	default:
		return fmt.Errorf("cannot scan %T into IntervalDS", value)
	}
}

// abs32 returns the absolute value of a 32-bit component
func abs32(n int32) int32 {
	if n < 0 {
		return -n
	}
	return n
}

// pow10 returns 10^n for small non-negative n
func pow10(n int) uint64 {
	p := uint64(1)
	for ; n > 0; n-- {
		p *= 10
	}
	return p
}
