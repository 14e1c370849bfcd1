package types

import (
	"github.com/connerohnesorge/oradb-go/odpi"
)

// IntervalDSFromODPI converts a native day-to-second interval record
// fetched by the client runtime into an IntervalDS. Components are copied
// verbatim. Precisions come from the column descriptor when it tags an
// INTERVAL DAY TO SECOND column; any other descriptor leaves both at 0.
func IntervalDSFromODPI(rec odpi.IntervalDS, info odpi.TypeInfo) IntervalDS {
	var lfprec, fsprec uint8
	if info.OracleType == odpi.TypeIntervalDS {
		lfprec = info.Precision
		fsprec = info.Scale
	}
	return IntervalDS{
		days:        rec.Days,
		hours:       rec.Hours,
		minutes:     rec.Minutes,
		seconds:     rec.Seconds,
		nanoseconds: rec.FSeconds,
		lfprec:      lfprec,
		fsprec:      fsprec,
	}
}
