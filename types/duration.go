package types

import (
	"time"
)

// Duration collapses the interval into a time.Duration. A time.Duration
// covers about 290 years, so day counts beyond roughly 106 million overflow
// the int64 nanosecond range.
func (i IntervalDS) Duration() time.Duration {
	return time.Duration(i.days)*24*time.Hour +
		time.Duration(i.hours)*time.Hour +
		time.Duration(i.minutes)*time.Minute +
		time.Duration(i.seconds)*time.Second +
		time.Duration(i.nanoseconds)
}

// IntervalDSFromDuration splits a duration into sign-consistent interval
// components with both precisions set to 9.
func IntervalDSFromDuration(d time.Duration) IntervalDS {
	minus := d < 0
	if minus {
		d = -d
	}
	nsec := int64(d)
	days := int32(nsec / (24 * int64(time.Hour)))
	nsec %= 24 * int64(time.Hour)
	hours := int32(nsec / int64(time.Hour))
	nsec %= int64(time.Hour)
	minutes := int32(nsec / int64(time.Minute))
	nsec %= int64(time.Minute)
	seconds := int32(nsec / int64(time.Second))
	nanoseconds := int32(nsec % int64(time.Second))
	if minus {
		days, hours, minutes = -days, -hours, -minutes
		seconds, nanoseconds = -seconds, -nanoseconds
	}
	return NewIntervalDS(days, hours, minutes, seconds, nanoseconds)
}
