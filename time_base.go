package avcore

import (
	"fmt"
	"math"
	"time"
)

// TimeBase is the rational unit (seconds per tick) in which the timestamps
// of a stream are expressed. It is an immutable value type; two time bases
// are equal only when both components match (1/25 != 2/50).
type TimeBase struct {
	num uint32
	den uint32
}

// NewTimeBase creates a time base num/den.
//
// Panics if den is zero: a zero denominator encodes a meaningless rate and
// passing one is a caller-side contract violation, not a recoverable error.
func NewTimeBase(num, den uint32) TimeBase {
	if den == 0 {
		panic("zero time base denominator")
	}
	return TimeBase{num: num, den: den}
}

// Num returns the numerator of the time base.
func (tb TimeBase) Num() uint32 {
	return tb.num
}

// Den returns the denominator of the time base.
func (tb TimeBase) Den() uint32 {
	return tb.den
}

// String returns the time base as "num/den".
func (tb TimeBase) String() string {
	return fmt.Sprintf("%d/%d", tb.num, tb.den)
}

// NoPTS is the reserved tick value marking a timestamp with no defined
// value. It sits below any valid tick count.
const NoPTS int64 = math.MinInt64

// Timestamp is a signed tick count paired with the time base it is
// expressed in. Timestamps in different time bases are not directly
// comparable; converting between bases is an external concern.
//
// A timestamp may be null ("unknown"); null never surfaces as a near-zero
// tick count.
type Timestamp struct {
	ticks int64
	tb    TimeBase
	valid bool
}

// NewTimestamp creates a timestamp of the given ticks in the given base.
// Ticks at the NoPTS sentinel collapse to the null timestamp.
func NewTimestamp(ticks int64, tb TimeBase) Timestamp {
	if ticks == NoPTS {
		return NullTimestamp(tb)
	}
	return Timestamp{ticks: ticks, tb: tb, valid: true}
}

// NullTimestamp returns the explicit "unknown" timestamp in the given base.
func NullTimestamp(tb TimeBase) Timestamp {
	return Timestamp{tb: tb}
}

// IsNull reports whether the timestamp has no defined value.
func (ts Timestamp) IsNull() bool {
	return !ts.valid
}

// Ticks returns the tick count and whether it is defined.
func (ts Timestamp) Ticks() (int64, bool) {
	if !ts.valid {
		return 0, false
	}
	return ts.ticks, true
}

// TimeBase returns the time base the timestamp is expressed in.
func (ts Timestamp) TimeBase() TimeBase {
	return ts.tb
}

// Duration converts the timestamp to a time.Duration from the stream
// origin. The second return value is false for a null timestamp.
func (ts Timestamp) Duration() (time.Duration, bool) {
	if !ts.valid {
		return 0, false
	}
	secs := float64(ts.ticks) * float64(ts.tb.num) / float64(ts.tb.den)
	return time.Duration(secs * float64(time.Second)), true
}

// String returns "ticks@num/den" or "null@num/den" for a null timestamp.
func (ts Timestamp) String() string {
	if !ts.valid {
		return fmt.Sprintf("null@%s", ts.tb)
	}
	return fmt.Sprintf("%d@%s", ts.ticks, ts.tb)
}
