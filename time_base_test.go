package avcore

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewTimeBase(t *testing.T) {
	t.Parallel()

	tb := NewTimeBase(1, 1000)
	require.Equal(t, uint32(1), tb.Num())
	require.Equal(t, uint32(1000), tb.Den())
	require.Equal(t, "1/1000", tb.String())
}

func TestNewTimeBase_ZeroDenominator(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() {
		NewTimeBase(1, 0)
	})
}

func TestTimeBase_ComponentWiseEquality(t *testing.T) {
	t.Parallel()

	// Equality is component-wise, not cross-multiplied: 1/25 and 2/50
	// denote the same rate but are distinct time bases.
	require.Equal(t, NewTimeBase(1, 25), NewTimeBase(1, 25))
	require.NotEqual(t, NewTimeBase(1, 25), NewTimeBase(2, 50))
}

func TestNewTimestamp(t *testing.T) {
	t.Parallel()

	tb := NewTimeBase(1, 1000)

	ts := NewTimestamp(900, tb)
	require.False(t, ts.IsNull())

	ticks, ok := ts.Ticks()
	require.True(t, ok)
	require.Equal(t, int64(900), ticks)
	require.Equal(t, tb, ts.TimeBase())
}

func TestNewTimestamp_NoPTS(t *testing.T) {
	t.Parallel()

	tb := NewTimeBase(1, 90000)

	ts := NewTimestamp(NoPTS, tb)
	require.True(t, ts.IsNull())

	ticks, ok := ts.Ticks()
	require.False(t, ok)
	require.Zero(t, ticks)
	require.Equal(t, tb, ts.TimeBase())
}

func TestNullTimestamp(t *testing.T) {
	t.Parallel()

	tb := NewTimeBase(1, 25)

	ts := NullTimestamp(tb)
	require.True(t, ts.IsNull())
	require.Equal(t, tb, ts.TimeBase())

	dur, ok := ts.Duration()
	require.False(t, ok)
	require.Zero(t, dur)
}

func TestTimestamp_Duration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		ticks    int64
		num, den uint32
		expected time.Duration
	}{
		{name: "milliseconds", ticks: 1500, num: 1, den: 1000, expected: 1500 * time.Millisecond},
		{name: "mpeg_90khz", ticks: 90000, num: 1, den: 90000, expected: time.Second},
		{name: "pal_frames", ticks: 50, num: 1, den: 25, expected: 2 * time.Second},
		{name: "scaled_numerator", ticks: 3, num: 1001, den: 30000, expected: time.Duration(3 * 1001.0 / 30000.0 * float64(time.Second))},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ts := NewTimestamp(tt.ticks, NewTimeBase(tt.num, tt.den))

			dur, ok := ts.Duration()
			require.True(t, ok)
			require.Equal(t, tt.expected, dur)
		})
	}
}

func TestTimestamp_String(t *testing.T) {
	t.Parallel()

	tb := NewTimeBase(1, 1000)
	require.Equal(t, "900@1/1000", NewTimestamp(900, tb).String())
	require.Equal(t, "null@1/1000", NullTimestamp(tb).String())
}
