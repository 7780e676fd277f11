package timeunit

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/types/known/durationpb"
)

func TestSleep(t *testing.T) {
	tests := []struct {
		unit   TimeUnit
		amount uint64
	}{
		{Milliseconds, 20},
		{Microseconds, 15_000},
		{Nanoseconds, 1_000},
	}

	for _, tt := range tests {
		t.Run(tt.unit.String(), func(t *testing.T) {
			millis, err := tt.unit.ToMillis(tt.amount)
			require.NoError(t, err)

			start := time.Now()
			require.NoError(t, tt.unit.Sleep(tt.amount))
			elapsed := time.Since(start)

			assert.GreaterOrEqual(t, elapsed, time.Duration(millis)*time.Millisecond)
		})
	}
}

func TestSleepOverflow(t *testing.T) {
	assert.ErrorIs(t, Days.Sleep(math.MaxUint64), ErrOverflow)
}

func TestSleepWith(t *testing.T) {
	var got []time.Duration

	record := func(d time.Duration) {
		got = append(got, d)
	}

	require.NoError(t, Seconds.SleepWith(3, record))
	require.NoError(t, Days.SleepWith(2, record))

	assert.Equal(t, []time.Duration{3 * time.Second, 48 * time.Hour}, got)

	err := Days.SleepWith(math.MaxUint64, record)
	assert.ErrorIs(t, err, ErrOverflow)
	assert.Len(t, got, 2, "sleep is not called on error")
}

func TestSleepWithBlocks(t *testing.T) {
	start := time.Now()
	require.NoError(t, Milliseconds.SleepWith(10, time.Sleep))
	assert.GreaterOrEqual(t, time.Since(start), 10*time.Millisecond)
}

func TestSleepWithExternal(t *testing.T) {
	var got *durationpb.Duration

	require.NoError(t, Hours.SleepWithExternal(5, func(d *durationpb.Duration) {
		got = d
	}))

	require.NotNil(t, got)
	assert.Equal(t, int64(5*3600), got.GetSeconds())
	assert.Equal(t, 5*time.Hour, got.AsDuration())
}
