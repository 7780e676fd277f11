package utils

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatting(t *testing.T) {
	for i := 0; i < 15; i++ {
		dur := time.Duration(3.455555 * math.Pow(10, float64(i)))
		t.Logf("%2d  %12v  %22s", i, dur, HumanTimeUnit(dur))
	}
}

func TestHumanTimeUnitWithColour(t *testing.T) {
	tests := []struct {
		d      time.Duration
		str    string
		colour string
	}{
		{0, "0ns", "grey"},
		{999 * time.Nanosecond, "999ns", "grey"},
		{1500 * time.Nanosecond, "1.50µs", "black"},
		{12346 * time.Microsecond, "12.35ms", "green"},
		{3500 * time.Millisecond, "3.50s", "blue"},
		{2*time.Minute + 5*time.Second, "2m5s", "orange"},
		{3*time.Hour + 4*time.Minute + 5*time.Second, "3h4m5s", "red"},
		{26*time.Hour + 3*time.Minute + 4*time.Second, "1d2h3m4s", "red"},
		{-1500 * time.Millisecond, "-1.50s", "blue"},
	}

	for _, tt := range tests {
		t.Run(tt.str, func(t *testing.T) {
			str, colour := HumanTimeUnitWithColour(tt.d)
			assert.Equal(t, tt.str, str)
			assert.Equal(t, tt.colour, colour)
			assert.Equal(t, tt.str, HumanTimeUnit(tt.d))
		})
	}
}

func TestHumanTimeUnitANSI(t *testing.T) {
	s := HumanTimeUnitANSI(2 * time.Minute)
	assert.Contains(t, s, "2m0s")
	assert.Contains(t, s, "\x1b[")
}

func TestThousands(t *testing.T) {
	assert.Equal(t, "0", Thousands(0))
	assert.Equal(t, "999", Thousands(999))
	assert.Equal(t, "24,576", Thousands(24576))
	assert.Equal(t, "1,709,258,584", Thousands(1709258584))
}
