package gotime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHumanTime(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0 seconds"},
		{999 * time.Millisecond, "0 seconds"},
		{time.Second, "1 second"},
		{59 * time.Second, "59 seconds"},
		{61 * time.Second, "1 minute 1 second"},
		{2*time.Hour + 4*time.Second, "2 hours 0 minute 4 seconds"},
		{26*time.Hour + 3*time.Minute + 4*time.Second, "1 day 2 hours 3 minutes 4 seconds"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, HumanTime(tt.d))
		})
	}
}
