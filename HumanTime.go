package gotime

import (
	"fmt"
	"strings"
	"time"

	"github.com/ordishs/gotime/timeunit"
)

var humanUnits = []struct {
	unit timeunit.TimeUnit
	name string
}{
	{timeunit.Days, "day"},
	{timeunit.Hours, "hour"},
	{timeunit.Minutes, "minute"},
	{timeunit.Seconds, "second"},
}

// HumanTime spells out d from its largest non-zero unit down to seconds, e.g.
// "1 day 2 hours 3 minutes 4 seconds". Anything under a second is "0 seconds".
func HumanTime(d time.Duration) string {
	if d < 0 {
		d = -d
	}

	// Nanoseconds only divide down, they cannot overflow.
	remaining, _ := timeunit.Nanoseconds.ToSeconds(uint64(d))

	var parts []string

	for _, hu := range humanUnits {
		per, _ := hu.unit.ToSeconds(1)

		n := remaining / per
		remaining -= n * per

		if n == 0 && len(parts) == 0 {
			continue
		}

		part := fmt.Sprintf("%d %s", n, hu.name)
		if n > 1 {
			part += "s"
		}
		parts = append(parts, part)
	}

	if len(parts) == 0 {
		return "0 seconds"
	}

	return strings.Join(parts, " ")
}
