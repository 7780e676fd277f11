package utils

import (
	"fmt"
	"time"

	"github.com/mgutz/ansi"
	"github.com/ordishs/gotime/timeunit"
)

// split returns how many whole units fit in nanos and what is left over.
func split(nanos uint64, unit timeunit.TimeUnit) (uint64, uint64) {
	// Converting from nanoseconds only divides, so it cannot overflow.
	whole, _ := timeunit.Nanoseconds.Convert(nanos, unit)
	return whole, nanos - whole*unit.Scale()
}

// HumanTimeUnitWithColour renders d in its coarsest units and suggests a
// colour for it: red for hours and days, orange for minutes, then blue,
// green, black and grey as d shrinks.
func HumanTimeUnitWithColour(d time.Duration) (string, string) {
	sign := ""
	if d < 0 {
		sign = "-"
		d = -d
	}

	remaining := uint64(d)

	days, remaining := split(remaining, timeunit.Days)
	hours, remaining := split(remaining, timeunit.Hours)
	minutes, remaining := split(remaining, timeunit.Minutes)

	var colour string
	var str string

	if days > 0 {
		colour = "red"
		seconds, _ := split(remaining, timeunit.Seconds)
		str = fmt.Sprintf("%dd%dh%dm%ds", days, hours, minutes, seconds)
	} else if hours > 0 {
		colour = "red"
		seconds, _ := split(remaining, timeunit.Seconds)
		str = fmt.Sprintf("%dh%dm%ds", hours, minutes, seconds)
	} else if minutes > 0 {
		colour = "orange"
		seconds, _ := split(remaining, timeunit.Seconds)
		str = fmt.Sprintf("%dm%ds", minutes, seconds)
	} else if remaining >= timeunit.NanosPerSecond {
		colour = "blue"
		str = fmt.Sprintf("%.2fs", float64(remaining)/float64(timeunit.NanosPerSecond))
	} else if remaining >= timeunit.NanosPerMillisecond {
		colour = "green"
		str = fmt.Sprintf("%.2fms", float64(remaining)/float64(timeunit.NanosPerMillisecond))
	} else if remaining >= timeunit.NanosPerMicrosecond {
		colour = "black"
		str = fmt.Sprintf("%.2fµs", float64(remaining)/float64(timeunit.NanosPerMicrosecond))
	} else {
		colour = "grey"
		str = fmt.Sprintf("%dns", remaining)
	}

	return sign + str, colour
}

func HumanTimeUnit(d time.Duration) string {
	str, _ := HumanTimeUnitWithColour(d)
	return str
}

// ansi has no names for these two.
var ansiColours = map[string]string{
	"orange": "208",
	"grey":   "245",
}

// HumanTimeUnitANSI is HumanTimeUnit wrapped in terminal colour codes.
func HumanTimeUnitANSI(d time.Duration) string {
	str, colour := HumanTimeUnitWithColour(d)
	if c, ok := ansiColours[colour]; ok {
		colour = c
	}

	return ansi.Color(str, colour)
}
