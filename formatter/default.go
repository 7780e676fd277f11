package formatter

import (
	"sync"
	"time"
)

var (
	defaultOnce      sync.Once
	defaultFormatter Formatter
)

// Default returns the shared formatter bound to YearMonthDayHourMinuteSecond.
// It is built on first use; the returned value is a copy, so callers format
// without holding any lock.
func Default() Formatter {
	defaultOnce.Do(func() {
		defaultFormatter = NewDefault()
	})

	return defaultFormatter
}

// FormatDefault formats t with the default formatter's pattern.
func FormatDefault(t time.Time) string {
	return Default().FormatDefault(t)
}

// Format formats t with pattern using the default formatter.
func Format(t time.Time, pattern Pattern) string {
	return Default().Format(t, pattern)
}

// FormatNaiveDefault formats the naive instant t with the default formatter's pattern.
func FormatNaiveDefault(t time.Time) string {
	return Default().FormatNaiveDefault(t)
}

// FormatNaive formats the naive instant t with pattern using the default formatter.
func FormatNaive(t time.Time, pattern Pattern) string {
	return Default().FormatNaive(t, pattern)
}

// FormatNaiveUTC is FormatNaive. The wall clock of t is always read as UTC.
func FormatNaiveUTC(t time.Time, pattern Pattern) string {
	return FormatNaive(t, pattern)
}

// FormatNaiveUTCDefault is FormatNaiveDefault.
func FormatNaiveUTCDefault(t time.Time) string {
	return FormatNaiveDefault(t)
}
