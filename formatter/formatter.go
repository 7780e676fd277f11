package formatter

import (
	"strconv"
	"time"

	"github.com/ncruces/go-strftime"
)

// Formatter renders instants with an activated Pattern. The zero value uses
// YearMonthDay; use NewDefault for the usual date-time pattern.
type Formatter struct {
	pattern Pattern
}

// New returns a Formatter bound to pattern.
func New(pattern Pattern) Formatter {
	return Formatter{pattern: pattern}
}

// NewDefault returns a Formatter bound to YearMonthDayHourMinuteSecond.
func NewDefault() Formatter {
	return New(YearMonthDayHourMinuteSecond)
}

// WithPattern returns a new Formatter bound to pattern. f is left as it was.
func (f Formatter) WithPattern(pattern Pattern) Formatter {
	return New(pattern)
}

// ActivePattern returns the pattern f was bound to.
func (f Formatter) ActivePattern() Pattern {
	return f.pattern
}

// FormatDefault formats t with the activated pattern.
func (f Formatter) FormatDefault(t time.Time) string {
	return f.Format(t, f.pattern)
}

// Format renders t, converted to UTC, with pattern.
func (f Formatter) Format(t time.Time, pattern Pattern) string {
	return string(f.AppendFormat(nil, t, pattern))
}

// AppendFormat is like Format but appends to dst.
func (f Formatter) AppendFormat(dst []byte, t time.Time, pattern Pattern) []byte {
	t = t.UTC()

	if pattern == EpochSeconds {
		return strconv.AppendInt(dst, t.Unix(), 10)
	}

	return strftime.AppendFormat(dst, pattern.Template(), t)
}

// FormatNaiveDefault formats the naive instant t with the activated pattern.
func (f Formatter) FormatNaiveDefault(t time.Time) string {
	return f.FormatNaive(t, f.pattern)
}

// FormatNaive treats the wall clock of t as UTC and formats it with pattern.
// The location of t is ignored, no offset is applied.
func (f Formatter) FormatNaive(t time.Time, pattern Pattern) string {
	return f.Format(Naive(t), pattern)
}

// Naive re-attaches the wall clock fields of t to UTC.
func Naive(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}
