package formatter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var (
	naive = time.Date(2024, 3, 1, 2, 3, 4, 0, time.UTC)
	aware = time.Date(2024, 3, 1, 2, 3, 4, 0, time.UTC)
)

func TestFormatterDefault(t *testing.T) {
	dtf := NewDefault()

	assert.Equal(t, YearMonthDayHourMinuteSecond, dtf.ActivePattern())
	assert.Equal(t, "2024-03-01 02:03:04", dtf.FormatDefault(aware))
	assert.Equal(t, "2024-03-01 02:03:04", dtf.Format(aware, YearMonthDayHourMinuteSecond))
	assert.Equal(t, "2024-03-01 02:03:04", dtf.FormatNaiveDefault(naive))
	assert.Equal(t, "2024-03-01 02:03:04", dtf.FormatNaive(naive, YearMonthDayHourMinuteSecond))
}

func TestFormatterWithPattern(t *testing.T) {
	dtf := New(YearMonthDay)
	rebound := dtf.WithPattern(HourMinute)

	assert.Equal(t, YearMonthDay, dtf.ActivePattern())
	assert.Equal(t, HourMinute, rebound.ActivePattern())

	assert.Equal(t, "2024-03-01", dtf.FormatDefault(aware))
	assert.Equal(t, "02:03", rebound.FormatDefault(aware))
}

func TestFormatPatterns(t *testing.T) {
	tests := []struct {
		pattern Pattern
		at      time.Time
		want    string
	}{
		{YearMonthDay, naive, "2024-03-01"},
		{MonthDayYear, naive, "03/01/2024"},
		{DayMonthYear, naive, "01-03-2024"},
		{YearMonthDayHourMinute, naive, "2024-03-01 02:03"},
		{YearMonthDayHourMinuteSecond, naive, "2024-03-01 02:03:04"},
		{YearMonthDayHourMinuteSecondMillis, time.Date(2024, 3, 1, 2, 3, 4, 789000000, time.UTC), "2024-03-01 02:03:04.789"},
		{YearMonthDayHourMinuteSecondMillis, naive, "2024-03-01 02:03:04.000"},
		{HourMinute, naive, "02:03"},
		{HourMinuteSecond, naive, "02:03:04"},
		{MonthNameFull, naive, "March"},
		{MonthNameAbbreviated, naive, "Mar"},
		{WeekdayNameFull, naive, "Friday"},
		{WeekdayNameAbbreviated, naive, "Fri"},
		{MeridiemIndicator, naive, "AM"},
		{MeridiemIndicator, time.Date(2024, 3, 1, 12, 3, 4, 0, time.UTC), "PM"},
		{MeridiemIndicator, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), "AM"},
		{EpochSeconds, naive, "1709258584"},
		{EpochSeconds, time.Date(1969, 12, 31, 23, 59, 59, 0, time.UTC), "-1"},
		{EpochSeconds, time.Unix(0, 0), "0"},
	}

	for _, tt := range tests {
		t.Run(tt.pattern.Name()+"/"+tt.want, func(t *testing.T) {
			dtf := New(tt.pattern)

			assert.Equal(t, tt.want, dtf.FormatDefault(tt.at))
			assert.Equal(t, tt.want, dtf.Format(tt.at, tt.pattern))
			assert.Equal(t, tt.want, dtf.FormatNaiveDefault(tt.at))
			assert.Equal(t, tt.want, dtf.FormatNaive(tt.at, tt.pattern))
		})
	}
}

func TestFormatConvertsToUTC(t *testing.T) {
	cet := time.FixedZone("CET", 3600)
	at := time.Date(2024, 3, 1, 3, 3, 4, 0, cet)

	dtf := NewDefault()

	assert.Equal(t, "2024-03-01 02:03:04", dtf.FormatDefault(at))
	assert.Equal(t, "1709258584", dtf.Format(at, EpochSeconds))
}

func TestFormatNaiveIgnoresLocation(t *testing.T) {
	cet := time.FixedZone("CET", 3600)
	at := time.Date(2024, 3, 1, 2, 3, 4, 0, cet)

	dtf := NewDefault()

	assert.Equal(t, "2024-03-01 02:03:04", dtf.FormatNaiveDefault(at))
	assert.Equal(t, "1709258584", dtf.FormatNaive(at, EpochSeconds))
	assert.Equal(t, naive, Naive(at))
}

func TestAppendFormat(t *testing.T) {
	dtf := NewDefault()

	b := dtf.AppendFormat([]byte("at "), naive, HourMinuteSecond)
	assert.Equal(t, "at 02:03:04", string(b))

	b = dtf.AppendFormat([]byte("epoch "), naive, EpochSeconds)
	assert.Equal(t, "epoch 1709258584", string(b))
}
