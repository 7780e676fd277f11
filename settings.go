package gotime

import (
	"strconv"
	"strings"
	"time"

	"github.com/ordishs/gotime/formatter"
	"github.com/ordishs/gotime/timeunit"
	"github.com/pkg/errors"
)

var ErrInvalidSetting = errors.New("invalid setting")

// GetPattern reads a pattern given either by name ("YearMonthDay") or by
// template ("%Y-%m-%d"). found is false when the key is missing or the value
// is not a known pattern; the default is returned in both cases.
func (c *Configuration) GetPattern(key string, defaultValue ...formatter.Pattern) (formatter.Pattern, bool) {
	var def formatter.Pattern
	if len(defaultValue) > 0 {
		def = defaultValue[0]
	}

	str, ok := c.Get(key)
	if str == "" || !ok {
		return def, false
	}

	if p, ok := formatter.FromName(str); ok {
		return p, true
	}

	if p, ok := formatter.FromTemplate(str); ok {
		return p, true
	}

	return def, false
}

// GetTimeUnit reads a unit name, ignoring case.
func (c *Configuration) GetTimeUnit(key string, defaultValue ...timeunit.TimeUnit) (timeunit.TimeUnit, bool) {
	var def timeunit.TimeUnit
	if len(defaultValue) > 0 {
		def = defaultValue[0]
	}

	str, ok := c.Get(key)
	if str == "" || !ok {
		return def, false
	}

	u, ok := timeunit.FromNameCaseInsensitive(strings.TrimSpace(str))
	if !ok {
		return def, false
	}

	return u, true
}

// GetUnitDuration reads a value of the form "<amount> <unit>", for example
// "90 Seconds" or "2 days".
func (c *Configuration) GetUnitDuration(key string, defaultValue ...time.Duration) (time.Duration, bool, error) {
	str, ok := c.Get(key)
	if str == "" || !ok {
		if len(defaultValue) > 0 {
			return defaultValue[0], false, nil
		}
		return 0, false, nil
	}

	d, err := ParseUnitDuration(str)
	if err != nil {
		return 0, true, errors.Wrapf(err, "setting %s", key)
	}

	return d, true, nil
}

// ParseUnitDuration parses "<amount> <unit>" into a time.Duration.
func ParseUnitDuration(s string) (time.Duration, error) {
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return 0, errors.Wrapf(ErrInvalidSetting, "%q is not '<amount> <unit>'", s)
	}

	amount, err := strconv.ParseUint(fields[0], 10, 64)
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidSetting, "%q: %v", s, err)
	}

	u, ok := timeunit.FromNameCaseInsensitive(fields[1])
	if !ok {
		return 0, errors.Wrapf(ErrInvalidSetting, "%q: unknown unit %q", s, fields[1])
	}

	return u.ToDuration(amount)
}

// Formatter returns a formatter bound to the formatter_pattern setting,
// YearMonthDayHourMinuteSecond when it is not set.
func (c *Configuration) Formatter() formatter.Formatter {
	p, _ := c.GetPattern("formatter_pattern", formatter.YearMonthDayHourMinuteSecond)
	return formatter.New(p)
}
