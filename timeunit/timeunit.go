// Package timeunit converts integer magnitudes between time granularities,
// from nanoseconds up to days, and sleeps for them.
//
// Every conversion normalises to nanoseconds first and then divides down, so
// a result is truncated exactly once. Multiplications are checked: a
// magnitude that does not fit returns an error wrapping ErrOverflow.
package timeunit

import (
	"math"
	"math/bits"
	"strings"
	"time"

	"github.com/pkg/errors"
	"google.golang.org/protobuf/types/known/durationpb"
)

// TimeUnit is a time granularity, ordered from Nanoseconds to Days.
type TimeUnit int

const (
	Nanoseconds TimeUnit = iota
	Microseconds
	Milliseconds
	Seconds
	Minutes
	Hours
	Days
)

const (
	Thousand uint64 = 1000

	SecondsPerMinute uint64 = 60
	MinutesPerHour   uint64 = 60
	HoursPerDay      uint64 = 24

	NanosPerNanosecond  uint64 = 1
	NanosPerMicrosecond        = Thousand * NanosPerNanosecond
	NanosPerMillisecond        = Thousand * NanosPerMicrosecond
	NanosPerSecond             = Thousand * NanosPerMillisecond
	NanosPerMinute             = SecondsPerMinute * NanosPerSecond
	NanosPerHour               = MinutesPerHour * NanosPerMinute
	NanosPerDay                = HoursPerDay * NanosPerHour
)

var (
	ErrOverflow    = errors.New("timeunit: magnitude overflows")
	ErrInvalidUnit = errors.New("timeunit: invalid unit")
)

var units = [...]struct {
	name  string
	scale uint64
}{
	Nanoseconds:  {"Nanoseconds", NanosPerNanosecond},
	Microseconds: {"Microseconds", NanosPerMicrosecond},
	Milliseconds: {"Milliseconds", NanosPerMillisecond},
	Seconds:      {"Seconds", NanosPerSecond},
	Minutes:      {"Minutes", NanosPerMinute},
	Hours:        {"Hours", NanosPerHour},
	Days:         {"Days", NanosPerDay},
}

var (
	byName      = make(map[string]TimeUnit, len(units))
	byLowerName = make(map[string]TimeUnit, len(units))
)

func init() {
	for i, u := range units {
		byName[u.name] = TimeUnit(i)
		byLowerName[strings.ToLower(u.name)] = TimeUnit(i)
	}
}

// Units returns every unit from finest to coarsest.
func Units() []TimeUnit {
	all := make([]TimeUnit, len(units))
	for i := range units {
		all[i] = TimeUnit(i)
	}

	return all
}

// IsValid reports whether u is one of the seven units.
func (u TimeUnit) IsValid() bool {
	return u >= 0 && int(u) < len(units)
}

// Scale returns the number of nanoseconds in one u, or 0 for an invalid unit.
func (u TimeUnit) Scale() uint64 {
	if !u.IsValid() {
		return 0
	}

	return units[u].scale
}

// Value returns the identifier of u, e.g. "Milliseconds".
func (u TimeUnit) Value() string {
	if !u.IsValid() {
		return ""
	}

	return units[u].name
}

func (u TimeUnit) String() string {
	if !u.IsValid() {
		return "TimeUnit(invalid)"
	}

	return u.Value()
}

// FromName returns the unit called s. The match is case-sensitive.
func FromName(s string) (TimeUnit, bool) {
	u, ok := byName[s]
	return u, ok
}

// FromNameCaseInsensitive is FromName ignoring case, so "days", "DAYS" and
// "Days" all match.
func FromNameCaseInsensitive(s string) (TimeUnit, bool) {
	u, ok := byLowerName[strings.ToLower(s)]
	return u, ok
}

// ToNanos returns amount u in nanoseconds.
func (u TimeUnit) ToNanos(amount uint64) (uint64, error) {
	if !u.IsValid() {
		return 0, ErrInvalidUnit
	}

	hi, lo := bits.Mul64(amount, units[u].scale)
	if hi != 0 {
		return 0, errors.Wrapf(ErrOverflow, "%d %s in nanoseconds", amount, u)
	}

	return lo, nil
}

// Convert returns amount u expressed in the unit to, truncated toward zero.
func (u TimeUnit) Convert(amount uint64, to TimeUnit) (uint64, error) {
	if !to.IsValid() {
		return 0, ErrInvalidUnit
	}

	nanos, err := u.ToNanos(amount)
	if err != nil {
		return 0, err
	}

	return nanos / units[to].scale, nil
}

func (u TimeUnit) ToMicros(amount uint64) (uint64, error) {
	return u.Convert(amount, Microseconds)
}

func (u TimeUnit) ToMillis(amount uint64) (uint64, error) {
	return u.Convert(amount, Milliseconds)
}

func (u TimeUnit) ToSeconds(amount uint64) (uint64, error) {
	return u.Convert(amount, Seconds)
}

func (u TimeUnit) ToMinutes(amount uint64) (uint64, error) {
	return u.Convert(amount, Minutes)
}

func (u TimeUnit) ToHours(amount uint64) (uint64, error) {
	return u.Convert(amount, Hours)
}

func (u TimeUnit) ToDays(amount uint64) (uint64, error) {
	return u.Convert(amount, Days)
}

// ToDuration returns amount u as a time.Duration. Minutes, hours and days are
// built from whole seconds.
func (u TimeUnit) ToDuration(amount uint64) (time.Duration, error) {
	var (
		d   time.Duration
		err error
	)

	switch u {
	case Nanoseconds:
		d, err = durationOf(amount, time.Nanosecond)
	case Microseconds:
		d, err = durationOf(amount, time.Microsecond)
	case Milliseconds:
		d, err = durationOf(amount, time.Millisecond)
	case Seconds:
		d, err = durationOf(amount, time.Second)
	case Minutes, Hours, Days:
		hi, secs := bits.Mul64(amount, units[u].scale/NanosPerSecond)
		if hi != 0 {
			return 0, errors.Wrapf(ErrOverflow, "%d %s in seconds", amount, u)
		}
		d, err = durationOf(secs, time.Second)
	default:
		return 0, ErrInvalidUnit
	}

	if err != nil {
		return 0, errors.Wrapf(err, "%d %s as time.Duration", amount, u)
	}

	return d, nil
}

func durationOf(n uint64, unit time.Duration) (time.Duration, error) {
	if n > uint64(math.MaxInt64/int64(unit)) {
		return 0, ErrOverflow
	}

	return time.Duration(n) * unit, nil
}

// ToExternalDuration returns amount u as a protobuf Duration. amount is
// reinterpreted as signed. Minutes, hours and days are built from whole
// seconds, so magnitudes beyond the time.Duration range are representable up
// to the protobuf limit of +-10000 years.
func (u TimeUnit) ToExternalDuration(amount uint64) (*durationpb.Duration, error) {
	d, err := u.external(int64(amount))
	if err != nil {
		return nil, err
	}

	if err := d.CheckValid(); err != nil {
		return nil, errors.Wrapf(ErrOverflow, "%d %s as external duration: %v", amount, u, err)
	}

	return d, nil
}

func (u TimeUnit) external(n int64) (*durationpb.Duration, error) {
	switch u {
	case Nanoseconds:
		return externalNanos(n), nil
	case Microseconds:
		return externalMicros(n), nil
	case Milliseconds:
		return externalMillis(n), nil
	case Seconds:
		return externalSeconds(n), nil
	case Minutes:
		return externalMinutes(n)
	case Hours:
		return externalHours(n)
	case Days:
		return externalDays(n)
	default:
		return nil, ErrInvalidUnit
	}
}

func externalNanos(n int64) *durationpb.Duration {
	return externalFraction(n, int64(NanosPerSecond))
}

func externalMicros(n int64) *durationpb.Duration {
	return externalFraction(n, int64(NanosPerSecond/NanosPerMicrosecond))
}

func externalMillis(n int64) *durationpb.Duration {
	return externalFraction(n, int64(NanosPerSecond/NanosPerMillisecond))
}

func externalSeconds(n int64) *durationpb.Duration {
	return &durationpb.Duration{Seconds: n}
}

func externalMinutes(n int64) (*durationpb.Duration, error) {
	return externalWholeSeconds(n, int64(SecondsPerMinute))
}

func externalHours(n int64) (*durationpb.Duration, error) {
	return externalWholeSeconds(n, int64(MinutesPerHour*SecondsPerMinute))
}

func externalDays(n int64) (*durationpb.Duration, error) {
	return externalWholeSeconds(n, int64(HoursPerDay*MinutesPerHour*SecondsPerMinute))
}

// externalFraction splits n parts-of-a-second into seconds and nanos. Both
// carry the sign of n.
func externalFraction(n int64, perSecond int64) *durationpb.Duration {
	return &durationpb.Duration{
		Seconds: n / perSecond,
		Nanos:   int32((n % perSecond) * (int64(NanosPerSecond) / perSecond)),
	}
}

func externalWholeSeconds(n int64, secondsPerUnit int64) (*durationpb.Duration, error) {
	if n > math.MaxInt64/secondsPerUnit || n < math.MinInt64/secondsPerUnit {
		return nil, errors.Wrapf(ErrOverflow, "%d x %ds as signed seconds", n, secondsPerUnit)
	}

	return &durationpb.Duration{Seconds: n * secondsPerUnit}, nil
}
