package timeunit

import (
	"time"

	"github.com/pkg/errors"
	"google.golang.org/protobuf/types/known/durationpb"
)

// Sleep blocks the calling goroutine for amount u, measured in whole
// milliseconds. It cannot be interrupted.
func (u TimeUnit) Sleep(amount uint64) error {
	millis, err := u.ToMillis(amount)
	if err != nil {
		return err
	}

	d, err := durationOf(millis, time.Millisecond)
	if err != nil {
		return errors.Wrapf(err, "sleeping %d %s", amount, u)
	}

	time.Sleep(d)

	return nil
}

// SleepWith hands amount u, as a time.Duration, to sleep. Passing time.Sleep
// blocks; a test double can record the duration instead.
func (u TimeUnit) SleepWith(amount uint64, sleep func(time.Duration)) error {
	d, err := u.ToDuration(amount)
	if err != nil {
		return err
	}

	sleep(d)

	return nil
}

// SleepWithExternal is SleepWith using ToExternalDuration.
func (u TimeUnit) SleepWithExternal(amount uint64, sleep func(*durationpb.Duration)) error {
	d, err := u.ToExternalDuration(amount)
	if err != nil {
		return err
	}

	sleep(d)

	return nil
}
