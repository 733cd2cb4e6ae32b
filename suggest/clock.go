package suggest

import "time"

// Timer is a pending AfterFunc call that can be stopped.
type Timer interface {
	Stop() bool
}

// Clock provides the time operations the package depends on, so tests can
// drive delays without sleeping.
type Clock interface {
	AfterFunc(d time.Duration, f func()) Timer
	Now() time.Time
}

// SystemClock is the Clock backed by the time package.
var SystemClock Clock = systemClock{}

type systemClock struct{}

func (systemClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

func (systemClock) Now() time.Time {
	return time.Now()
}
