package notify

import "time"

// Clock abstracts time.Now() to allow deterministic testing.
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the standard time package.
type RealClock struct{}

// Now returns the current local time.
func (RealClock) Now() time.Time {
	return time.Now()
}

// Timer is a cancellable pending callback.
type Timer interface {
	// Stop prevents the callback from firing. It reports whether the call
	// stopped the timer before it expired.
	Stop() bool
}

// TimerFactory abstracts time.AfterFunc so reminder scheduling can be driven
// by a simulated clock in tests.
type TimerFactory interface {
	AfterFunc(d time.Duration, fn func()) Timer
}

// RealTimers implements TimerFactory over the standard time package.
type RealTimers struct{}

// AfterFunc arms a standard timer.
func (RealTimers) AfterFunc(d time.Duration, fn func()) Timer {
	return time.AfterFunc(d, fn)
}
