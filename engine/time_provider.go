package engine

import "time"

// TimeProvider is the time source for the simulation and its delayed callbacks
type TimeProvider interface {
	Now() time.Time
	// AfterFunc calls fn once after d; the returned Timer can cancel it
	AfterFunc(d time.Duration, fn func()) Timer
}

// Timer is a pending delayed callback
type Timer interface {
	// Stop prevents the callback from firing; false if it already fired or was stopped
	Stop() bool
}

// SystemTimeProvider provides the real system time with monotonic clock readings
type SystemTimeProvider struct{}

// NewTimeProvider creates a new monotonic time provider
func NewTimeProvider() *SystemTimeProvider {
	return &SystemTimeProvider{}
}

// Now returns the current time with monotonic clock reading
func (p *SystemTimeProvider) Now() time.Time {
	return time.Now()
}

// AfterFunc schedules fn on its own goroutine via time.AfterFunc
func (p *SystemTimeProvider) AfterFunc(d time.Duration, fn func()) Timer {
	return time.AfterFunc(d, fn)
}
