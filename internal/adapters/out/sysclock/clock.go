// Package sysclock provides the wall clock implementation of ports.Clock.
package sysclock

import "time"

// SystemClock returns the current wall time. Handlers take the clock as a
// dependency so tests can freeze it.
type SystemClock struct{}

// NewSystemClock creates a SystemClock.
func NewSystemClock() SystemClock {
	return SystemClock{}
}

// Now returns the current time.
func (SystemClock) Now() time.Time {
	return time.Now()
}
