package clock

import "time"

// Clock supplies creation and update timestamps for player records
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock in UTC
type SystemClock struct{}

// New creates a SystemClock
func New() *SystemClock {
	return &SystemClock{}
}

// Now returns the current UTC time
func (c *SystemClock) Now() time.Time {
	return time.Now().UTC()
}
