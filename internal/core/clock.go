package core

import "time"

// Millis is a monotonic millisecond counter value.
// It wraps around after ~49.7 days; use Elapsed to compare two readings.
type Millis uint32

// Elapsed returns the time from t0 to t1, correct across a single wraparound
// of the counter.
func Elapsed(t0, t1 Millis) Millis {
	return t1 - t0
}

// MillisOf converts a duration to whole milliseconds.
func MillisOf(d time.Duration) Millis {
	return Millis(d / time.Millisecond)
}

// Clock is a monotonic millisecond time source.
type Clock interface {
	Now() Millis
}

// SystemClock reads the process monotonic clock.
type SystemClock struct {
	start time.Time
}

// NewSystemClock returns a clock counting from the moment of creation.
func NewSystemClock() *SystemClock {
	return &SystemClock{start: time.Now()}
}

// Now returns the milliseconds since the clock was created.
func (c *SystemClock) Now() Millis {
	return Millis(uint64(time.Since(c.start) / time.Millisecond))
}

// ManualClock is a clock that only moves when told to.
// Used by tests and deterministic replays.
type ManualClock struct {
	now Millis
}

// NewManualClock creates a manual clock positioned at start.
func NewManualClock(start Millis) *ManualClock {
	return &ManualClock{now: start}
}

// Now returns the current reading.
func (c *ManualClock) Now() Millis {
	return c.now
}

// Advance moves the clock forward by d.
func (c *ManualClock) Advance(d time.Duration) {
	c.now += MillisOf(d)
}

// Set positions the clock at an absolute reading.
func (c *ManualClock) Set(m Millis) {
	c.now = m
}
