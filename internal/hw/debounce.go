// Package hw models the small pieces of hardware behaviour shared by every
// host: button debouncing, buzzer tone sequencing and status lamp blinking.
// Nothing here blocks; each model advances when its Update is called with
// the current monotonic time.
package hw

import (
	"time"

	"github.com/vovakirdan/binary-breaker/internal/core"
)

// DefaultDebounce is the minimum gap between two accepted presses.
const DefaultDebounce = 200 * time.Millisecond

// Debouncer is a timestamp threshold filter shared by all buttons.
// After a press is accepted, every press within the window is dropped.
type Debouncer struct {
	window core.Millis
	last   core.Millis
	primed bool
}

// NewDebouncer creates a debouncer with the given window.
func NewDebouncer(window time.Duration) *Debouncer {
	return &Debouncer{window: core.MillisOf(window)}
}

// Ready reports whether a press at now would be accepted, without
// recording it.
func (d *Debouncer) Ready(now core.Millis) bool {
	return !d.primed || core.Elapsed(d.last, now) >= d.window
}

// Accept reports whether a press observed at now should be delivered.
// An accepted press restarts the window.
func (d *Debouncer) Accept(now core.Millis) bool {
	if !d.Ready(now) {
		return false
	}
	d.last = now
	d.primed = true
	return true
}
