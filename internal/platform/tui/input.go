package tui

import (
	"time"

	"github.com/vovakirdan/binary-breaker/internal/breaker"
	"github.com/vovakirdan/binary-breaker/internal/core"
	"github.com/vovakirdan/binary-breaker/internal/hw"
)

// KeyInput turns key events into debounced button presses.
//
// Terminals report key presses, never releases. A button counts as held
// while its key keeps repeating: each event refreshes it, and it is
// released once no event arrived for the hold window. The window has to
// cover the terminal's initial repeat delay.
type KeyInput struct {
	clock      core.Clock
	debounce   *hw.Debouncer
	holdWindow core.Millis

	queue    []core.Button
	lastSeen map[core.Button]core.Millis
}

var _ breaker.Input = (*KeyInput)(nil)

// NewKeyInput creates a key input source.
func NewKeyInput(clock core.Clock, debounce, holdWindow time.Duration) *KeyInput {
	return &KeyInput{
		clock:      clock,
		debounce:   hw.NewDebouncer(debounce),
		holdWindow: core.MillisOf(holdWindow),
		lastSeen:   make(map[core.Button]core.Millis),
	}
}

// Press records a key event for b.
func (in *KeyInput) Press(b core.Button) {
	if b == core.ButtonNone {
		return
	}
	now := in.clock.Now()
	in.lastSeen[b] = now
	if in.debounce.Accept(now) {
		in.queue = append(in.queue, b)
	}
}

// Poll returns the oldest accepted press, or ButtonNone.
func (in *KeyInput) Poll() core.Button {
	if len(in.queue) == 0 {
		return core.ButtonNone
	}
	b := in.queue[0]
	in.queue = in.queue[1:]
	return b
}

// IsHeld reports whether b's key has repeated within the hold window.
func (in *KeyInput) IsHeld(b core.Button) bool {
	seen, ok := in.lastSeen[b]
	if !ok {
		return false
	}
	return core.Elapsed(seen, in.clock.Now()) < in.holdWindow
}
