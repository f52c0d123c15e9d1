//go:build tinygo

package pico

import (
	"machine"
	"time"

	"github.com/vovakirdan/binary-breaker/internal/breaker"
	"github.com/vovakirdan/binary-breaker/internal/core"
	"github.com/vovakirdan/binary-breaker/internal/hw"
)

// Buttons scans the button pins. Each pin has the internal pull-up
// enabled, so a pressed button reads low.
type Buttons struct {
	pins     map[core.Button]machine.Pin
	clock    core.Clock
	debounce *hw.Debouncer
}

var _ breaker.Input = (*Buttons)(nil)

// NewButtons configures the button pins as pulled-up inputs.
func NewButtons(clock core.Clock, debounce time.Duration) *Buttons {
	pins := map[core.Button]machine.Pin{
		core.ButtonConfirm: PinConfirm,
		core.ButtonCancel:  PinCancel,
	}
	for i, pin := range bitPins {
		pins[core.BitButton(i)] = pin
	}
	for _, pin := range pins {
		pin.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	}
	return &Buttons{
		pins:     pins,
		clock:    clock,
		debounce: hw.NewDebouncer(debounce),
	}
}

// Poll returns the first pressed button in scan order. Inside the debounce
// window after an accepted press the pins are not read at all.
func (b *Buttons) Poll() core.Button {
	now := b.clock.Now()
	if !b.debounce.Ready(now) {
		return core.ButtonNone
	}
	for _, btn := range core.Buttons {
		if b.IsHeld(btn) {
			b.debounce.Accept(now)
			return btn
		}
	}
	return core.ButtonNone
}

// IsHeld reads the pin directly.
func (b *Buttons) IsHeld(btn core.Button) bool {
	pin, ok := b.pins[btn]
	return ok && !pin.Get()
}
