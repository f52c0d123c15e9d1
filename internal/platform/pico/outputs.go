//go:build tinygo

package pico

import (
	"fmt"
	"machine"
	"os"
	"strings"

	"github.com/sparques/pwm"

	"github.com/vovakirdan/binary-breaker/internal/core"
	"github.com/vovakirdan/binary-breaker/internal/display"
	"github.com/vovakirdan/binary-breaker/internal/hw"
)

// Buzzer plays tones on a PWM pin. Changing the tone reconfigures the
// period of the pin's PWM slice.
type Buzzer struct {
	pgroup pwm.Group
	ch     uint8
}

var _ hw.Buzzer = (*Buzzer)(nil)

// NewBuzzer configures pin for PWM output, initially silent.
func NewBuzzer(pin machine.Pin) (*Buzzer, error) {
	pin.Configure(machine.PinConfig{Mode: machine.PinPWM})
	pgroup := pwm.Get(pin)
	if err := pgroup.Configure(machine.PWMConfig{Period: uint64(1e9) / 1000}); err != nil {
		return nil, fmt.Errorf("pico: buzzer pwm: %w", err)
	}
	ch, err := pgroup.Channel(pin)
	if err != nil {
		return nil, fmt.Errorf("pico: buzzer channel: %w", err)
	}
	pgroup.Set(ch, 0)
	return &Buzzer{pgroup: pgroup, ch: ch}, nil
}

// Tone sounds freq Hz, or silences the buzzer for 0.
func (b *Buzzer) Tone(freq uint32) {
	if freq == 0 {
		b.pgroup.Set(b.ch, 0)
		return
	}
	b.pgroup.Configure(machine.PWMConfig{Period: uint64(1e9) / uint64(freq)})
	// A low duty cycle keeps the volume down.
	b.pgroup.Set(b.ch, b.pgroup.Top()/32)
}

// LEDs drives the green and red status LEDs.
type LEDs struct {
	green, red machine.Pin
}

var _ hw.LampOutput = (*LEDs)(nil)

// NewLEDs configures both LED pins as outputs, initially off.
func NewLEDs(green, red machine.Pin) *LEDs {
	green.Configure(machine.PinConfig{Mode: machine.PinOutput})
	red.Configure(machine.PinConfig{Mode: machine.PinOutput})
	green.Low()
	red.Low()
	return &LEDs{green: green, red: red}
}

// SetLamps implements hw.LampOutput.
func (l *LEDs) SetLamps(green, red bool) {
	l.green.Set(green)
	l.red.Set(red)
}

// SerialPanel writes each frame to the serial console, redrawing in place.
type SerialPanel struct{}

var _ display.Panel = SerialPanel{}

// Show implements display.Panel. Serial terminals need CRLF line ends.
func (SerialPanel) Show(s *core.Screen) {
	fmt.Fprint(os.Stdout, "\x1b[H\x1b[2J", strings.Join(s.Lines(), "\r\n"), "\r\n")
}
