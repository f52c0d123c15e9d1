package tui

import (
	"github.com/vovakirdan/binary-breaker/internal/core"
	"github.com/vovakirdan/binary-breaker/internal/display"
	"github.com/vovakirdan/binary-breaker/internal/hw"
)

// devices is the virtual hardware the terminal draws: the panel contents,
// the two lamps and the buzzer tone.
type devices struct {
	frame      string
	green, red bool
	tone       uint32
}

var (
	_ display.Panel = (*devices)(nil)
	_ hw.LampOutput = (*devices)(nil)
	_ hw.Buzzer     = (*devices)(nil)
)

// Show implements display.Panel.
func (d *devices) Show(s *core.Screen) {
	d.frame = s.String()
}

// SetLamps implements hw.LampOutput.
func (d *devices) SetLamps(green, red bool) {
	d.green, d.red = green, red
}

// Tone implements hw.Buzzer.
func (d *devices) Tone(freq uint32) {
	d.tone = freq
}
