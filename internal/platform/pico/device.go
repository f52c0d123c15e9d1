//go:build tinygo

package pico

import (
	"machine"

	"github.com/vovakirdan/binary-breaker/internal/breaker"
	"github.com/vovakirdan/binary-breaker/internal/core"
	"github.com/vovakirdan/binary-breaker/internal/display"
	"github.com/vovakirdan/binary-breaker/internal/hw"
	"github.com/vovakirdan/binary-breaker/internal/scorefile"
)

// ramScores keeps the high score for as long as the board is powered. It
// stands in when the flash filesystem cannot be mounted.
type ramScores struct {
	high int
}

func (r *ramScores) LoadHighScore() (int, error) { return r.high, nil }

func (r *ramScores) SaveHighScore(score int) error {
	r.high = max(r.high, score)
	return nil
}

// highScores returns the flash-backed store, or RAM when the flash cannot
// be mounted.
func highScores() breaker.HighScores {
	flash, err := MountFlash()
	if err != nil {
		println("breaker: high score kept in RAM:", err.Error())
		return &ramScores{}
	}
	return scorefile.New(flash, scorefile.Name)
}

// NewController sets up every peripheral and wires the game controller.
// Peripheral failures are returned before anything is started.
func NewController(rules breaker.Rules, seed int64) (*breaker.Controller, error) {
	clock := core.NewSystemClock()

	buzzer, err := NewBuzzer(PinBuzzer)
	if err != nil {
		return nil, err
	}
	oled, err := NewOLED(machine.I2C0, PinSDA, PinSCL, OLEDAddress)
	if err != nil {
		return nil, err
	}

	return breaker.NewController(breaker.Deps{
		Input:   NewButtons(clock, hw.DefaultDebounce),
		Display: display.NewRenderer(display.Panels{oled, SerialPanel{}}),
		Sound:   hw.NewPlayer(buzzer, clock),
		Lamps:   hw.NewLamps(NewLEDs(PinGreen, PinRed), clock),
		Scores:  highScores(),
		Clock:   clock,
	}, rules, breaker.NewTaskGenerator(seed))
}
