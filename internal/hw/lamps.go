package hw

import (
	"time"

	"github.com/vovakirdan/binary-breaker/internal/core"
)

// LampOutput drives the green and red status lamps.
type LampOutput interface {
	SetLamps(green, red bool)
}

// Lamps keeps the steady lamp state and plays blink patterns over it.
// A blink lights both lamps together; when it ends the steady state returns.
type Lamps struct {
	out   LampOutput
	clock core.Clock

	green, red bool

	blinking bool
	times    int
	period   core.Millis
	started  core.Millis
}

// NewLamps creates lamps driving out, initially off.
func NewLamps(out LampOutput, clock core.Clock) *Lamps {
	l := &Lamps{out: out, clock: clock}
	l.apply(false, false)
	return l
}

// Set changes the steady state and cancels any blink in progress.
func (l *Lamps) Set(green, red bool) {
	l.green, l.red = green, red
	l.blinking = false
	l.apply(green, red)
}

// Blink flashes both lamps times times. Each flash is period on then
// period off.
func (l *Lamps) Blink(times int, period time.Duration) {
	p := core.MillisOf(period)
	if times <= 0 || p == 0 {
		return
	}
	l.blinking = true
	l.times = times
	l.period = p
	l.started = l.clock.Now()
	l.apply(true, true)
}

// Update advances the blink pattern.
func (l *Lamps) Update(now core.Millis) {
	if !l.blinking {
		return
	}
	phase := core.Elapsed(l.started, now) / l.period
	if int(phase) >= 2*l.times {
		l.blinking = false
		l.apply(l.green, l.red)
		return
	}
	on := phase%2 == 0
	l.apply(on, on)
}

func (l *Lamps) apply(green, red bool) {
	l.out.SetLamps(green, red)
}
