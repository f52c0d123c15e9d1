package hw

import (
	"time"

	"github.com/vovakirdan/binary-breaker/internal/core"
)

// Note is one buzzer tone. A zero frequency is a rest.
type Note struct {
	Freq     uint32 // Hz
	Duration time.Duration
}

// Melodies maps each cue to the notes the buzzer plays for it.
var Melodies = map[core.Cue][]Note{
	core.CueStartup: {{392, 100 * time.Millisecond}, {523, 100 * time.Millisecond}, {659, 150 * time.Millisecond}},
	core.CueConfirm: {{659, 100 * time.Millisecond}, {784, 150 * time.Millisecond}},
	core.CueError:   {{262, 200 * time.Millisecond}},
	core.CuePress:   {{1200, 20 * time.Millisecond}},
	core.CueReset:   {{392, 50 * time.Millisecond}, {262, 100 * time.Millisecond}},
}

// Buzzer is a tone output. Tone(0) silences it.
type Buzzer interface {
	Tone(freq uint32)
}

// Player sequences cue melodies onto a Buzzer without blocking the caller.
// Cues queue behind each other in the order they were played.
type Player struct {
	out   Buzzer
	clock core.Clock

	queue   []Note
	current Note
	started core.Millis
	playing bool
}

// NewPlayer creates a player driving out.
func NewPlayer(out Buzzer, clock core.Clock) *Player {
	return &Player{out: out, clock: clock}
}

// Play queues the melody for a cue and starts it immediately when idle.
func (p *Player) Play(c core.Cue) {
	notes, ok := Melodies[c]
	if !ok {
		return
	}
	p.queue = append(p.queue, notes...)
	if !p.playing {
		p.next(p.clock.Now())
	}
}

// Update finishes notes whose duration has passed and starts the next one.
func (p *Player) Update(now core.Millis) {
	for p.playing && core.Elapsed(p.started, now) >= core.MillisOf(p.current.Duration) {
		// Chain from the scheduled end, not from now.
		p.next(p.started + core.MillisOf(p.current.Duration))
	}
}

// Stop silences the buzzer and drops the queue.
func (p *Player) Stop() {
	p.queue = nil
	p.playing = false
	p.out.Tone(0)
}

func (p *Player) next(at core.Millis) {
	if len(p.queue) == 0 {
		p.playing = false
		p.out.Tone(0)
		return
	}
	p.current = p.queue[0]
	p.queue = p.queue[1:]
	p.started = at
	p.playing = true
	p.out.Tone(p.current.Freq)
}
