package breaker

import "github.com/vovakirdan/binary-breaker/internal/core"

const (
	cheatSkip     = 3
	cheatSnapFrom = 18
)

// cheatTracker follows one continuous hold of the Cancel button.
type cheatTracker struct {
	holding bool
	start   core.Millis
	fired   bool
}

// checkCheat skips levels once per continuous Cancel hold of Rules.CheatHold.
func (c *Controller) checkCheat(now core.Millis) {
	if !c.input.IsHeld(core.ButtonCancel) {
		c.cheat = cheatTracker{}
		return
	}
	if !c.cheat.holding {
		c.cheat = cheatTracker{holding: true, start: now}
		return
	}
	if c.cheat.fired || core.Elapsed(c.cheat.start, now) < core.MillisOf(c.rules.CheatHold) {
		return
	}
	c.cheat.fired = true
	c.skipLevels(now)
}

func (c *Controller) skipLevels(now core.Millis) {
	next := c.state.Level + cheatSkip
	if c.state.Level >= cheatSnapFrom {
		next = MaxLevel
	}
	c.state.Level = core.Clamp(next, StartLevel, MaxLevel)
	c.log.Warn("level skip cheat", "level", c.state.Level)

	c.sound.Play(core.CueConfirm)
	if c.state.Screen == ScreenFeedback {
		c.lamps.Set(false, false)
	}
	c.lamps.Blink(cheatBlinks, blinkPeriod)

	if c.state.Screen == ScreenGame || c.state.Screen == ScreenFeedback {
		c.startLevel(now)
	}
}
