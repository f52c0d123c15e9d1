package breaker

import (
	"time"

	"github.com/vovakirdan/binary-breaker/internal/core"
)

// Input yields debounced button events.
type Input interface {
	// Poll returns at most one newly pressed button, or core.ButtonNone.
	Poll() core.Button
	// IsHeld reports whether b is physically down right now.
	IsHeld(b core.Button) bool
}

// HUD is the snapshot drawn on the game screen.
type HUD struct {
	Level     int
	Score     int
	Mode      Mode
	Task      Task
	Input     BitString
	Sum       int
	Timed     bool
	Remaining int // whole seconds, only meaningful when Timed
}

// Display renders screens. Calls are fire-and-forget.
type Display interface {
	DrawMenu()
	DrawHUD(h HUD)
	DrawFeedback(correct bool, delta int, message string)
	DrawGameOver(score int)
	DrawWin(score, highScore int, newRecord bool)
	DrawInfo(title, line1, line2 string)
}

// Sound plays cues without waiting for them to finish.
type Sound interface {
	Play(c core.Cue)
}

// Indicators drives the green and red status lamps.
type Indicators interface {
	Set(green, red bool)
	Blink(times int, period time.Duration)
}

// HighScores persists the single best score. SaveHighScore never lowers
// the stored value: a score below the stored one is ignored.
type HighScores interface {
	LoadHighScore() (int, error)
	SaveHighScore(score int) error
}

// SessionRecorder is implemented by HighScores backends that also keep a
// history of finished sessions.
type SessionRecorder interface {
	RecordSession(score, level int, outcome string) error
}

// Session outcomes passed to SessionRecorder.
const (
	OutcomeWin       = "win"
	OutcomeAbandoned = "abandoned"
)
