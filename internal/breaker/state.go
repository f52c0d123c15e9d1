package breaker

import "github.com/vovakirdan/binary-breaker/internal/core"

// Session rules.
const (
	StartLevel    = 1
	MaxLevel      = 20
	PointsCorrect = 10
	PointsWrong   = -5
)

// GameState is the single record of session data. Only the Controller
// mutates it; hosts and tests read copies.
type GameState struct {
	Screen    Screen
	Level     int
	Score     int
	HighScore int

	// TimeLeft is the countdown for the current task in seconds, 0 for none.
	// TimerStart is only meaningful while TimeLeft > 0.
	TimeLeft   int
	TimerStart core.Millis

	Mode  Mode
	Task  Task
	Input BitString // CLASSIC answer
	Sum   int       // REVERSE answer

	LastCorrect   bool
	FeedbackStart core.Millis
}

// NewGameState returns a state holding all defaults.
func NewGameState() *GameState {
	s := &GameState{}
	s.Reset()
	return s
}

// Reset restores every field to its default, including HighScore.
// Callers that want to keep the high score re-apply it afterwards.
func (s *GameState) Reset() {
	*s = GameState{
		Screen: ScreenMenu,
		Level:  StartLevel,
		Input:  ZeroBits,
	}
}

// ToggleInputBit flips bit i (0 = rightmost) of the CLASSIC input.
func (s *GameState) ToggleInputBit(i int) {
	s.Input = s.Input.Toggle(i)
}

// PressBit applies a bit button to the answer for the current mode.
func (s *GameState) PressBit(i int) {
	if s.Mode == ModeClassic {
		s.ToggleInputBit(i)
		return
	}
	s.Sum += BitValues[i]
}

// ClearInput discards the answer for the current mode.
func (s *GameState) ClearInput() {
	if s.Mode == ModeClassic {
		s.Input = ZeroBits
		return
	}
	s.Sum = 0
}

// AddScore applies delta, never letting the score drop below zero.
func (s *GameState) AddScore(delta int) {
	s.Score = core.Max(0, s.Score+delta)
}

// Remaining returns the whole seconds left on the countdown at now.
// It is 0 when no countdown is active or the countdown has expired.
func (s *GameState) Remaining(now core.Millis) int {
	if s.TimeLeft <= 0 {
		return 0
	}
	elapsed := int(core.Elapsed(s.TimerStart, now) / 1000)
	return core.Max(0, s.TimeLeft-elapsed)
}
