package breaker

import (
	"testing"
	"time"

	"github.com/vovakirdan/binary-breaker/internal/core"
)

func TestNewGameStateDefaults(t *testing.T) {
	s := NewGameState()

	if s.Screen != ScreenMenu {
		t.Errorf("Screen = %v, expected MENU", s.Screen)
	}
	if s.Level != 1 || s.Score != 0 || s.HighScore != 0 {
		t.Errorf("Level/Score/HighScore = %d/%d/%d, expected 1/0/0", s.Level, s.Score, s.HighScore)
	}
	if s.Input != ZeroBits {
		t.Errorf("Input = %q, expected 0000", s.Input)
	}
	if s.Mode != ModeNone {
		t.Errorf("Mode = %v, expected none", s.Mode)
	}
}

func TestResetClearsEverything(t *testing.T) {
	s := NewGameState()
	s.Level = 9
	s.Score = 70
	s.HighScore = 300
	s.Mode = ModeReverse
	s.Sum = 11

	s.Reset()

	if *s != *NewGameState() {
		t.Errorf("Reset() left %+v", *s)
	}
}

func TestToggleInputBit(t *testing.T) {
	s := NewGameState()

	s.ToggleInputBit(0)
	if s.Input.String() != "0001" {
		t.Errorf("after toggling bit 0, Input = %q, expected 0001", s.Input)
	}

	for i := 0; i < 4; i++ {
		before := s.Input
		s.ToggleInputBit(i)
		s.ToggleInputBit(i)
		if s.Input != before {
			t.Errorf("toggling bit %d twice changed %q to %q", i, before, s.Input)
		}
	}

	s.ToggleInputBit(3)
	if s.Input.String() != "1001" {
		t.Errorf("after toggling bit 3, Input = %q, expected 1001", s.Input)
	}
}

func TestPressBitByMode(t *testing.T) {
	s := NewGameState()
	s.Mode = ModeClassic
	s.PressBit(1)
	if s.Input.String() != "0010" || s.Sum != 0 {
		t.Errorf("classic PressBit(1): Input=%q Sum=%d", s.Input, s.Sum)
	}

	s = NewGameState()
	s.Mode = ModeReverse
	s.PressBit(3)
	s.PressBit(1)
	s.PressBit(1)
	if s.Sum != 12 || s.Input != ZeroBits {
		t.Errorf("reverse presses: Input=%q Sum=%d, expected sum 12", s.Input, s.Sum)
	}

	s.ClearInput()
	if s.Sum != 0 {
		t.Errorf("ClearInput in reverse mode left Sum=%d", s.Sum)
	}
}

func TestScoreNeverNegative(t *testing.T) {
	sequences := [][]int{
		{PointsWrong, PointsWrong, PointsWrong},
		{PointsCorrect, PointsWrong, PointsWrong, PointsWrong, PointsCorrect},
		{PointsWrong, PointsCorrect, PointsWrong, PointsWrong, PointsWrong},
	}

	for _, seq := range sequences {
		s := NewGameState()
		for _, delta := range seq {
			s.AddScore(delta)
			if s.Score < 0 {
				t.Fatalf("sequence %v drove score negative: %d", seq, s.Score)
			}
		}
	}

	s := NewGameState()
	s.AddScore(PointsCorrect)
	s.AddScore(PointsWrong)
	if s.Score != 5 {
		t.Errorf("+10 then -5 = %d, expected 5", s.Score)
	}
}

func TestRemaining(t *testing.T) {
	clock := core.NewManualClock(1000)
	s := NewGameState()

	if got := s.Remaining(clock.Now()); got != 0 {
		t.Errorf("Remaining without countdown = %d, expected 0", got)
	}

	s.TimeLeft = 15
	s.TimerStart = clock.Now()
	clock.Advance(2500 * time.Millisecond)
	if got := s.Remaining(clock.Now()); got != 13 {
		t.Errorf("Remaining after 2.5s = %d, expected 13", got)
	}

	clock.Advance(time.Minute)
	if got := s.Remaining(clock.Now()); got != 0 {
		t.Errorf("Remaining after expiry = %d, expected 0", got)
	}
}
