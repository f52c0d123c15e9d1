package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/binary-breaker/internal/breaker"
	"github.com/vovakirdan/binary-breaker/internal/core"
	"github.com/vovakirdan/binary-breaker/internal/storage"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestKeyMapButton(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		msg      tea.KeyMsg
		expected core.Button
	}{
		{runeKey("f"), core.ButtonBit0},
		{runeKey("1"), core.ButtonBit0},
		{runeKey("d"), core.ButtonBit1},
		{runeKey("2"), core.ButtonBit1},
		{runeKey("s"), core.ButtonBit2},
		{runeKey("4"), core.ButtonBit2},
		{runeKey("a"), core.ButtonBit3},
		{runeKey("8"), core.ButtonBit3},
		{tea.KeyMsg{Type: tea.KeyEnter}, core.ButtonConfirm},
		{tea.KeyMsg{Type: tea.KeySpace}, core.ButtonConfirm},
		{tea.KeyMsg{Type: tea.KeyBackspace}, core.ButtonCancel},
		{runeKey("x"), core.ButtonCancel},
		{runeKey("z"), core.ButtonNone},
		{runeKey("q"), core.ButtonNone},
	}

	for _, tc := range tests {
		if got := km.Button(tc.msg); got != tc.expected {
			t.Errorf("Button(%q) = %v, expected %v", tc.msg.String(), got, tc.expected)
		}
	}
}

func TestKeyInputDebounce(t *testing.T) {
	clock := core.NewManualClock(0)
	in := NewKeyInput(clock, 200*time.Millisecond, 700*time.Millisecond)

	in.Press(core.ButtonBit0)
	clock.Advance(100 * time.Millisecond)
	in.Press(core.ButtonBit1) // dropped
	clock.Advance(100 * time.Millisecond)
	in.Press(core.ButtonConfirm)
	in.Press(core.ButtonNone)

	expected := []core.Button{core.ButtonBit0, core.ButtonConfirm, core.ButtonNone}
	for i, e := range expected {
		if got := in.Poll(); got != e {
			t.Errorf("Poll() #%d = %v, expected %v", i, got, e)
		}
	}
}

func TestKeyInputHold(t *testing.T) {
	clock := core.NewManualClock(0)
	in := NewKeyInput(clock, 200*time.Millisecond, 700*time.Millisecond)

	if in.IsHeld(core.ButtonCancel) {
		t.Fatal("untouched button reported held")
	}

	// Initial press, then key repeat every 50ms after a 500ms delay.
	in.Press(core.ButtonCancel)
	clock.Advance(500 * time.Millisecond)
	for i := 0; i < 60; i++ {
		in.Press(core.ButtonCancel)
		if !in.IsHeld(core.ButtonCancel) {
			t.Fatalf("repeat %d: button released during key repeat", i)
		}
		clock.Advance(50 * time.Millisecond)
	}

	clock.Advance(700 * time.Millisecond)
	if in.IsHeld(core.ButtonCancel) {
		t.Error("button should be released after the hold window")
	}
}

func newTestModel(t *testing.T) (Model, *core.ManualClock) {
	t.Helper()
	clock := core.NewManualClock(0)
	m, err := NewModel(Options{
		Rules:      breaker.DefaultRules(),
		Debounce:   200 * time.Millisecond,
		HoldWindow: 700 * time.Millisecond,
		Seed:       7,
		Scores:     storage.NewMemory(),
		Clock:      clock,
	})
	if err != nil {
		t.Fatalf("NewModel() failed: %v", err)
	}
	return m, clock
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	um, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return um
}

func TestModelStartsOnMenu(t *testing.T) {
	m, _ := newTestModel(t)

	if m.State().Screen != breaker.ScreenMenu {
		t.Errorf("Screen = %v, expected MENU", m.State().Screen)
	}
	if !strings.Contains(m.View(), "BREAKER") {
		t.Errorf("View() missing menu:\n%s", m.View())
	}
	if m.dev.tone == 0 {
		t.Error("startup melody should be sounding")
	}
	if !m.dev.green || !m.dev.red {
		t.Error("startup blink should light both lamps")
	}
}

func TestModelConfirmStartsGame(t *testing.T) {
	m, clock := newTestModel(t)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	clock.Advance(10 * time.Millisecond)
	m = update(t, m, TickMsg(time.Now()))

	if m.State().Screen != breaker.ScreenGame {
		t.Fatalf("Screen = %v, expected GAME", m.State().Screen)
	}
	if !strings.Contains(m.View(), "Task:") {
		t.Errorf("View() missing HUD:\n%s", m.View())
	}

	clock.Advance(250 * time.Millisecond)
	m = update(t, m, runeKey("1"))
	clock.Advance(10 * time.Millisecond)
	m = update(t, m, TickMsg(time.Now()))

	if got := m.State().Input.String(); got != "0001" {
		t.Errorf("Input = %q, expected 0001", got)
	}
}

func TestModelHelpToggle(t *testing.T) {
	m, _ := newTestModel(t)

	m = update(t, m, runeKey("?"))
	if !m.help.ShowAll {
		t.Error("? should expand the help")
	}
	m = update(t, m, runeKey("?"))
	if m.help.ShowAll {
		t.Error("? should collapse the help")
	}
}

func TestModelQuit(t *testing.T) {
	m, _ := newTestModel(t)

	next, cmd := m.Update(runeKey("q"))
	if cmd == nil {
		t.Fatal("quit key should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit key should quit the program")
	}
	if next.View() != "" {
		t.Error("View() should be empty after quitting")
	}
}

func TestScoreboardView(t *testing.T) {
	empty := NewScoreboardModel(Scoreboard{}, 24)
	if !strings.Contains(empty.View(), "No sessions recorded yet") {
		t.Errorf("empty scoreboard:\n%s", empty.View())
	}

	board := Scoreboard{
		HighScore: 190,
		Sessions: []storage.SessionEntry{
			{Score: 190, Level: 20, Outcome: breaker.OutcomeWin, CreatedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)},
			{Score: 40, Level: 8, Outcome: breaker.OutcomeAbandoned},
		},
		Stats: &storage.Stats{Sessions: 2, Wins: 1, BestLevel: 20, AvgScore: 115},
	}
	view := NewScoreboardModel(board, 24).View()
	for _, want := range []string{"HIGH SCORE: 190", "20/20", "win", "abandoned", "2 sessions", "avg 115.0"} {
		if !strings.Contains(view, want) {
			t.Errorf("scoreboard view missing %q:\n%s", want, view)
		}
	}
}

func TestSessionRows(t *testing.T) {
	rows := sessionRows([]storage.SessionEntry{
		{Score: 190, Level: 20, Outcome: breaker.OutcomeWin},
		{Score: 40, Level: 8, Outcome: breaker.OutcomeAbandoned},
	})

	expected := [][]string{
		{"1", "190", "20/20", "★ win", "-"},
		{"2", "40", "8/20", "abandoned", "-"},
	}
	for i, want := range expected {
		if strings.Join(rows[i], "|") != strings.Join(want, "|") {
			t.Errorf("row %d = %v, expected %v", i, rows[i], want)
		}
	}
}

func TestScoreboardQuit(t *testing.T) {
	m := NewScoreboardModel(Scoreboard{}, 24)
	next, cmd := m.Update(runeKey("q"))
	if cmd == nil {
		t.Fatal("q should quit the scoreboard")
	}
	if next.View() != "" {
		t.Error("View() should be empty after quitting")
	}
}
