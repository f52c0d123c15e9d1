package display

import (
	"strings"
	"testing"

	"github.com/vovakirdan/binary-breaker/internal/breaker"
	"github.com/vovakirdan/binary-breaker/internal/core"
)

// panelFunc adapts a function to Panel.
type panelFunc func(s *core.Screen)

func (f panelFunc) Show(s *core.Screen) {
	f(s)
}

func contains(s *core.Screen, y int, text string) bool {
	return strings.Contains(s.Row(y), text)
}

func TestRendererFramesEveryScreen(t *testing.T) {
	r := NewRenderer(nil)
	r.DrawMenu()

	s := r.screen
	if s.Width() != Cols || s.Height() != Rows {
		t.Fatalf("screen = %dx%d, expected %dx%d", s.Width(), s.Height(), Cols, Rows)
	}
	if s.Get(0, 0) != '┌' || s.Get(Cols-1, Rows-1) != '┘' {
		t.Error("frame corners missing")
	}
	if !contains(s, 2, "BINARY") || !contains(s, 3, "BREAKER") {
		t.Errorf("menu title missing:\n%s", s)
	}
}

func TestRendererPushesToPanel(t *testing.T) {
	shown := 0
	r := NewRenderer(panelFunc(func(s *core.Screen) { shown++ }))

	r.DrawMenu()
	r.DrawGameOver(30)

	if shown != 2 {
		t.Errorf("panel shown %d times, expected 2", shown)
	}
}

func TestPanelsFanOut(t *testing.T) {
	var order []string
	oled := panelFunc(func(s *core.Screen) { order = append(order, "oled:"+s.Row(2)) })
	serial := panelFunc(func(s *core.Screen) { order = append(order, "serial:"+s.Row(2)) })

	r := NewRenderer(Panels{oled, serial})
	r.DrawGameOver(30)

	if len(order) != 2 {
		t.Fatalf("frames shown = %v, expected one per panel", order)
	}
	if !strings.HasPrefix(order[0], "oled:") || !strings.HasPrefix(order[1], "serial:") {
		t.Errorf("panel order = %v", order)
	}
	for _, o := range order {
		if !strings.Contains(o, "GAME OVER") {
			t.Errorf("panel got %q, expected the game over frame", o)
		}
	}
}

func TestDrawHUD(t *testing.T) {
	tests := []struct {
		name string
		hud  breaker.HUD
		rows map[int]string
	}{
		{
			name: "classic",
			hud: breaker.HUD{
				Level: 2, Score: 10, Mode: breaker.ModeClassic,
				Task: breaker.DecimalTask(13), Input: breaker.BitString{'1', '0', '0', '1'},
			},
			rows: map[int]string{1: "Lvl:2", 3: "Mode: D->B", 4: "Task: 13", 6: "Input: 1001"},
		},
		{
			name: "reverse timed",
			hud: breaker.HUD{
				Level: 14, Score: 120, Mode: breaker.ModeReverse,
				Task: breaker.BinaryTask(breaker.BitString{'0', '1', '1', '0'}), Sum: 6,
				Timed: true, Remaining: 9,
			},
			rows: map[int]string{1: "Sc:120", 2: "Time: 9", 3: "Mode: B->D", 4: "Task: 0110", 6: "Sum: 6"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := NewRenderer(nil)
			r.DrawHUD(tc.hud)
			for y, text := range tc.rows {
				if !contains(r.screen, y, text) {
					t.Errorf("row %d = %q, expected it to contain %q", y, r.screen.Row(y), text)
				}
			}
		})
	}
}

func TestDrawHUDWithoutTimer(t *testing.T) {
	r := NewRenderer(nil)
	r.DrawHUD(breaker.HUD{Level: 1, Mode: breaker.ModeClassic, Task: breaker.DecimalTask(5)})
	if contains(r.screen, 2, "Time") {
		t.Error("countdown shown for an untimed task")
	}
}

func TestDrawFeedback(t *testing.T) {
	tests := []struct {
		correct  bool
		delta    int
		message  string
		headline string
		points   string
	}{
		{true, 10, "", "CORRECT!", "+10 points"},
		{false, -5, "", "WRONG", "-5 points"},
		{false, -5, "TIME'S UP", "TIME'S UP", "-5 points"},
	}

	for _, tc := range tests {
		r := NewRenderer(nil)
		r.DrawFeedback(tc.correct, tc.delta, tc.message)
		if !contains(r.screen, 2, tc.headline) {
			t.Errorf("headline row = %q, expected %q", r.screen.Row(2), tc.headline)
		}
		if !contains(r.screen, 4, tc.points) {
			t.Errorf("points row = %q, expected %q", r.screen.Row(4), tc.points)
		}
	}
}

func TestDrawWin(t *testing.T) {
	r := NewRenderer(nil)
	r.DrawWin(150, 150, true)
	if !contains(r.screen, 1, "NEW RECORD!") {
		t.Errorf("row 1 = %q, expected NEW RECORD!", r.screen.Row(1))
	}

	r.DrawWin(80, 100, false)
	s := r.screen
	if !contains(s, 1, "YOU WIN!") || !contains(s, 2, "Your Score:80") || !contains(s, 3, "High Score:100") {
		t.Errorf("win screen:\n%s", s)
	}
}

func TestDrawInfo(t *testing.T) {
	r := NewRenderer(nil)
	m, _ := breaker.MilestoneAt(4)
	r.DrawInfo(m.Title, m.Line1, m.Line2)

	s := r.screen
	if !contains(s, 1, "! NEW MODE !") || !contains(s, 4, "REVERSE Mode") || !contains(s, 6, "> Continue <") {
		t.Errorf("info screen:\n%s", s)
	}
}

func TestLongestLinesFitInsideFrame(t *testing.T) {
	r := NewRenderer(nil)
	r.DrawWin(200, 200, false)
	r.DrawInfo("CHALLENGE!", "Added:", "TIME LIMIT!")

	for y := 0; y < Rows; y++ {
		row := []rune(r.screen.Row(y))
		if row[0] == ' ' || row[Cols-1] == ' ' {
			t.Errorf("row %d frame overwritten: %q", y, string(row))
		}
	}
}
