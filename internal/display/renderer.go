// Package display lays out the game screens on the small monochrome panel.
//
// The panel is 128x64 pixels with an 8x8 font, which gives a 16x8 character
// grid. Every screen is framed by a one-cell border, leaving 14 columns and
// 6 rows for text.
package display

import (
	"fmt"

	"github.com/vovakirdan/binary-breaker/internal/breaker"
	"github.com/vovakirdan/binary-breaker/internal/core"
)

// Panel size in characters.
const (
	Cols = 16
	Rows = 8
)

// Panel receives a finished frame. Hosts push it to the OLED, the serial
// console or a terminal view.
type Panel interface {
	Show(s *core.Screen)
}

// Panels shows every frame on each of its panels in order.
type Panels []Panel

// Show implements Panel.
func (ps Panels) Show(s *core.Screen) {
	for _, p := range ps {
		p.Show(s)
	}
}

// Renderer draws game screens into a character buffer and pushes each
// finished frame to its panel. It implements breaker.Display.
type Renderer struct {
	screen *core.Screen
	panel  Panel
}

var _ breaker.Display = (*Renderer)(nil)

// NewRenderer creates a renderer for a Cols x Rows panel.
// A nil panel keeps frames in the buffer only.
func NewRenderer(panel Panel) *Renderer {
	return &Renderer{
		screen: core.NewScreen(Cols, Rows),
		panel:  panel,
	}
}

// DrawMenu shows the title screen.
func (r *Renderer) DrawMenu() {
	r.begin()
	r.screen.DrawTextCentered(2, "BINARY")
	r.screen.DrawTextCentered(3, "BREAKER")
	r.screen.DrawTextCentered(5, ">Confirm<")
	r.show()
}

// DrawHUD shows the in-game status: level and score on top, the countdown
// below them when active, then mode, task and the player's answer.
func (r *Renderer) DrawHUD(h breaker.HUD) {
	r.begin()
	r.screen.DrawText(1, 1, fmt.Sprintf("Lvl:%d", h.Level))
	r.screen.DrawTextRight(1, 1, fmt.Sprintf("Sc:%d", h.Score))
	if h.Timed {
		r.screen.DrawTextRight(2, 1, fmt.Sprintf("Time: %d", h.Remaining))
	}

	r.screen.DrawText(1, 3, "Mode: "+h.Mode.Arrow())
	r.screen.DrawText(1, 4, "Task: "+h.Task.String())

	if h.Mode == breaker.ModeClassic {
		r.screen.DrawText(1, 6, "Input: "+h.Input.String())
	} else {
		r.screen.DrawText(1, 6, fmt.Sprintf("Sum: %d", h.Sum))
	}
	r.show()
}

// DrawFeedback shows the result of an answer. A non-empty message replaces
// the CORRECT!/WRONG headline.
func (r *Renderer) DrawFeedback(correct bool, delta int, message string) {
	r.begin()
	switch {
	case message != "":
		r.screen.DrawTextCentered(2, message)
	case correct:
		r.screen.DrawTextCentered(2, "CORRECT!")
	default:
		r.screen.DrawTextCentered(2, "WRONG")
	}
	r.screen.DrawTextCentered(4, fmt.Sprintf("%+d points", delta))
	r.show()
}

// DrawGameOver shows the final score with a restart prompt.
func (r *Renderer) DrawGameOver(score int) {
	r.begin()
	r.screen.DrawTextCentered(2, "GAME OVER")
	r.screen.DrawTextCentered(3, fmt.Sprintf("Score:%d", score))
	r.screen.DrawTextCentered(5, "> Restart <")
	r.show()
}

// DrawWin shows the victory screen.
func (r *Renderer) DrawWin(score, highScore int, newRecord bool) {
	r.begin()
	if newRecord {
		r.screen.DrawTextCentered(1, "NEW RECORD!")
	} else {
		r.screen.DrawTextCentered(1, "YOU WIN!")
	}
	r.screen.DrawTextCentered(2, fmt.Sprintf("Your Score:%d", score))
	r.screen.DrawTextCentered(3, fmt.Sprintf("High Score:%d", highScore))
	r.screen.DrawTextCentered(5, "> Play Again <")
	r.show()
}

// DrawInfo shows a milestone announcement.
func (r *Renderer) DrawInfo(title, line1, line2 string) {
	r.begin()
	r.screen.DrawTextCentered(1, "! "+title+" !")
	r.screen.DrawTextCentered(3, line1)
	if line2 != "" {
		r.screen.DrawTextCentered(4, line2)
	}
	r.screen.DrawTextCentered(6, "> Continue <")
	r.show()
}

// begin clears the buffer and draws the frame.
func (r *Renderer) begin() {
	r.screen.Clear()
	r.screen.DrawBox(core.NewRect(0, 0, Cols, Rows))
}

func (r *Renderer) show() {
	if r.panel != nil {
		r.panel.Show(r.screen)
	}
}
