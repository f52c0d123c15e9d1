package core

import "strings"

// Screen is a fixed character grid standing in for the monochrome panel.
// Drawing clips at the edges; hosts decide how to show the result.
type Screen struct {
	width, height int
	cells         []rune // row-major
}

// NewScreen creates a blank screen of width x height characters.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  width,
		height: height,
		cells:  make([]rune, width*height),
	}
	s.Clear()
	return s
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Bounds returns the whole screen as a Rect.
func (s *Screen) Bounds() Rect {
	return NewRect(0, 0, s.width, s.height)
}

func (s *Screen) inside(x, y int) bool {
	return x >= 0 && x < s.width && y >= 0 && y < s.height
}

// Clear blanks every cell.
func (s *Screen) Clear() {
	for i := range s.cells {
		s.cells[i] = ' '
	}
}

// ClearRow blanks row y.
func (s *Screen) ClearRow(y int) {
	for x := 0; x < s.width; x++ {
		s.Set(x, y, ' ')
	}
}

// Set places r at (x, y). Cells outside the screen are ignored.
func (s *Screen) Set(x, y int, r rune) {
	if !s.inside(x, y) {
		return
	}
	s.cells[y*s.width+x] = r
}

// Get returns the rune at (x, y), a space outside the screen.
func (s *Screen) Get(x, y int) rune {
	if !s.inside(x, y) {
		return ' '
	}
	return s.cells[y*s.width+x]
}

// DrawText writes text left to right from (x, y), clipping at the edges.
func (s *Screen) DrawText(x, y int, text string) {
	for _, r := range text {
		s.Set(x, y, r)
		x++
	}
}

// DrawTextCentered centers text on row y. Text wider than the screen
// starts at column 0 and is clipped on the right.
func (s *Screen) DrawTextCentered(y int, text string) {
	x := (s.width - runeLen(text)) / 2
	s.DrawText(Max(0, x), y, text)
}

// DrawTextRight draws text so that it ends margin cells before the right edge.
func (s *Screen) DrawTextRight(y, margin int, text string) {
	s.DrawText(s.width-margin-runeLen(text), y, text)
}

// DrawBox outlines r with box-drawing characters.
func (s *Screen) DrawBox(r Rect) {
	right, bottom := r.Right()-1, r.Bottom()-1

	for x := r.X + 1; x < right; x++ {
		s.Set(x, r.Y, '─')
		s.Set(x, bottom, '─')
	}
	for y := r.Y + 1; y < bottom; y++ {
		s.Set(r.X, y, '│')
		s.Set(right, y, '│')
	}

	s.Set(r.X, r.Y, '┌')
	s.Set(right, r.Y, '┐')
	s.Set(r.X, bottom, '└')
	s.Set(right, bottom, '┘')
}

// Row returns row y as a string, blank outside the screen.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	return string(s.cells[y*s.width : (y+1)*s.width])
}

// Lines returns every row top to bottom.
func (s *Screen) Lines() []string {
	lines := make([]string, s.height)
	for y := range lines {
		lines[y] = s.Row(y)
	}
	return lines
}

// String joins the rows with newlines.
func (s *Screen) String() string {
	return strings.Join(s.Lines(), "\n")
}

func runeLen(text string) int {
	n := 0
	for range text {
		n++
	}
	return n
}
