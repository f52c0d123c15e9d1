package display

// CellSize is the side of one character cell on the OLED, in pixels.
const CellSize = 8

// Stroke is a horizontal or vertical pixel run inside a cell, both ends
// included, in cell coordinates.
type Stroke struct {
	X0, Y0, X1, Y1 int
}

// BoxStrokes returns the lines that draw the frame rune r in a cell of n
// pixels. Fonts for small panels lack box drawing characters, so panels
// draw the frame from these instead. It reports false for other runes.
func BoxStrokes(r rune, n int) ([]Stroke, bool) {
	m := n/2 - 1
	end := n - 1
	switch r {
	case '─':
		return []Stroke{{0, m, end, m}}, true
	case '│':
		return []Stroke{{m, 0, m, end}}, true
	case '┌':
		return []Stroke{{m, m, end, m}, {m, m, m, end}}, true
	case '┐':
		return []Stroke{{0, m, m, m}, {m, m, m, end}}, true
	case '└':
		return []Stroke{{m, 0, m, m}, {m, m, end, m}}, true
	case '┘':
		return []Stroke{{m, 0, m, m}, {0, m, m, m}}, true
	}
	return nil, false
}

// Points calls plot for every pixel on the stroke.
func (s Stroke) Points(plot func(x, y int)) {
	for y := min(s.Y0, s.Y1); y <= max(s.Y0, s.Y1); y++ {
		for x := min(s.X0, s.X1); x <= max(s.X0, s.X1); x++ {
			plot(x, y)
		}
	}
}
