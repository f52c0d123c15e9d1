// Package tui runs Binary Breaker in a terminal. It draws the display
// panel, the status lamps and the buzzer with Lip Gloss, maps keys to the
// six device buttons and ticks the game controller from the Bubble Tea loop.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a controller tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends a tick after interval.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
