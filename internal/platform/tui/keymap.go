package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/binary-breaker/internal/core"
)

// KeyMap defines the key bindings for the six device buttons.
// The bit keys are laid out left to right like the bits on screen, and the
// digit aliases are the bit values.
type KeyMap struct {
	Bit3    key.Binding
	Bit2    key.Binding
	Bit1    key.Binding
	Bit0    key.Binding
	Confirm key.Binding
	Cancel  key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Bit3, k.Bit2, k.Bit1, k.Bit0, k.Confirm, k.Cancel, k.Help}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Bit3, k.Bit2, k.Bit1, k.Bit0},
		{k.Confirm, k.Cancel},
		{k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Bit3: key.NewBinding(
			key.WithKeys("a", "8"),
			key.WithHelp("a/8", "bit 3"),
		),
		Bit2: key.NewBinding(
			key.WithKeys("s", "4"),
			key.WithHelp("s/4", "bit 2"),
		),
		Bit1: key.NewBinding(
			key.WithKeys("d", "2"),
			key.WithHelp("d/2", "bit 1"),
		),
		Bit0: key.NewBinding(
			key.WithKeys("f", "1"),
			key.WithHelp("f/1", "bit 0"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "confirm"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("backspace", "x"),
			key.WithHelp("bksp/x", "cancel (hold: skip)"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Button translates a key message to a device button.
// Returns core.ButtonNone for keys that are not buttons.
func (k KeyMap) Button(msg tea.KeyMsg) core.Button {
	for i, b := range k.bits() {
		if key.Matches(msg, b) {
			return core.BitButton(i)
		}
	}
	switch {
	case key.Matches(msg, k.Confirm):
		return core.ButtonConfirm
	case key.Matches(msg, k.Cancel):
		return core.ButtonCancel
	}
	return core.ButtonNone
}

// bits lists the bit bindings indexed by bit position.
func (k KeyMap) bits() []key.Binding {
	return []key.Binding{k.Bit0, k.Bit1, k.Bit2, k.Bit3}
}
