// Package breaker implements the Binary Breaker game: task generation,
// answer validation, the session state record and the screen state machine
// that drives the display, sound, lamp and persistence collaborators.
package breaker

import "fmt"

// Mode is the direction of the current conversion task.
type Mode int

const (
	ModeNone    Mode = iota // no active task
	ModeClassic             // decimal shown, player sets bits
	ModeReverse             // bits shown, player sums bit values
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeClassic:
		return "CLASSIC"
	case ModeReverse:
		return "REVERSE"
	default:
		return "NONE"
	}
}

// Arrow returns the short conversion label shown on the HUD.
func (m Mode) Arrow() string {
	switch m {
	case ModeClassic:
		return "D->B"
	case ModeReverse:
		return "B->D"
	default:
		return "----"
	}
}

// Screen is the state of the screen-transition controller.
type Screen int

const (
	ScreenMenu Screen = iota
	ScreenGame
	ScreenFeedback
	ScreenInfo
	ScreenGameOver
	ScreenWin
)

// String returns the screen name.
func (s Screen) String() string {
	switch s {
	case ScreenMenu:
		return "MENU"
	case ScreenGame:
		return "GAME"
	case ScreenFeedback:
		return "FEEDBACK"
	case ScreenInfo:
		return "INFO"
	case ScreenGameOver:
		return "GAME_OVER"
	case ScreenWin:
		return "WIN"
	default:
		return "UNKNOWN"
	}
}

// BitString is a 4-bit value written as characters, most significant first.
// Index 0 of the bit numbering is the rightmost character.
type BitString [4]byte

// ZeroBits is the cleared player input.
var ZeroBits = BitString{'0', '0', '0', '0'}

// String returns the characters, e.g. "1010".
func (b BitString) String() string {
	return string(b[:])
}

// Bit reports whether bit i (0 = rightmost) is set.
func (b BitString) Bit(i int) bool {
	return b[3-i] == '1'
}

// Toggle returns a copy with bit i (0 = rightmost) flipped.
func (b BitString) Toggle(i int) BitString {
	if b[3-i] == '1' {
		b[3-i] = '0'
	} else {
		b[3-i] = '1'
	}
	return b
}

// Task is the value the player must convert. It carries its own face:
// a decimal number for CLASSIC tasks, a bit string for REVERSE tasks.
// The zero Task has mode ModeNone.
type Task struct {
	mode    Mode
	decimal uint8
	binary  BitString
}

// DecimalTask creates a CLASSIC task showing n.
func DecimalTask(n uint8) Task {
	return Task{mode: ModeClassic, decimal: n}
}

// BinaryTask creates a REVERSE task showing b.
func BinaryTask(b BitString) Task {
	return Task{mode: ModeReverse, binary: b}
}

// Mode returns which face the task has.
func (t Task) Mode() Mode {
	return t.mode
}

// Decimal returns the decimal face of a CLASSIC task.
func (t Task) Decimal() (uint8, bool) {
	return t.decimal, t.mode == ModeClassic
}

// Binary returns the bit-string face of a REVERSE task.
func (t Task) Binary() (BitString, bool) {
	return t.binary, t.mode == ModeReverse
}

// Value returns the underlying decimal value regardless of face.
func (t Task) Value() int {
	switch t.mode {
	case ModeClassic:
		return int(t.decimal)
	case ModeReverse:
		return BinaryToDecimal(t.binary)
	default:
		return 0
	}
}

// String renders the face the player sees.
func (t Task) String() string {
	switch t.mode {
	case ModeClassic:
		return fmt.Sprintf("%d", t.decimal)
	case ModeReverse:
		return t.binary.String()
	default:
		return "-"
	}
}
