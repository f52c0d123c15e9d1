package core

// Button identifies one physical control on the button matrix.
type Button int

const (
	ButtonNone Button = iota
	ButtonBit0        // rightmost bit, value 1
	ButtonBit1        // value 2
	ButtonBit2        // value 4
	ButtonBit3        // leftmost bit, value 8
	ButtonConfirm
	ButtonCancel
)

// Buttons lists every real button in scan order.
var Buttons = []Button{
	ButtonBit0,
	ButtonBit1,
	ButtonBit2,
	ButtonBit3,
	ButtonConfirm,
	ButtonCancel,
}

// String returns the label printed on the button.
func (b Button) String() string {
	switch b {
	case ButtonNone:
		return "None"
	case ButtonBit0:
		return "Bit 0"
	case ButtonBit1:
		return "Bit 1"
	case ButtonBit2:
		return "Bit 2"
	case ButtonBit3:
		return "Bit 3"
	case ButtonConfirm:
		return "Confirm"
	case ButtonCancel:
		return "Cancel"
	default:
		return "Unknown"
	}
}

// BitIndex returns the bit position a bit button controls.
// The second result is false for Confirm, Cancel and None.
func (b Button) BitIndex() (int, bool) {
	switch b {
	case ButtonBit0:
		return 0, true
	case ButtonBit1:
		return 1, true
	case ButtonBit2:
		return 2, true
	case ButtonBit3:
		return 3, true
	default:
		return 0, false
	}
}

// BitButton returns the button controlling bit i, or ButtonNone if i is out of range.
func BitButton(i int) Button {
	switch i {
	case 0:
		return ButtonBit0
	case 1:
		return ButtonBit1
	case 2:
		return ButtonBit2
	case 3:
		return ButtonBit3
	default:
		return ButtonNone
	}
}
