package core

// Cue is a fire-and-forget sound effect request.
type Cue int

const (
	CueStartup Cue = iota
	CueConfirm
	CueError
	CuePress
	CueReset
)

// String returns the cue name.
func (c Cue) String() string {
	switch c {
	case CueStartup:
		return "startup"
	case CueConfirm:
		return "confirm"
	case CueError:
		return "error"
	case CuePress:
		return "press"
	case CueReset:
		return "reset"
	default:
		return "unknown"
	}
}
