package breaker

// Milestone is the one-time notice shown when a level unlocks a mechanic.
type Milestone struct {
	Title string
	Line1 string
	Line2 string
}

var milestones = map[int]Milestone{
	reverseFromLevel: {Title: "NEW MODE", Line1: "Unlocked:", Line2: "REVERSE Mode"},
	mixedFromLevel:   {Title: "NEW MODE", Line1: "Unlocked:", Line2: "MIXED Modes"},
	timedFromLevel:   {Title: "CHALLENGE!", Line1: "Added:", Line2: "TIME LIMIT!"},
}

// MilestoneAt returns the notice for reaching level, if any.
func MilestoneAt(level int) (Milestone, bool) {
	m, ok := milestones[level]
	return m, ok
}
