package breaker

import "math/rand"

// Task value range. Both ends fit in four bits, which keeps every task
// representable as a BitString.
const (
	MinTaskValue = 3
	MaxTaskValue = 15
)

// Difficulty tiers by level.
const (
	reverseFromLevel = 4  // REVERSE only from here
	mixedFromLevel   = 7  // random mode from here
	timedFromLevel   = 13 // countdown from here

	baseTimeLimit = 15 // seconds at timedFromLevel
	minTimeLimit  = 5
)

// BitValues holds the decimal weight of each bit, indexed from the right.
var BitValues = [4]int{1, 2, 4, 8}

// DecimalToBinary returns the 4-bit zero-padded encoding of n.
// n must be in [0, 15]; higher bits are discarded.
func DecimalToBinary(n int) BitString {
	b := ZeroBits
	for i := 0; i < 4; i++ {
		if n&(1<<i) != 0 {
			b[3-i] = '1'
		}
	}
	return b
}

// BinaryToDecimal returns the value encoded by b.
func BinaryToDecimal(b BitString) int {
	n := 0
	for i := 0; i < 4; i++ {
		if b.Bit(i) {
			n += BitValues[i]
		}
	}
	return n
}

// TimeLimit returns the countdown in seconds for a level, 0 meaning none.
func TimeLimit(level int) int {
	if level < timedFromLevel {
		return 0
	}
	limit := baseTimeLimit - (level - timedFromLevel)
	if limit < minTimeLimit {
		return minTimeLimit
	}
	return limit
}

// TaskGenerator draws tasks following the level difficulty curve.
type TaskGenerator struct {
	rng *rand.Rand
}

// NewTaskGenerator creates a generator with a deterministic seed.
func NewTaskGenerator(seed int64) *TaskGenerator {
	return &TaskGenerator{rng: rand.New(rand.NewSource(seed))}
}

// Generate returns a task, its mode and its time limit in seconds for level.
//
//	level  < 4   CLASSIC
//	level  < 7   REVERSE
//	level  < 13  CLASSIC or REVERSE
//	level >= 13  CLASSIC or REVERSE, limited to max(5, 15-(level-13)) seconds
func (g *TaskGenerator) Generate(level int) (Task, Mode, int) {
	value := MinTaskValue + g.rng.Intn(MaxTaskValue-MinTaskValue+1)

	var mode Mode
	switch {
	case level < reverseFromLevel:
		mode = ModeClassic
	case level < mixedFromLevel:
		mode = ModeReverse
	default:
		mode = g.pickMode()
	}

	if mode == ModeReverse {
		return BinaryTask(DecimalToBinary(value)), mode, TimeLimit(level)
	}
	return DecimalTask(uint8(value)), mode, TimeLimit(level)
}

func (g *TaskGenerator) pickMode() Mode {
	if g.rng.Intn(2) == 0 {
		return ModeClassic
	}
	return ModeReverse
}

// CheckAnswer validates the player's answer for the current task.
// CLASSIC compares the bit input against the task's encoding; REVERSE
// compares the accumulated sum against the task's value. Any other mode,
// or a task whose face does not match the mode, is incorrect.
func CheckAnswer(mode Mode, task Task, input BitString, sum int) bool {
	switch mode {
	case ModeClassic:
		n, ok := task.Decimal()
		return ok && input == DecimalToBinary(int(n))
	case ModeReverse:
		b, ok := task.Binary()
		return ok && sum == BinaryToDecimal(b)
	default:
		return false
	}
}
