// Package dice provides the randomness abstraction and roll-result types
// for the Duskmire combat engine.
package dice

import "fmt"

// RollResult holds the full audit trail for a single dice roll evaluation.
//
// Postcondition: Total() == sum(Dice) + Modifier.
type RollResult struct {
	Expression string // original expression string, e.g. "2d6+3"
	Dice       []int  // individual die results before modifier
	Modifier   int    // flat modifier (may be negative)
}

// Total returns the sum of all die results plus the modifier.
//
// Postcondition: return value == sum(r.Dice) + r.Modifier.
func (r RollResult) Total() int {
	total := r.Modifier
	for _, d := range r.Dice {
		total += d
	}
	return total
}

// String returns a human-readable audit string in the format:
//
//	"2d6+3 → [4 5] +3 = 12"
//
// Precondition: r.Expression is non-empty.
func (r RollResult) String() string {
	if r.Expression == "" {
		panic("dice: RollResult.String() precondition violated: Expression must be non-empty")
	}
	return fmt.Sprintf("%s → %v %+d = %d", r.Expression, r.Dice, r.Modifier, r.Total())
}

// Source is the randomness provider for dice rolls.
//
// Implementations MUST be safe for concurrent use.
type Source interface {
	// Intn returns a non-negative random int in [0, n).
	//
	// Precondition: n > 0.
	Intn(n int) int
}

// CheckMode selects how a d20 check roll is made.
type CheckMode int

const (
	// Straight rolls a single d20.
	Straight CheckMode = iota
	// Advantage rolls two d20s and keeps the higher.
	Advantage
	// Disadvantage rolls two d20s and keeps the lower.
	Disadvantage
)

// String returns the human-readable mode label.
func (m CheckMode) String() string {
	switch m {
	case Advantage:
		return "advantage"
	case Disadvantage:
		return "disadvantage"
	default:
		return "straight"
	}
}

// ModeFor resolves an advantage flag and a disadvantage flag into a CheckMode.
// When both flags are set they cancel and the check is a straight roll.
//
// Postcondition: Returns Straight when advantage == disadvantage.
func ModeFor(advantage, disadvantage bool) CheckMode {
	switch {
	case advantage && !disadvantage:
		return Advantage
	case disadvantage && !advantage:
		return Disadvantage
	default:
		return Straight
	}
}

// D20Roll records a single d20 check with its full audit trail.
type D20Roll struct {
	Mode  CheckMode
	Rolls []int // every die rolled: one entry for Straight, two otherwise
	Kept  int   // the die actually used for the check
}

// RollD20 performs a d20 check under the given mode.
//
// Precondition: src must be non-nil.
// Postcondition: Kept is in [1, 20]; len(Rolls) == 1 for Straight and 2 otherwise;
// Kept == max(Rolls) under Advantage and min(Rolls) under Disadvantage.
func RollD20(src Source, mode CheckMode) D20Roll {
	first := src.Intn(20) + 1
	if mode == Straight {
		return D20Roll{Mode: mode, Rolls: []int{first}, Kept: first}
	}
	second := src.Intn(20) + 1
	kept := first
	if mode == Advantage && second > first {
		kept = second
	}
	if mode == Disadvantage && second < first {
		kept = second
	}
	return D20Roll{Mode: mode, Rolls: []int{first, second}, Kept: kept}
}
