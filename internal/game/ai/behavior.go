// Package ai implements monster decision making: behavior-driven target
// selection and flee decisions. The controller works on lightweight
// combatant snapshots supplied by the combat engine, so it carries no
// reference to live session state.
package ai

import "fmt"

// Behavior is the closed set of monster dispositions.
type Behavior int

const (
	// Aggressive monsters never flee.
	Aggressive Behavior = iota
	// Cowardly monsters flee once bloodied (at or below 50% max HP).
	Cowardly
	// Defensive monsters flee at or below 25% max HP.
	Defensive
	// Tactical monsters never flee on their own and prefer the weakest
	// non-monster target when not retaliating.
	Tactical
)

// String returns the lower-case behavior label.
func (b Behavior) String() string {
	switch b {
	case Aggressive:
		return "aggressive"
	case Cowardly:
		return "cowardly"
	case Defensive:
		return "defensive"
	case Tactical:
		return "tactical"
	default:
		return "unknown"
	}
}

// ParseBehavior maps a behavior tag string to a Behavior. The empty string
// defaults to Aggressive.
//
// Postcondition: Returns an error only for a non-empty unknown tag.
func ParseBehavior(tag string) (Behavior, error) {
	switch tag {
	case "", "aggressive":
		return Aggressive, nil
	case "cowardly":
		return Cowardly, nil
	case "defensive":
		return Defensive, nil
	case "tactical":
		return Tactical, nil
	default:
		return Aggressive, fmt.Errorf("ai: unknown behavior tag %q", tag)
	}
}

// ShouldFlee reports whether a monster with this behavior wants to flee at
// the given hit-point state.
//
// Precondition: maxHP must be >= 1.
func (b Behavior) ShouldFlee(currentHP, maxHP int) bool {
	if maxHP < 1 {
		panic("ai: ShouldFlee requires maxHP >= 1")
	}
	switch b {
	case Cowardly:
		return currentHP*2 <= maxHP
	case Defensive:
		return currentHP*4 <= maxHP
	default:
		return false
	}
}
