// Package status implements the status-effect engine: timed effects,
// named conditions, and the per-combatant manager that evolves them at
// turn boundaries.
package status

// Condition is a closed set of named mechanical states. A status Effect may
// or may not carry a Condition tag; the zero value ConditionNone means the
// effect is purely a marker (rage, sacred weapon, and similar).
type Condition int

const (
	ConditionNone Condition = iota
	Restrained
	Paralyzed
	Stunned
	Prone
	Unconscious
	Blinded
	Frightened
	Poisoned
)

// String returns the lower-case condition name.
func (c Condition) String() string {
	switch c {
	case Restrained:
		return "restrained"
	case Paralyzed:
		return "paralyzed"
	case Stunned:
		return "stunned"
	case Prone:
		return "prone"
	case Unconscious:
		return "unconscious"
	case Blinded:
		return "blinded"
	case Frightened:
		return "frightened"
	case Poisoned:
		return "poisoned"
	default:
		return "none"
	}
}

// GrantsAdvantageToAttackers reports whether attackers gain advantage
// against a holder of this condition.
func (c Condition) GrantsAdvantageToAttackers() bool {
	switch c {
	case Restrained, Paralyzed, Stunned, Prone, Unconscious:
		return true
	}
	return false
}

// ImposesDisadvantageOnAttacks reports whether the holder's own attack
// rolls suffer disadvantage.
func (c Condition) ImposesDisadvantageOnAttacks() bool {
	switch c {
	case Blinded, Frightened, Poisoned, Prone, Restrained:
		return true
	}
	return false
}

// MeleeHitsAutoCrit reports whether melee hits against a holder of this
// condition are automatically critical.
func (c Condition) MeleeHitsAutoCrit() bool {
	return c == Paralyzed || c == Unconscious
}

// PreventsActions reports whether the holder cannot take actions.
func (c Condition) PreventsActions() bool {
	return c == Paralyzed || c == Stunned || c == Unconscious
}
