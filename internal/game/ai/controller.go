package ai

import "github.com/duskmire/duskmire/internal/game/dice"

// FleeDC is the fixed difficulty class a monster's flee check must meet.
const FleeDC = 12

// TargetView is a snapshot of one potential target, supplied by the combat
// engine. The AI never holds live combatant references.
type TargetView struct {
	ID        string
	Name      string
	CurrentHP int
	IsPlayer  bool
}

// SelectTarget picks the target ID for a monster's attack, in priority order:
//
//  1. the combatant that last attacked this monster, if still a live candidate
//  2. under Tactical behavior, the living non-monster candidate with the
//     lowest current hit points
//  3. the player
//
// candidates must contain only living combatants. Returns "" when no
// candidate remains.
//
// Postcondition: the returned ID is either "" or present in candidates.
func SelectTarget(b Behavior, lastAttackerID string, candidates []TargetView) string {
	if lastAttackerID != "" {
		for _, c := range candidates {
			if c.ID == lastAttackerID {
				return c.ID
			}
		}
	}

	if b == Tactical {
		weakest := ""
		weakestHP := 0
		for _, c := range candidates {
			if !c.IsPlayer {
				continue
			}
			if weakest == "" || c.CurrentHP < weakestHP {
				weakest = c.ID
				weakestHP = c.CurrentHP
			}
		}
		if weakest != "" {
			return weakest
		}
	}

	for _, c := range candidates {
		if c.IsPlayer {
			return c.ID
		}
	}
	return ""
}

// FleeCheck is the audited result of one flee attempt.
type FleeCheck struct {
	Natural  int
	Modifier int
	Total    int
	DC       int
	Success  bool
}

// AttemptFlee rolls the monster's flee check: d20 + dexterity modifier
// against the fixed DC. A failed check forfeits the flee; the engine makes
// the monster attack instead.
//
// Precondition: src must be non-nil.
func AttemptFlee(dexMod int, src dice.Source) FleeCheck {
	roll := dice.RollD20(src, dice.Straight)
	total := roll.Kept + dexMod
	return FleeCheck{
		Natural:  roll.Kept,
		Modifier: dexMod,
		Total:    total,
		DC:       FleeDC,
		Success:  total >= FleeDC,
	}
}
