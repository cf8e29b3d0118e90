package combat

import (
	"github.com/duskmire/duskmire/internal/game/dice"
	"github.com/duskmire/duskmire/internal/game/item"
)

// EventType tags a structured combat result value. The engine never formats
// prose; rendering the numeric details is the caller's responsibility.
type EventType int

const (
	EventCombatStarted EventType = iota
	EventTurnStarted
	EventAttackHit
	EventAttackMiss
	EventCombatantDefeated
	EventVictory
	EventDefeat
	EventFled
	EventInfo
)

// String returns the snake_case event-type label.
func (t EventType) String() string {
	switch t {
	case EventCombatStarted:
		return "combat_started"
	case EventTurnStarted:
		return "turn_started"
	case EventAttackHit:
		return "attack_hit"
	case EventAttackMiss:
		return "attack_miss"
	case EventCombatantDefeated:
		return "combatant_defeated"
	case EventVictory:
		return "victory"
	case EventDefeat:
		return "defeat"
	case EventFled:
		return "fled"
	default:
		return "info"
	}
}

// RollDetail carries the numeric audit trail of one d20 check.
type RollDetail struct {
	Mode     dice.CheckMode
	Rolls    []int // every die rolled
	Natural  int   // the kept die before modifiers
	Modifier int
	Total    int
	Target   int // the AC or DC the total was compared against
}

// Event is one structured combat result value returned to the caller.
// Fields are populated as relevant to the Type and Code; zero values mean
// "not applicable".
type Event struct {
	Type EventType
	// Code is a machine-readable detail tag, e.g. "initiative",
	// "rage_activated", "opportunity_attack", "disarmed".
	Code   string
	Actor  string // acting combatant's display name
	Target string // target combatant's display name
	Roll   *RollDetail
	// Damage is hit points dealt; Healing is hit points restored.
	Damage   int
	Healing  int
	Critical bool
	// Bonuses annotates feature damage riders applied to an attack,
	// e.g. "sneak_attack", "divine_smite".
	Bonuses []string
	// XP is the experience awarded on victory.
	XP int
	// Drops lists the items returned to the player's inventory on victory.
	Drops []item.Drop
}

func info(code, actor string) Event {
	return Event{Type: EventInfo, Code: code, Actor: actor}
}
