package combat

import (
	"sort"
	"strings"

	"github.com/duskmire/duskmire/internal/game/item"
)

// InitiativeEntry records one combatant's initiative roll.
type InitiativeEntry struct {
	CombatantID string
	Name        string
	Natural     int // the raw d20
	Modifier    int
	Total       int
}

// Session holds the live state of a single encounter. It is created by
// StartCombat and destroyed when the encounter ends; combatants are mutated
// in place but never replaced.
//
// Invariant: turnIndex always refers into Order; OrderIDs of dead
// combatants are skipped, never removed (except by flee). The aggro table
// never references a dead key or value after PruneAggro runs at an
// end-of-turn boundary.
type Session struct {
	// Order is the initiative-ordered participant list, immutable once
	// rolled except for removal on flee.
	Order []*Combatant
	// Rolls maps combatant ID to its initiative roll.
	Rolls map[string]InitiativeEntry
	// Round counts completed initiative passes, starting at 1.
	Round int
	// Turn holds the player's per-turn flags; nil outside the player turn.
	Turn *TurnState

	turnIndex int
	// aggro maps target ID to the ID of whoever last damaged it.
	aggro map[string]string
	drops []item.Drop
	// defeatedXP accumulates experience from defeated monsters.
	defeatedXP int
}

// NewSession builds a session from rolled initiative entries, sorting
// combatants by total roll descending with ties broken by higher modifier.
// The sort is stable beyond that.
//
// Precondition: combatants and rolls must describe the same participants.
func NewSession(combatants []*Combatant, rolls map[string]InitiativeEntry) *Session {
	ordered := make([]*Combatant, len(combatants))
	copy(ordered, combatants)
	sort.SliceStable(ordered, func(i, j int) bool {
		a, b := rolls[ordered[i].ID()], rolls[ordered[j].ID()]
		if a.Total != b.Total {
			return a.Total > b.Total
		}
		return a.Modifier > b.Modifier
	})
	return &Session{
		Order: ordered,
		Rolls: rolls,
		Round: 1,
		aggro: make(map[string]string),
	}
}

// Current returns the combatant whose turn it is, advancing the pointer
// past dead combatants.
//
// Postcondition: Returns a living combatant, or nil if none remain.
func (s *Session) Current() *Combatant {
	for range s.Order {
		c := s.Order[s.turnIndex]
		if c.IsAlive() {
			return c
		}
		s.advanceIndex()
	}
	return nil
}

// Advance moves the turn pointer to the next combatant in initiative order.
func (s *Session) Advance() {
	s.advanceIndex()
}

func (s *Session) advanceIndex() {
	if len(s.Order) == 0 {
		return
	}
	s.turnIndex++
	if s.turnIndex >= len(s.Order) {
		s.turnIndex = 0
		s.Round++
	}
}

// ByID returns the combatant with the given ID, or nil.
func (s *Session) ByID(id string) *Combatant {
	for _, c := range s.Order {
		if c.ID() == id {
			return c
		}
	}
	return nil
}

// ByName returns the first combatant whose name matches, ignoring case,
// or nil.
func (s *Session) ByName(name string) *Combatant {
	for _, c := range s.Order {
		if strings.EqualFold(c.Name(), name) {
			return c
		}
	}
	return nil
}

// Player returns the player combatant, or nil if it has been removed.
func (s *Session) Player() *Combatant {
	for _, c := range s.Order {
		if c.IsPlayer() {
			return c
		}
	}
	return nil
}

// LivingMonsters returns the monsters still alive, in initiative order.
func (s *Session) LivingMonsters() []*Combatant {
	var out []*Combatant
	for _, c := range s.Order {
		if !c.IsPlayer() && c.IsAlive() {
			out = append(out, c)
		}
	}
	return out
}

// Remove deletes the combatant from the initiative order (used for flee).
// The turn pointer is adjusted so the order of the survivors' turns is
// preserved.
func (s *Session) Remove(id string) {
	for i, c := range s.Order {
		if c.ID() != id {
			continue
		}
		s.Order = append(s.Order[:i], s.Order[i+1:]...)
		if i < s.turnIndex {
			s.turnIndex--
		}
		if s.turnIndex >= len(s.Order) {
			// The departed combatant held the final slot; its turn closed
			// the round.
			s.turnIndex = 0
			s.Round++
		}
		delete(s.aggro, id)
		for target, attacker := range s.aggro {
			if attacker == id {
				delete(s.aggro, target)
			}
		}
		return
	}
}

// RecordAggro notes that attacker most recently damaged target.
func (s *Session) RecordAggro(targetID, attackerID string) {
	s.aggro[targetID] = attackerID
}

// LastAttacker returns the ID of whoever last damaged target, or "".
func (s *Session) LastAttacker(targetID string) string {
	return s.aggro[targetID]
}

// PruneAggro drops aggro entries whose key or value combatant is dead or
// gone. Run once per end-of-turn boundary to bound table growth across
// long encounters.
//
// Postcondition: every surviving entry references two living combatants.
func (s *Session) PruneAggro() {
	for target, attacker := range s.aggro {
		tc, ac := s.ByID(target), s.ByID(attacker)
		if tc == nil || !tc.IsAlive() || ac == nil || !ac.IsAlive() {
			delete(s.aggro, target)
		}
	}
}

// AddDrop records an item dropped during the encounter.
func (s *Session) AddDrop(d item.Drop) {
	s.drops = append(s.drops, d)
}

// Drops returns a snapshot of the items dropped so far.
func (s *Session) Drops() []item.Drop {
	out := make([]item.Drop, len(s.drops))
	copy(out, s.drops)
	return out
}

// AddDefeatedXP accumulates the experience value of a defeated monster.
//
// Precondition: xp must be >= 0.
func (s *Session) AddDefeatedXP(xp int) {
	s.defeatedXP += xp
}

// DefeatedXP returns the experience earned from defeated monsters so far.
func (s *Session) DefeatedXP() int { return s.defeatedXP }
