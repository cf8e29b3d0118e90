package status

import (
	"go.uber.org/zap"

	"github.com/duskmire/duskmire/internal/game/dice"
)

// TickEvent describes one effect change produced at a turn boundary.
type TickEvent struct {
	OwnerID  string
	EffectID string
	Expired  bool // true when the effect was removed
	SaveRoll int  // kept d20 for an attempted saving throw; 0 if none
	SaveDC   int  // DC of the attempted saving throw; 0 if none
	Saved    bool // true when an until-save effect was shaken off
	Damage   int  // ongoing damage owed to the owner this turn
	Healing  int  // ongoing healing owed to the owner this turn
}

// SaveModifierFunc resolves a combatant's saving-throw modifier for a named
// ability. The engine supplies it so the manager stays ignorant of the
// combatant variants.
type SaveModifierFunc func(ownerID, ability string) int

// Manager owns the active status effects for every combatant in an
// encounter, keyed by combatant ID. Effects are only created and expired at
// turn boundaries, never mid-action.
//
// Manager is not safe for concurrent use; the engine serialises access.
type Manager struct {
	effects map[string][]*Effect
	logger  *zap.Logger
}

// NewManager creates an empty Manager.
//
// Precondition: logger must be non-nil.
func NewManager(logger *zap.Logger) *Manager {
	if logger == nil {
		panic("status: NewManager requires a non-nil logger")
	}
	return &Manager{effects: make(map[string][]*Effect), logger: logger}
}

// Apply adds an effect to the given combatant. Re-applying an effect with
// the same ID replaces the existing instance (durations do not stack).
//
// Precondition: e must be non-nil and ownerID non-empty.
// Postcondition: Has(ownerID, e.ID) is true.
func (m *Manager) Apply(ownerID string, e *Effect) {
	if e == nil || ownerID == "" {
		panic("status: Apply requires a non-nil effect and a non-empty owner ID")
	}
	m.Remove(ownerID, e.ID)
	m.effects[ownerID] = append(m.effects[ownerID], e)
	m.logger.Debug("status effect applied",
		zap.String("owner", ownerID),
		zap.String("effect", e.ID),
		zap.String("duration", e.Kind.String()),
	)
}

// Remove deletes the effect with the given ID from the combatant.
// A missing effect is a no-op.
//
// Postcondition: Has(ownerID, effectID) is false.
func (m *Manager) Remove(ownerID, effectID string) {
	list := m.effects[ownerID]
	for i, e := range list {
		if e.ID == effectID {
			m.effects[ownerID] = append(list[:i], list[i+1:]...)
			return
		}
	}
}

// Clear drops every effect held by the combatant. Called when a combatant
// dies or leaves the encounter.
func (m *Manager) Clear(ownerID string) {
	delete(m.effects, ownerID)
}

// Has reports whether the combatant currently holds the effect.
func (m *Manager) Has(ownerID, effectID string) bool {
	for _, e := range m.effects[ownerID] {
		if e.ID == effectID {
			return true
		}
	}
	return false
}

// Active returns a snapshot slice of the combatant's effects. The slice is
// a fresh allocation but the pointed-to Effects are shared; callers must
// not modify them.
func (m *Manager) Active(ownerID string) []*Effect {
	list := m.effects[ownerID]
	out := make([]*Effect, len(list))
	copy(out, list)
	return out
}

// HasCondition reports whether any active effect carries the condition.
func (m *Manager) HasCondition(ownerID string, cond Condition) bool {
	for _, e := range m.effects[ownerID] {
		if e.Condition == cond {
			return true
		}
	}
	return false
}

// ProcessTurnStart expires until-turn-start effects for the combatant whose
// turn is beginning and reports ongoing damage or healing owed by the
// surviving effects. The manager never touches hit points; the caller
// applies the reported amounts.
//
// Postcondition: no effect with Kind == DurationUntilTurnStart remains.
func (m *Manager) ProcessTurnStart(ownerID string) []TickEvent {
	var events []TickEvent
	kept := m.effects[ownerID][:0]
	for _, e := range m.effects[ownerID] {
		if e.Kind == DurationUntilTurnStart {
			events = append(events, TickEvent{OwnerID: ownerID, EffectID: e.ID, Expired: true})
			continue
		}
		if e.TickDamage > 0 || e.TickHealing > 0 {
			events = append(events, TickEvent{
				OwnerID:  ownerID,
				EffectID: e.ID,
				Damage:   e.TickDamage,
				Healing:  e.TickHealing,
			})
		}
		kept = append(kept, e)
	}
	m.effects[ownerID] = kept
	return events
}

// ProcessTurnEnd advances durations at the end of the combatant's turn:
// fixed-round effects tick down and expire at zero, until-turn-end effects
// expire, and until-save effects get an automatic saving throw using the
// owner's modifier for the stored ability.
//
// Precondition: saveMod and src must be non-nil.
// Postcondition: Remaining never goes below zero for any surviving effect.
func (m *Manager) ProcessTurnEnd(ownerID string, saveMod SaveModifierFunc, src dice.Source) []TickEvent {
	if saveMod == nil || src == nil {
		panic("status: ProcessTurnEnd requires a save modifier func and a dice source")
	}
	var events []TickEvent
	kept := m.effects[ownerID][:0]
	for _, e := range m.effects[ownerID] {
		switch e.Kind {
		case DurationRounds:
			e.Remaining--
			if e.Remaining <= 0 {
				e.Remaining = 0
				events = append(events, TickEvent{OwnerID: ownerID, EffectID: e.ID, Expired: true})
				continue
			}
		case DurationUntilTurnEnd:
			events = append(events, TickEvent{OwnerID: ownerID, EffectID: e.ID, Expired: true})
			continue
		case DurationUntilSave:
			roll := dice.RollD20(src, dice.Straight)
			total := roll.Kept + saveMod(ownerID, e.SaveAbility)
			saved := total >= e.SaveDC
			events = append(events, TickEvent{
				OwnerID:  ownerID,
				EffectID: e.ID,
				Expired:  saved,
				SaveRoll: roll.Kept,
				SaveDC:   e.SaveDC,
				Saved:    saved,
			})
			if saved {
				m.logger.Debug("saving throw shakes off effect",
					zap.String("owner", ownerID),
					zap.String("effect", e.ID),
					zap.Int("roll", roll.Kept),
					zap.Int("dc", e.SaveDC),
				)
				continue
			}
		}
		kept = append(kept, e)
	}
	m.effects[ownerID] = kept
	return events
}

// HasAdvantageOnAttacks reports whether the combatant's own attack rolls
// currently have advantage from an active effect (reckless stance).
func (m *Manager) HasAdvantageOnAttacks(ownerID string) bool {
	return m.Has(ownerID, "reckless")
}

// HasDisadvantageOnAttacks reports whether the combatant's own attack rolls
// suffer disadvantage from any active condition.
func (m *Manager) HasDisadvantageOnAttacks(ownerID string) bool {
	for _, e := range m.effects[ownerID] {
		if e.Condition.ImposesDisadvantageOnAttacks() {
			return true
		}
	}
	return false
}

// AttacksHaveAdvantageAgainst reports whether attacks against the target
// gain advantage, either from a condition the target holds or because the
// target is fighting recklessly. Patient defense imposes the opposite and
// is reported separately by AttacksHaveDisadvantageAgainst.
func (m *Manager) AttacksHaveAdvantageAgainst(targetID string) bool {
	for _, e := range m.effects[targetID] {
		if e.Condition.GrantsAdvantageToAttackers() {
			return true
		}
		if e.ID == "reckless" {
			return true
		}
	}
	return false
}

// AttacksHaveDisadvantageAgainst reports whether attacks against the target
// suffer disadvantage (patient defense).
func (m *Manager) AttacksHaveDisadvantageAgainst(targetID string) bool {
	return m.Has(targetID, "patient_defense")
}

// MeleeCritsAgainst reports whether a melee hit on the target is
// automatically a critical hit.
func (m *Manager) MeleeCritsAgainst(targetID string) bool {
	for _, e := range m.effects[targetID] {
		if e.Condition.MeleeHitsAutoCrit() {
			return true
		}
	}
	return false
}

// CanAct reports whether the combatant may take actions this turn.
func (m *Manager) CanAct(ownerID string) bool {
	for _, e := range m.effects[ownerID] {
		if e.Condition.PreventsActions() {
			return false
		}
	}
	return true
}
