package monster

import "github.com/google/uuid"

// Instance is a live monster participating in one encounter. Instances are
// created when combat starts and discarded after reward calculation.
type Instance struct {
	// ID uniquely identifies this runtime instance.
	ID string
	// TemplateID is the source template's ID.
	TemplateID string
	// Name is copied from the template for display.
	Name string
	// CurrentHP is the instance's current hit points.
	CurrentHP int
	// MaxHP is the instance's maximum hit points.
	MaxHP int
	// AC is the instance's armor class.
	AC int
	// AttackBonus is the flat attack-roll modifier.
	AttackBonus int
	// DamageDice is the attack damage expression, e.g. "1d6+2".
	DamageDice string
	// Abilities holds the instance's ability modifiers.
	Abilities Abilities
	// Experience is the XP awarded when this instance is defeated.
	Experience int
	// Behavior is the AI behavior tag copied at spawn time.
	Behavior string
	// Special is the on-hit special ability; nil means none.
	Special *Special
}

// NewInstance creates a live monster instance from a template.
//
// Precondition: tmpl must be non-nil and validated.
// Postcondition: CurrentHP equals tmpl.MaxHP; ID is a fresh UUID.
func NewInstance(tmpl *Template) *Instance {
	if tmpl == nil {
		panic("monster: NewInstance requires a non-nil template")
	}
	return &Instance{
		ID:          uuid.New().String(),
		TemplateID:  tmpl.ID,
		Name:        tmpl.Name,
		CurrentHP:   tmpl.MaxHP,
		MaxHP:       tmpl.MaxHP,
		AC:          tmpl.AC,
		AttackBonus: tmpl.AttackBonus,
		DamageDice:  tmpl.DamageDice,
		Abilities:   tmpl.Abilities,
		Experience:  tmpl.Experience,
		Behavior:    tmpl.Behavior,
		Special:     tmpl.Special,
	}
}

// IsAlive reports whether the instance has hit points remaining.
func (i *Instance) IsAlive() bool { return i.CurrentHP > 0 }

// ApplyDamage reduces CurrentHP by amount, flooring at zero, and returns
// the hit points actually lost.
//
// Precondition: amount must be >= 0.
// Postcondition: CurrentHP >= 0.
func (i *Instance) ApplyDamage(amount int) int {
	if amount < 0 {
		panic("monster: ApplyDamage requires amount >= 0")
	}
	before := i.CurrentHP
	i.CurrentHP -= amount
	if i.CurrentHP < 0 {
		i.CurrentHP = 0
	}
	return before - i.CurrentHP
}

// Heal restores hit points up to MaxHP and returns the amount recovered.
//
// Precondition: amount must be >= 0.
func (i *Instance) Heal(amount int) int {
	if amount < 0 {
		panic("monster: Heal requires amount >= 0")
	}
	before := i.CurrentHP
	i.CurrentHP += amount
	if i.CurrentHP > i.MaxHP {
		i.CurrentHP = i.MaxHP
	}
	return i.CurrentHP - before
}

// Bloodied reports whether the instance is at or below half its maximum
// hit points.
func (i *Instance) Bloodied() bool {
	return i.CurrentHP*2 <= i.MaxHP
}
