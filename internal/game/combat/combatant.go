// Package combat implements the encounter engine: initiative and turn
// order, attack resolution, status-effect plumbing, and the per-turn
// resource bookkeeping class abilities consume.
package combat

import (
	"github.com/duskmire/duskmire/internal/game/character"
	"github.com/duskmire/duskmire/internal/game/monster"
)

// Kind distinguishes the two closed combatant variants.
type Kind int

const (
	KindPlayer Kind = iota
	KindMonster
)

// Combatant is one participant in an encounter: either the player character
// or a live monster instance. The variant set is closed; all combat code
// works through this wrapper and the two payload accessors.
//
// Invariant: exactly one of the two payloads is non-nil, matching Kind.
type Combatant struct {
	Kind Kind

	player  *character.Character
	monster *monster.Instance
}

// NewPlayer wraps a player character as a combatant.
//
// Precondition: c must be non-nil.
func NewPlayer(c *character.Character) *Combatant {
	if c == nil {
		panic("combat: NewPlayer requires a non-nil character")
	}
	return &Combatant{Kind: KindPlayer, player: c}
}

// NewMonster wraps a live monster instance as a combatant.
//
// Precondition: m must be non-nil.
func NewMonster(m *monster.Instance) *Combatant {
	if m == nil {
		panic("combat: NewMonster requires a non-nil instance")
	}
	return &Combatant{Kind: KindMonster, monster: m}
}

// IsPlayer reports whether this combatant is the player character.
func (c *Combatant) IsPlayer() bool { return c.Kind == KindPlayer }

// Player returns the character payload, or nil for a monster combatant.
func (c *Combatant) Player() *character.Character { return c.player }

// Monster returns the monster payload, or nil for the player combatant.
func (c *Combatant) Monster() *monster.Instance { return c.monster }

// ID returns the combatant's stable identifier.
func (c *Combatant) ID() string {
	if c.IsPlayer() {
		return c.player.ID
	}
	return c.monster.ID
}

// Name returns the combatant's display name.
func (c *Combatant) Name() string {
	if c.IsPlayer() {
		return c.player.Name
	}
	return c.monster.Name
}

// CurrentHP returns the combatant's current hit points.
func (c *Combatant) CurrentHP() int {
	if c.IsPlayer() {
		return c.player.CurrentHP
	}
	return c.monster.CurrentHP
}

// MaxHP returns the combatant's maximum hit points.
func (c *Combatant) MaxHP() int {
	if c.IsPlayer() {
		return c.player.MaxHP
	}
	return c.monster.MaxHP
}

// ArmorClass returns the combatant's armor class. The value is a signed
// integer with no floor.
func (c *Combatant) ArmorClass() int {
	if c.IsPlayer() {
		return c.player.ArmorClass
	}
	return c.monster.AC
}

// InitiativeMod returns the modifier added to the combatant's initiative
// roll: the dexterity modifier for both variants.
func (c *Combatant) InitiativeMod() int {
	if c.IsPlayer() {
		return c.player.Abilities.Mod(character.Dexterity)
	}
	return c.monster.Abilities.Dex
}

// IsAlive reports whether the combatant has hit points remaining.
func (c *Combatant) IsAlive() bool { return c.CurrentHP() > 0 }

// ApplyDamage reduces hit points by amount, flooring at zero, and returns
// the hit points actually lost.
//
// Precondition: amount must be >= 0.
// Postcondition: CurrentHP() >= 0.
func (c *Combatant) ApplyDamage(amount int) int {
	if c.IsPlayer() {
		return c.player.ApplyDamage(amount)
	}
	return c.monster.ApplyDamage(amount)
}

// Heal restores hit points up to the maximum and returns the amount
// recovered.
//
// Precondition: amount must be >= 0.
func (c *Combatant) Heal(amount int) int {
	if c.IsPlayer() {
		return c.player.Heal(amount)
	}
	return c.monster.Heal(amount)
}

// SaveModifier returns the combatant's saving-throw modifier for the named
// ability.
func (c *Combatant) SaveModifier(ability string) int {
	if c.IsPlayer() {
		return c.player.Abilities.Mod(ability)
	}
	return c.monster.Abilities.Mod(ability)
}
