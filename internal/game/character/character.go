// Package character defines the player character domain model: ability
// scores, class features, and the expendable resource pools that class
// abilities consume. Characters outlive any single encounter; the combat
// engine mutates hit points and spends pool charges but never owns them.
package character

// Ability names the six core ability scores. Saving throws and status
// effects reference abilities by these lower-case keys.
const (
	Strength     = "str"
	Dexterity    = "dex"
	Constitution = "con"
	Intelligence = "int"
	Wisdom       = "wis"
	Charisma     = "cha"
)

// AbilityScores holds the six core ability score values.
type AbilityScores struct {
	Strength     int
	Dexterity    int
	Constitution int
	Intelligence int
	Wisdom       int
	Charisma     int
}

// Modifier computes the standard ability modifier using floor division:
// floor((score - 10) / 2).
//
// Postcondition: Returns floor((score - 10) / 2).
func Modifier(score int) int {
	diff := score - 10
	if diff < 0 {
		return (diff - 1) / 2
	}
	return diff / 2
}

// Mod returns the modifier for the named ability key, or 0 for an unknown key.
func (a AbilityScores) Mod(ability string) int {
	switch ability {
	case Strength:
		return Modifier(a.Strength)
	case Dexterity:
		return Modifier(a.Dexterity)
	case Constitution:
		return Modifier(a.Constitution)
	case Intelligence:
		return Modifier(a.Intelligence)
	case Wisdom:
		return Modifier(a.Wisdom)
	case Charisma:
		return Modifier(a.Charisma)
	default:
		return 0
	}
}

// Character represents a player character's persistent state.
type Character struct {
	ID    string
	Name  string
	Class Class
	Level int

	Abilities  AbilityScores
	MaxHP      int
	CurrentHP  int
	ArmorClass int

	// WeaponID names the equipped weapon in the item registry; empty means
	// unarmed.
	WeaponID string
	// Inventory lists carried but unequipped item IDs, in pickup order.
	Inventory []string
	// Style is the fighter's chosen fighting style; StyleNone otherwise.
	Style FightingStyle

	Experience int

	// Resources holds the class resource pools. Owned by the character and
	// reset only by rest calls, never by the combat engine.
	Resources Resources
}

// New creates a character of the given class and level with full hit points
// and freshly initialised resource pools.
//
// Precondition: name must be non-empty; level >= 1; maxHP >= 1.
func New(id, name string, class Class, level, maxHP, armorClass int, abilities AbilityScores) *Character {
	if name == "" || level < 1 || maxHP < 1 {
		panic("character: New requires a name, level >= 1, and maxHP >= 1")
	}
	c := &Character{
		ID:         id,
		Name:       name,
		Class:      class,
		Level:      level,
		Abilities:  abilities,
		MaxHP:      maxHP,
		CurrentHP:  maxHP,
		ArmorClass: armorClass,
	}
	c.Resources = NewResources(class, level, abilities)
	return c
}

// ProficiencyBonus returns the proficiency bonus for the character's level.
// Formula: 2 + (level-1)/4.
//
// Postcondition: Returns >= 2.
func (c *Character) ProficiencyBonus() int {
	return 2 + (c.Level-1)/4
}

// IsAlive reports whether the character has hit points remaining.
func (c *Character) IsAlive() bool { return c.CurrentHP > 0 }

// ApplyDamage reduces CurrentHP by amount, flooring at zero, and returns
// the hit points actually lost.
//
// Precondition: amount must be >= 0.
// Postcondition: CurrentHP >= 0.
func (c *Character) ApplyDamage(amount int) int {
	if amount < 0 {
		panic("character: ApplyDamage requires amount >= 0")
	}
	before := c.CurrentHP
	c.CurrentHP -= amount
	if c.CurrentHP < 0 {
		c.CurrentHP = 0
	}
	return before - c.CurrentHP
}

// Heal restores hit points up to MaxHP and returns the amount recovered.
//
// Precondition: amount must be >= 0.
// Postcondition: CurrentHP <= MaxHP.
func (c *Character) Heal(amount int) int {
	if amount < 0 {
		panic("character: Heal requires amount >= 0")
	}
	before := c.CurrentHP
	c.CurrentHP += amount
	if c.CurrentHP > c.MaxHP {
		c.CurrentHP = c.MaxHP
	}
	return c.CurrentHP - before
}

// AwardExperience adds earned XP to the character.
//
// Precondition: xp must be >= 0.
func (c *Character) AwardExperience(xp int) {
	if xp < 0 {
		panic("character: AwardExperience requires xp >= 0")
	}
	c.Experience += xp
}

// ShortRest resets every pool whose trigger is the short rest.
func (c *Character) ShortRest() {
	c.Resources.Reset(ResetShortRest)
}

// LongRest restores the character to full hit points and resets pools with
// either rest trigger.
//
// Postcondition: CurrentHP == MaxHP.
func (c *Character) LongRest() {
	c.CurrentHP = c.MaxHP
	c.Resources.Reset(ResetShortRest)
	c.Resources.Reset(ResetLongRest)
}
