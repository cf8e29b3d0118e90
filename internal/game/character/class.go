package character

// Class is the closed set of playable classes.
type Class int

const (
	Fighter Class = iota
	Rogue
	Barbarian
	Monk
	Paladin
)

// String returns the lower-case class name.
func (c Class) String() string {
	switch c {
	case Fighter:
		return "fighter"
	case Rogue:
		return "rogue"
	case Barbarian:
		return "barbarian"
	case Monk:
		return "monk"
	case Paladin:
		return "paladin"
	default:
		return "unknown"
	}
}

// FightingStyle is a fighter's chosen combat style.
type FightingStyle int

const (
	StyleNone FightingStyle = iota
	// StyleDueling grants +2 damage with a one-handed melee weapon.
	StyleDueling
	// StyleArchery grants +2 to ranged attack rolls.
	StyleArchery
)

// DamageBonus returns the flat damage bonus the style adds to melee attacks.
func (s FightingStyle) DamageBonus() int {
	if s == StyleDueling {
		return 2
	}
	return 0
}

// AttackBonus returns the flat attack-roll bonus the style adds to ranged attacks.
func (s FightingStyle) AttackBonus(ranged bool) int {
	if s == StyleArchery && ranged {
		return 2
	}
	return 0
}

// CritThreshold returns the minimum natural d20 roll that scores a critical
// hit for this character. Fighters of level 3+ fight as champions and crit
// on 19.
//
// Postcondition: Returns 19 or 20.
func (c *Character) CritThreshold() int {
	if c.Class == Fighter && c.Level >= 3 {
		return 19
	}
	return 20
}

// HasSneakAttack reports whether the character deals sneak-attack damage.
func (c *Character) HasSneakAttack() bool { return c.Class == Rogue }

// SneakAttackDice returns the number of d6 the rogue's sneak attack adds:
// one die at level 1, plus one per two further levels.
//
// Precondition: c.HasSneakAttack() must be true.
// Postcondition: Returns >= 1.
func (c *Character) SneakAttackDice() int {
	if !c.HasSneakAttack() {
		panic("character: SneakAttackDice called on a class without sneak attack")
	}
	return (c.Level + 1) / 2
}

// RageDamageBonus returns the flat melee damage bonus granted while raging.
func (c *Character) RageDamageBonus() int {
	if c.Class != Barbarian {
		return 0
	}
	if c.Level >= 16 {
		return 4
	}
	if c.Level >= 9 {
		return 3
	}
	return 2
}

// SmiteDice returns the number of d8 a first-level divine smite adds.
func (c *Character) SmiteDice() int { return 2 }

// attackAbility returns the ability key used for attack and damage rolls
// with the given weapon traits: dexterity for finesse or ranged weapons
// when it beats strength, strength otherwise.
func (c *Character) attackAbility(finesse, ranged bool) string {
	if ranged {
		return Dexterity
	}
	if finesse && Modifier(c.Abilities.Dexterity) > Modifier(c.Abilities.Strength) {
		return Dexterity
	}
	return Strength
}

// AttackAbilityMod returns the ability modifier applied to attack and
// damage rolls with a weapon of the given traits.
func (c *Character) AttackAbilityMod(finesse, ranged bool) int {
	return c.Abilities.Mod(c.attackAbility(finesse, ranged))
}

// MeleeUsesStrength reports whether a weapon with the given traits attacks
// with strength, which is what the rage damage bonus requires.
func (c *Character) MeleeUsesStrength(finesse, ranged bool) bool {
	return c.attackAbility(finesse, ranged) == Strength && !ranged
}
