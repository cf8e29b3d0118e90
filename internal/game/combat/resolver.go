package combat

import (
	"github.com/duskmire/duskmire/internal/game/character"
	"github.com/duskmire/duskmire/internal/game/dice"
	"github.com/duskmire/duskmire/internal/game/item"
)

// WeaponLookup resolves a weapon ID to its definition. The combat engine
// consumes the lookup; the item registry owns it.
type WeaponLookup interface {
	Weapon(id string) (*item.Weapon, bool)
}

// AttackRequest carries everything the resolver needs to compute one
// attack. The engine assembles it from session, status, and turn state;
// the resolver itself reads nothing else.
type AttackRequest struct {
	Attacker *Combatant
	Target   *Combatant
	// Weapon is the attacker's resolved weapon; nil only for monsters,
	// which attack with their template dice.
	Weapon *item.Weapon

	Advantage    bool
	Disadvantage bool
	// AutoCrit turns any hit into a critical (paralyzed/unconscious target).
	AutoCrit bool
	// CritThreshold is the minimum natural roll that crits; 20 unless the
	// attacker has an improved critical feature.
	CritThreshold int

	// Turn is the player's turn state; nil for monster attackers. The
	// resolver consumes the once-per-turn sneak attack through it.
	Turn *TurnState
	// LivingEnemies is the number of living monsters, for the sneak-attack
	// opening heuristic.
	LivingEnemies int
	// RageActive marks the attacker as raging.
	RageActive bool
	// TargetRaging marks the target as raging, halving physical damage.
	TargetRaging bool
	// SacredWeaponActive adds the attacker's charisma modifier to the
	// attack roll.
	SacredWeaponActive bool
}

// AttackResult is the outcome of a single resolved attack.
type AttackResult struct {
	Roll       RollDetail
	Hit        bool
	Critical   bool
	Damage     int
	DamageDice []int
	// Bonuses annotates the feature riders applied: "fighting_style",
	// "rage", "sneak_attack", "divine_smite".
	Bonuses []string
}

// attackModifier computes the attacker's total attack-roll modifier.
func attackModifier(req AttackRequest) int {
	if !req.Attacker.IsPlayer() {
		return req.Attacker.Monster().AttackBonus
	}
	ch := req.Attacker.Player()
	mod := ch.AttackAbilityMod(req.Weapon.Finesse, req.Weapon.Ranged) + ch.ProficiencyBonus()
	mod += ch.Style.AttackBonus(req.Weapon.Ranged)
	if req.SacredWeaponActive {
		mod += ch.Abilities.Mod(character.Charisma)
	}
	return mod
}

// damageExpression returns the attacker's damage dice expression.
func damageExpression(req AttackRequest) dice.Expression {
	if req.Attacker.IsPlayer() {
		return dice.MustParse(req.Weapon.DamageDice)
	}
	return dice.MustParse(req.Attacker.Monster().DamageDice)
}

// sneakEligible reports whether this attack qualifies for sneak attack:
// a finesse or ranged weapon, the once-per-turn use still available, and
// either advantage on the roll or an exploitable opening. The opening is
// approximated as more than one living enemy remaining; a cruder model
// than true ally positioning, kept deliberately.
func sneakEligible(req AttackRequest, mode dice.CheckMode) bool {
	if req.Turn == nil || req.Turn.SneakAttackUsed {
		return false
	}
	if !req.Attacker.IsPlayer() || !req.Attacker.Player().HasSneakAttack() {
		return false
	}
	if req.Weapon == nil || !req.Weapon.SneakEligible() {
		return false
	}
	if mode == dice.Advantage {
		return true
	}
	return req.LivingEnemies > 1 && mode != dice.Disadvantage
}

// ResolveAttack computes one attack: the d20 check under the resolved
// advantage mode, hit and critical determination, and damage with feature
// riders applied in fixed order. The resolver mutates nothing except the
// once-per-turn flags on req.Turn; applying damage and side effects is the
// engine's job.
//
// Precondition: req.Attacker and req.Target must be non-nil and alive;
// req.Weapon must be non-nil for player attackers; roller must be non-nil.
// Postcondition: Damage >= 1 for a player hit, >= 0 otherwise; Damage == 0
// on a miss.
func ResolveAttack(req AttackRequest, roller *dice.Roller) AttackResult {
	if req.Attacker == nil || req.Target == nil {
		panic("combat: ResolveAttack requires attacker and target")
	}
	if req.Attacker.IsPlayer() && req.Weapon == nil {
		panic("combat: ResolveAttack requires a weapon for player attackers")
	}
	threshold := req.CritThreshold
	if threshold < 1 || threshold > 20 {
		threshold = 20
	}

	mode := dice.ModeFor(req.Advantage, req.Disadvantage)
	check := roller.RollCheck(mode)
	mod := attackModifier(req)
	total := check.Kept + mod

	result := AttackResult{
		Roll: RollDetail{
			Mode:     mode,
			Rolls:    check.Rolls,
			Natural:  check.Kept,
			Modifier: mod,
			Total:    total,
			Target:   req.Target.ArmorClass(),
		},
	}

	naturalCrit := check.Kept >= threshold
	result.Hit = total >= req.Target.ArmorClass() || naturalCrit
	if !result.Hit {
		return result
	}
	result.Critical = naturalCrit || req.AutoCrit

	// Weapon dice once, twice on a crit. Flat modifiers are never doubled.
	expr := damageExpression(req)
	roll := roller.Roll(expr)
	result.DamageDice = append(result.DamageDice, roll.Dice...)
	damage := roll.Total()
	if result.Critical {
		again := roller.Roll(expr)
		result.DamageDice = append(result.DamageDice, again.Dice...)
		damage += again.Total() - again.Modifier
	}

	if req.Attacker.IsPlayer() {
		ch := req.Attacker.Player()
		damage += ch.AttackAbilityMod(req.Weapon.Finesse, req.Weapon.Ranged)

		// Additive feature riders, in fixed order.
		if bonus := ch.Style.DamageBonus(); bonus > 0 && req.Weapon.IsMelee() {
			damage += bonus
			result.Bonuses = append(result.Bonuses, "fighting_style")
		}
		if req.RageActive && req.Weapon.IsMelee() && ch.MeleeUsesStrength(req.Weapon.Finesse, req.Weapon.Ranged) {
			damage += ch.RageDamageBonus()
			result.Bonuses = append(result.Bonuses, "rage")
		}
		if sneakEligible(req, mode) {
			sneak := roller.Roll(dice.Expression{Raw: "sneak", Count: ch.SneakAttackDice(), Sides: 6})
			damage += sneak.Total()
			result.DamageDice = append(result.DamageDice, sneak.Dice...)
			result.Bonuses = append(result.Bonuses, "sneak_attack")
			req.Turn.SneakAttackUsed = true
		}
		if req.Turn != nil && req.Turn.SmiteReady {
			smite := roller.Roll(dice.Expression{Raw: "smite", Count: ch.SmiteDice(), Sides: 8})
			damage += smite.Total()
			result.DamageDice = append(result.DamageDice, smite.Dice...)
			result.Bonuses = append(result.Bonuses, "divine_smite")
			req.Turn.SmiteReady = false
		}
	}

	// Rage halves incoming physical damage before any other reduction.
	if req.TargetRaging {
		damage /= 2
	}

	if req.Attacker.IsPlayer() {
		if damage < 1 {
			damage = 1
		}
	} else if damage < 0 {
		damage = 0
	}
	result.Damage = damage
	return result
}
