package combat

import (
	"fmt"

	"github.com/duskmire/duskmire/internal/game/character"
	"github.com/duskmire/duskmire/internal/game/dice"
	"github.com/duskmire/duskmire/internal/game/item"
	"github.com/duskmire/duskmire/internal/game/status"
)

// LayOnHandsHeal is the hit points restored per lay on hands invocation.
const LayOnHandsHeal = 5

// useAbility dispatches a class ability on the player's parked turn.
// Unknown names are rule violations so the caller can re-prompt.
func (e *Engine) useAbility(player *Combatant, name, targetName string) ([]Event, error) {
	switch name {
	case "rage":
		return e.activateRage(player)
	case "reckless":
		return e.declareReckless(player)
	case "second_wind":
		return e.secondWind(player)
	case "action_surge":
		return e.actionSurge(player)
	case "flurry_of_blows", "flurry":
		return e.flurryOfBlows(player, targetName)
	case "patient_defense":
		return e.patientDefense(player)
	case "sacred_weapon", "channel_divinity":
		return e.sacredWeapon(player)
	case "divine_smite", "smite":
		return e.readySmite(player)
	case "lay_on_hands":
		return e.layOnHands(player)
	}
	return nil, fmt.Errorf("unknown action %q: %w", name, ErrRuleViolation)
}

// requireClass guards an ability behind its class.
func requireClass(ch *character.Character, class character.Class, ability string) error {
	if ch.Class != class {
		return fmt.Errorf("%s requires a %s: %w", ability, class, ErrRuleViolation)
	}
	return nil
}

// activateRage enters rage as a bonus action: +2 melee damage while raging
// and incoming physical damage halved. Rage persists until combat ends.
func (e *Engine) activateRage(player *Combatant) ([]Event, error) {
	ch := player.Player()
	if err := requireClass(ch, character.Barbarian, "rage"); err != nil {
		return nil, err
	}
	if e.status.Has(player.ID(), "rage") {
		return nil, fmt.Errorf("already raging: %w", ErrRuleViolation)
	}
	if !ch.Resources.RageUses.CanSpend(1) {
		return nil, fmt.Errorf("no rage uses remain: %w", ErrInsufficientResource)
	}
	if !e.session.Turn.UseBonusAction() {
		return nil, fmt.Errorf("rage: bonus action already used: %w", ErrRuleViolation)
	}
	ch.Resources.RageUses.Spend(1)
	e.status.Apply(player.ID(), status.Indefinite("rage", "Rage", status.ConditionNone))
	return []Event{info("rage_activated", player.Name())}, nil
}

// declareReckless marks this turn's attacks as reckless: advantage on the
// player's attack rolls, advantage to everyone attacking the player until
// the player's next turn starts. Costs nothing.
func (e *Engine) declareReckless(player *Combatant) ([]Event, error) {
	ch := player.Player()
	if err := requireClass(ch, character.Barbarian, "reckless attack"); err != nil {
		return nil, err
	}
	if e.session.Turn.Reckless {
		return nil, fmt.Errorf("already attacking recklessly: %w", ErrRuleViolation)
	}
	e.session.Turn.Reckless = true
	e.status.Apply(player.ID(), status.UntilTurnStart("reckless", "Reckless", status.ConditionNone))
	return []Event{info("reckless_declared", player.Name())}, nil
}

// secondWind heals 1d10 + level as a bonus action, once per short rest.
func (e *Engine) secondWind(player *Combatant) ([]Event, error) {
	ch := player.Player()
	if err := requireClass(ch, character.Fighter, "second wind"); err != nil {
		return nil, err
	}
	if !ch.Resources.SecondWindUses.CanSpend(1) {
		return nil, fmt.Errorf("second wind already used: %w", ErrInsufficientResource)
	}
	if !e.session.Turn.UseBonusAction() {
		return nil, fmt.Errorf("second wind: bonus action already used: %w", ErrRuleViolation)
	}
	ch.Resources.SecondWindUses.Spend(1)
	roll := e.roller.Roll(dice.Expression{Raw: "second_wind", Count: 1, Sides: 10, Modifier: ch.Level})
	healed := player.Heal(roll.Total())
	return []Event{{
		Type:    EventInfo,
		Code:    "second_wind",
		Actor:   player.Name(),
		Healing: healed,
	}}, nil
}

// actionSurge grants one extra action this turn, once per short rest.
func (e *Engine) actionSurge(player *Combatant) ([]Event, error) {
	ch := player.Player()
	if err := requireClass(ch, character.Fighter, "action surge"); err != nil {
		return nil, err
	}
	if !ch.Resources.ActionSurgeUses.Spend(1) {
		return nil, fmt.Errorf("action surge unavailable: %w", ErrInsufficientResource)
	}
	e.session.Turn.ExtraActions++
	return []Event{info("action_surge", player.Name())}, nil
}

// flurryOfBlows spends a bonus action and one ki point for two unarmed
// strikes. The strikes are owed, not immediate: the player's next two
// attack commands resolve as martial-arts strikes without consuming the
// action.
func (e *Engine) flurryOfBlows(player *Combatant, targetName string) ([]Event, error) {
	ch := player.Player()
	if err := requireClass(ch, character.Monk, "flurry of blows"); err != nil {
		return nil, err
	}
	if !ch.Resources.KiPoints.CanSpend(1) {
		return nil, fmt.Errorf("no ki remains: %w", ErrInsufficientResource)
	}
	if !e.session.Turn.UseBonusAction() {
		return nil, fmt.Errorf("flurry of blows: bonus action already used: %w", ErrRuleViolation)
	}
	ch.Resources.KiPoints.Spend(1)
	e.session.Turn.FlurryAttacksRemaining = 2
	events := []Event{info("flurry_of_blows", player.Name())}

	// With a named (or sole) target the strikes land immediately.
	if target, err := e.findLivingMonster(targetName); err == nil {
		for e.session.Turn.FlurryAttacksRemaining > 0 && target.IsAlive() {
			e.session.Turn.FlurryAttacksRemaining--
			events = append(events, e.performAttack(player, target, item.MonkUnarmed, e.session.Turn)...)
		}
		e.session.Turn.FlurryAttacksRemaining = 0
	}
	return events, nil
}

// patientDefense spends a bonus action and one ki point; attacks against
// the player have disadvantage until the player's next turn starts.
func (e *Engine) patientDefense(player *Combatant) ([]Event, error) {
	ch := player.Player()
	if err := requireClass(ch, character.Monk, "patient defense"); err != nil {
		return nil, err
	}
	if !ch.Resources.KiPoints.CanSpend(1) {
		return nil, fmt.Errorf("no ki remains: %w", ErrInsufficientResource)
	}
	if !e.session.Turn.UseBonusAction() {
		return nil, fmt.Errorf("patient defense: bonus action already used: %w", ErrRuleViolation)
	}
	ch.Resources.KiPoints.Spend(1)
	e.status.Apply(player.ID(), status.UntilTurnStart("patient_defense", "Patient Defense", status.ConditionNone))
	return []Event{info("patient_defense", player.Name())}, nil
}

// sacredWeapon channels divinity into the weapon as an action: the
// charisma modifier is added to attack rolls for the rest of the
// encounter.
func (e *Engine) sacredWeapon(player *Combatant) ([]Event, error) {
	ch := player.Player()
	if err := requireClass(ch, character.Paladin, "sacred weapon"); err != nil {
		return nil, err
	}
	if e.status.Has(player.ID(), "sacred_weapon") {
		return nil, fmt.Errorf("sacred weapon already active: %w", ErrRuleViolation)
	}
	if !ch.Resources.ChannelDivinity.CanSpend(1) {
		return nil, fmt.Errorf("channel divinity spent: %w", ErrInsufficientResource)
	}
	if !e.session.Turn.UseAction() {
		return nil, fmt.Errorf("sacred weapon: action already used: %w", ErrRuleViolation)
	}
	ch.Resources.ChannelDivinity.Spend(1)
	e.status.Apply(player.ID(), status.Indefinite("sacred_weapon", "Sacred Weapon", status.ConditionNone))
	return []Event{info("sacred_weapon", player.Name())}, nil
}

// readySmite consumes the highest remaining spell slot to ready a divine
// smite: the next hit deals an extra 2d8 radiant. The readied smite
// persists across turns until a hit lands.
func (e *Engine) readySmite(player *Combatant) ([]Event, error) {
	ch := player.Player()
	if err := requireClass(ch, character.Paladin, "divine smite"); err != nil {
		return nil, err
	}
	if e.session.Turn.SmiteReady {
		return nil, fmt.Errorf("smite already readied: %w", ErrRuleViolation)
	}
	level := ch.Resources.HighestSlot()
	if level == 0 || !ch.Resources.Slot(level).Spend(1) {
		return nil, fmt.Errorf("no spell slots remain: %w", ErrInsufficientResource)
	}
	e.session.Turn.SmiteReady = true
	return []Event{info("smite_readied", player.Name())}, nil
}

// layOnHands spends the action and five points from the healing pool.
func (e *Engine) layOnHands(player *Combatant) ([]Event, error) {
	ch := player.Player()
	if err := requireClass(ch, character.Paladin, "lay on hands"); err != nil {
		return nil, err
	}
	if !ch.Resources.LayOnHandsPool.CanSpend(LayOnHandsHeal) {
		return nil, fmt.Errorf("lay on hands pool exhausted: %w", ErrInsufficientResource)
	}
	if !e.session.Turn.UseAction() {
		return nil, fmt.Errorf("lay on hands: action already used: %w", ErrRuleViolation)
	}
	ch.Resources.LayOnHandsPool.Spend(LayOnHandsHeal)
	healed := player.Heal(LayOnHandsHeal)
	return []Event{{
		Type:    EventInfo,
		Code:    "lay_on_hands",
		Actor:   player.Name(),
		Healing: healed,
	}}, nil
}
