// Package combat implements the turn-based encounter engine: initiative,
// attack resolution, monster AI turns, status-effect bookkeeping, and
// structured result events. The engine performs no I/O and renders no text;
// callers consume the returned Event values.
package combat

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/duskmire/duskmire/internal/game/ai"
	"github.com/duskmire/duskmire/internal/game/character"
	"github.com/duskmire/duskmire/internal/game/dice"
	"github.com/duskmire/duskmire/internal/game/item"
	"github.com/duskmire/duskmire/internal/game/monster"
	"github.com/duskmire/duskmire/internal/game/status"
)

// Options tunes the engine's fixed difficulty classes.
type Options struct {
	// PlayerFleeDC is the DC a player's flee check must meet.
	PlayerFleeDC int
	// CritThreshold is the base natural roll that crits. A class feature
	// may lower it further; it never raises one.
	CritThreshold int
}

// DefaultOptions returns the standard rule tunings.
func DefaultOptions() Options {
	return Options{PlayerFleeDC: ai.FleeDC, CritThreshold: 20}
}

// Engine drives one combat encounter at a time. It owns the session, the
// status-effect manager, and the randomness source; the character and the
// monster instances are shared with the caller, which observes HP and
// resource changes directly.
//
// Engine is not safe for concurrent use.
type Engine struct {
	logger  *zap.Logger
	src     dice.Source
	roller  *dice.Roller
	weapons WeaponLookup
	status  *status.Manager
	opts    Options

	session        *Session
	awaitingPlayer bool
}

// NewEngine creates an engine ready to start encounters.
//
// Precondition: logger, src, and weapons must be non-nil.
func NewEngine(logger *zap.Logger, src dice.Source, weapons WeaponLookup, opts Options) *Engine {
	if logger == nil || src == nil || weapons == nil {
		panic("combat: NewEngine requires a logger, a dice source, and a weapon lookup")
	}
	if opts.PlayerFleeDC < 1 {
		opts.PlayerFleeDC = ai.FleeDC
	}
	if opts.CritThreshold < 1 || opts.CritThreshold > 20 {
		opts.CritThreshold = 20
	}
	return &Engine{
		logger:  logger,
		src:     src,
		roller:  dice.NewLoggedRoller(src, logger),
		weapons: weapons,
		status:  status.NewManager(logger),
		opts:    opts,
	}
}

// InCombat reports whether an encounter is running.
func (e *Engine) InCombat() bool { return e.session != nil }

// AwaitingPlayer reports whether the engine is parked on the player's turn
// waiting for a PlayerAction call.
func (e *Engine) AwaitingPlayer() bool { return e.session != nil && e.awaitingPlayer }

// Current returns the combatant whose turn it is, or nil outside combat.
func (e *Engine) Current() *Combatant {
	if e.session == nil {
		return nil
	}
	return e.session.Current()
}

// InitiativeOrder returns the rolled initiative entries in turn order.
func (e *Engine) InitiativeOrder() []InitiativeEntry {
	if e.session == nil {
		return nil
	}
	entries := make([]InitiativeEntry, 0, len(e.session.Order))
	for _, c := range e.session.Order {
		entries = append(entries, e.session.Rolls[c.ID()])
	}
	return entries
}

// LivingEnemies returns the monsters still standing.
func (e *Engine) LivingEnemies() []*Combatant {
	if e.session == nil {
		return nil
	}
	return e.session.LivingMonsters()
}

// DroppedItems returns the items dropped so far this encounter.
func (e *Engine) DroppedItems() []item.Drop {
	if e.session == nil {
		return nil
	}
	return e.session.Drops()
}

// Status exposes the status-effect manager for callers that render active
// effects.
func (e *Engine) Status() *status.Manager { return e.status }

// StartCombat begins a new encounter: rolls initiative for every
// participant, orders the turn sequence, and returns the opening events.
// The caller then drives the encounter with ExecuteTurn and PlayerAction.
//
// Precondition: no encounter may be in progress.
// Postcondition: on success, InCombat() is true and Round is 1.
func (e *Engine) StartCombat(player *character.Character, enemies []*monster.Instance) ([]Event, error) {
	if e.session != nil {
		return nil, fmt.Errorf("start combat: %w", ErrCombatInProgress)
	}
	if player == nil || len(enemies) == 0 {
		return nil, fmt.Errorf("start combat: %w", ErrNoParticipants)
	}
	if !player.IsAlive() {
		return nil, fmt.Errorf("start combat: player is down: %w", ErrNoParticipants)
	}

	combatants := make([]*Combatant, 0, len(enemies)+1)
	combatants = append(combatants, NewPlayer(player))
	for _, m := range enemies {
		if m == nil || !m.IsAlive() {
			return nil, fmt.Errorf("start combat: dead or nil enemy: %w", ErrNoParticipants)
		}
		combatants = append(combatants, NewMonster(m))
	}

	rolls := make(map[string]InitiativeEntry, len(combatants))
	for _, c := range combatants {
		roll := e.roller.RollCheck(dice.Straight)
		rolls[c.ID()] = InitiativeEntry{
			CombatantID: c.ID(),
			Name:        c.Name(),
			Natural:     roll.Kept,
			Modifier:    c.InitiativeMod(),
			Total:       roll.Kept + c.InitiativeMod(),
		}
	}
	e.session = NewSession(combatants, rolls)
	e.awaitingPlayer = false

	events := []Event{{Type: EventCombatStarted, Code: "combat_started", Actor: player.Name}}
	for _, entry := range e.InitiativeOrder() {
		events = append(events, Event{
			Type:  EventInfo,
			Code:  "initiative",
			Actor: entry.Name,
			Roll: &RollDetail{
				Mode:     dice.Straight,
				Rolls:    []int{entry.Natural},
				Natural:  entry.Natural,
				Modifier: entry.Modifier,
				Total:    entry.Total,
			},
		})
	}
	e.logger.Info("combat started",
		zap.String("player", player.Name),
		zap.Int("enemies", len(enemies)),
	)
	return events, nil
}

// EndCombat abandons the encounter, clearing all session state and status
// effects. Resources already spent stay spent.
func (e *Engine) EndCombat() error {
	if e.session == nil {
		return fmt.Errorf("end combat: %w", ErrNoActiveSession)
	}
	for _, c := range e.session.Order {
		e.status.Clear(c.ID())
	}
	e.session = nil
	e.awaitingPlayer = false
	return nil
}

// ExecuteTurn advances the encounter by one turn. On a monster's turn the
// monster acts to completion and the pointer advances; on the player's turn
// the engine emits the turn-start events and parks, waiting for
// PlayerAction.
//
// Precondition: an encounter must be in progress.
func (e *Engine) ExecuteTurn() ([]Event, error) {
	if e.session == nil {
		return nil, fmt.Errorf("execute turn: %w", ErrNoActiveSession)
	}
	if e.awaitingPlayer {
		return nil, fmt.Errorf("execute turn: player action pending: %w", ErrOutOfTurn)
	}
	current := e.session.Current()
	if current == nil {
		// Everyone on the current side is gone; the end check decides how.
		return e.checkEnd(nil), nil
	}
	if current.IsPlayer() {
		return e.beginPlayerTurn(current), nil
	}
	return e.runMonsterTurn(current), nil
}

// beginPlayerTurn processes the player's turn start and parks the engine.
func (e *Engine) beginPlayerTurn(player *Combatant) []Event {
	events := []Event{{Type: EventTurnStarted, Code: "turn_started", Actor: player.Name()}}
	events = append(events, e.tickEventsToEvents(e.status.ProcessTurnStart(player.ID()), player)...)

	if !player.IsAlive() {
		// Ongoing damage dropped the player before they could act.
		return e.checkEnd(events)
	}
	if !e.status.CanAct(player.ID()) {
		events = append(events, info("incapacitated", player.Name()))
		events = append(events, e.endTurn(player)...)
		return e.checkEnd(events)
	}

	e.session.Turn = NewTurnState()
	if p := player.Player(); p.Class == character.Paladin && e.status.Has(player.ID(), "smite_ready") {
		// A readied smite carries across turns until it lands.
		e.session.Turn.SmiteReady = true
	}
	e.awaitingPlayer = true
	return events
}

// PlayerAction executes one player command on the parked turn. Supported
// actions: "attack", "flee", "pass", and the class abilities handled by
// useAbility. Action-consuming commands end the turn once no action
// remains; bonus-action commands leave the turn open.
func (e *Engine) PlayerAction(action, targetName string) ([]Event, error) {
	if e.session == nil {
		return nil, fmt.Errorf("player action: %w", ErrNoActiveSession)
	}
	if !e.awaitingPlayer {
		return nil, fmt.Errorf("player action: %w", ErrOutOfTurn)
	}
	player := e.session.Player()

	var events []Event
	var err error
	switch strings.ToLower(strings.TrimSpace(action)) {
	case "attack":
		events, err = e.playerAttack(player, targetName)
	case "flee":
		events, err = e.playerFlee(player)
	case "pass":
		events = append(events, info("turn_passed", player.Name()))
		e.session.Turn.ActionUsed = true
		e.session.Turn.ExtraActions = 0
		e.session.Turn.FlurryAttacksRemaining = 0
	default:
		events, err = e.useAbility(player, action, targetName)
	}
	if err != nil {
		return nil, err
	}

	if e.session == nil {
		// The action ended the encounter (fled).
		return events, nil
	}
	if done := e.checkEnd(events); e.session == nil {
		return done, nil
	}
	if !e.session.Turn.HasAction() && e.session.Turn.FlurryAttacksRemaining == 0 {
		events = append(events, e.endTurn(player)...)
		events = e.checkEnd(events)
	}
	return events, nil
}

// playerAttack resolves one player attack against the named monster.
func (e *Engine) playerAttack(player *Combatant, targetName string) ([]Event, error) {
	target, err := e.findLivingMonster(targetName)
	if err != nil {
		return nil, err
	}

	usingFlurry := e.session.Turn.FlurryAttacksRemaining > 0
	if usingFlurry {
		e.session.Turn.FlurryAttacksRemaining--
	} else if !e.session.Turn.UseAction() {
		return nil, fmt.Errorf("attack: action already used: %w", ErrRuleViolation)
	}

	weapon := e.weaponFor(player.Player())
	if usingFlurry {
		weapon = item.MonkUnarmed
	}
	return e.performAttack(player, target, weapon, e.session.Turn), nil
}

// performAttack runs one attack from attacker to target, applying damage
// and on-hit side effects. Used for player attacks, flurry strikes, monster
// attacks, and opportunity attacks.
func (e *Engine) performAttack(attacker, target *Combatant, weapon *item.Weapon, turn *TurnState) []Event {
	melee := weapon == nil || weapon.IsMelee()

	advantage := e.status.HasAdvantageOnAttacks(attacker.ID()) ||
		e.status.AttacksHaveAdvantageAgainst(target.ID())
	disadvantage := e.status.HasDisadvantageOnAttacks(attacker.ID()) ||
		e.status.AttacksHaveDisadvantageAgainst(target.ID())
	if turn != nil && turn.Reckless {
		advantage = true
	}

	req := AttackRequest{
		Attacker:           attacker,
		Target:             target,
		Weapon:             weapon,
		Advantage:          advantage,
		Disadvantage:       disadvantage,
		AutoCrit:           melee && e.status.MeleeCritsAgainst(target.ID()),
		CritThreshold:      e.opts.CritThreshold,
		Turn:               turn,
		LivingEnemies:      len(e.session.LivingMonsters()),
		RageActive:         e.status.Has(attacker.ID(), "rage"),
		TargetRaging:       e.status.Has(target.ID(), "rage"),
		SacredWeaponActive: e.status.Has(attacker.ID(), "sacred_weapon"),
	}
	if attacker.IsPlayer() {
		req.CritThreshold = min(req.CritThreshold, attacker.Player().CritThreshold())
	}
	smiteWasReady := turn != nil && turn.SmiteReady
	result := ResolveAttack(req, e.roller)

	roll := result.Roll
	if !result.Hit {
		e.logger.Debug("attack missed",
			zap.String("attacker", attacker.Name()),
			zap.String("target", target.Name()),
			zap.Int("total", roll.Total),
			zap.Int("ac", roll.Target),
		)
		return []Event{{
			Type:   EventAttackMiss,
			Code:   "attack",
			Actor:  attacker.Name(),
			Target: target.Name(),
			Roll:   &roll,
		}}
	}

	if smiteWasReady && !turn.SmiteReady {
		e.status.Remove(attacker.ID(), "smite_ready")
	}
	dealt := target.ApplyDamage(result.Damage)
	e.session.RecordAggro(target.ID(), attacker.ID())
	e.logger.Debug("attack hit",
		zap.String("attacker", attacker.Name()),
		zap.String("target", target.Name()),
		zap.Int("damage", dealt),
		zap.Bool("critical", result.Critical),
	)

	events := []Event{{
		Type:     EventAttackHit,
		Code:     "attack",
		Actor:    attacker.Name(),
		Target:   target.Name(),
		Roll:     &roll,
		Damage:   dealt,
		Critical: result.Critical,
		Bonuses:  result.Bonuses,
	}}

	if !attacker.IsPlayer() && target.IsAlive() {
		events = append(events, e.applySpecial(attacker, target)...)
	}
	if !target.IsAlive() {
		events = append(events, Event{
			Type:   EventCombatantDefeated,
			Code:   "defeated",
			Actor:  attacker.Name(),
			Target: target.Name(),
		})
		if !target.IsPlayer() {
			e.session.AddDefeatedXP(target.Monster().Experience)
		}
		e.status.Clear(target.ID())
		e.session.PruneAggro()
	}
	return events
}

// applySpecial resolves a monster's on-hit special ability against the
// struck player: a saving throw, then disarm or restraint on failure.
func (e *Engine) applySpecial(attacker, target *Combatant) []Event {
	special := attacker.Monster().Special
	if special == nil || !target.IsPlayer() {
		return nil
	}
	roll := e.roller.RollCheck(dice.Straight)
	mod := target.SaveModifier(special.SaveAbility)
	total := roll.Kept + mod
	detail := RollDetail{
		Mode:     dice.Straight,
		Rolls:    roll.Rolls,
		Natural:  roll.Kept,
		Modifier: mod,
		Total:    total,
		Target:   special.SaveDC,
	}
	if total >= special.SaveDC {
		return []Event{{
			Type:   EventInfo,
			Code:   "special_resisted",
			Actor:  attacker.Name(),
			Target: target.Name(),
			Roll:   &detail,
		}}
	}

	switch special.Kind {
	case monster.SpecialDisarm:
		ch := target.Player()
		if ch.WeaponID == "" {
			return nil
		}
		name := ch.WeaponID
		if w, ok := e.weapons.Weapon(ch.WeaponID); ok {
			name = w.Name
		}
		e.session.AddDrop(item.NewDrop(ch.WeaponID, name, target.Name()))
		ch.WeaponID = ""
		return []Event{{
			Type:   EventInfo,
			Code:   "disarmed",
			Actor:  attacker.Name(),
			Target: target.Name(),
			Roll:   &detail,
		}}
	case monster.SpecialAdhesive:
		e.status.Apply(target.ID(), status.UntilSave(
			"restrained", "Restrained", status.Restrained,
			special.SaveAbility, special.SaveDC,
		).WithSource(attacker.ID()))
		return []Event{{
			Type:   EventInfo,
			Code:   "restrained",
			Actor:  attacker.Name(),
			Target: target.Name(),
			Roll:   &detail,
		}}
	}
	return nil
}

// playerFlee attempts to escape the encounter. Every living monster takes
// one opportunity attack first; if the player survives, a dexterity check
// against the flee DC decides. Failure consumes the action.
func (e *Engine) playerFlee(player *Combatant) ([]Event, error) {
	if !e.session.Turn.UseAction() {
		return nil, fmt.Errorf("flee: action already used: %w", ErrRuleViolation)
	}

	var events []Event
	for _, m := range e.session.LivingMonsters() {
		events = append(events, Event{Type: EventInfo, Code: "opportunity_attack", Actor: m.Name(), Target: player.Name()})
		events = append(events, e.performAttack(m, player, nil, nil)...)
		if !player.IsAlive() {
			return e.checkEnd(events), nil
		}
	}

	roll := e.roller.RollCheck(dice.Straight)
	mod := player.InitiativeMod()
	total := roll.Kept + mod
	detail := RollDetail{
		Mode:     dice.Straight,
		Rolls:    roll.Rolls,
		Natural:  roll.Kept,
		Modifier: mod,
		Total:    total,
		Target:   e.opts.PlayerFleeDC,
	}
	if total < e.opts.PlayerFleeDC {
		events = append(events, Event{
			Type:  EventInfo,
			Code:  "flee_failed",
			Actor: player.Name(),
			Roll:  &detail,
		})
		return events, nil
	}

	events = append(events, Event{
		Type:  EventFled,
		Code:  "player_fled",
		Actor: player.Name(),
		Roll:  &detail,
	})
	e.logger.Info("player fled combat", zap.String("player", player.Name()))
	for _, c := range e.session.Order {
		e.status.Clear(c.ID())
	}
	e.session = nil
	e.awaitingPlayer = false
	return events, nil
}

// runMonsterTurn plays one monster's full turn: status ticks, a flee
// decision for hurt cowardly or defensive monsters, target selection, and
// one attack.
func (e *Engine) runMonsterTurn(m *Combatant) []Event {
	events := []Event{{Type: EventTurnStarted, Code: "turn_started", Actor: m.Name()}}
	events = append(events, e.tickEventsToEvents(e.status.ProcessTurnStart(m.ID()), m)...)

	if !m.IsAlive() {
		// Ongoing damage finished the monster before it could act.
		events = append(events, Event{Type: EventCombatantDefeated, Code: "defeated", Actor: m.Name(), Target: m.Name()})
		e.session.AddDefeatedXP(m.Monster().Experience)
		e.status.Clear(m.ID())
		e.session.PruneAggro()
		e.session.Advance()
		return e.checkEnd(events)
	}
	if !e.status.CanAct(m.ID()) {
		events = append(events, info("incapacitated", m.Name()))
		events = append(events, e.endTurn(m)...)
		return e.checkEnd(events)
	}

	inst := m.Monster()
	behavior, err := ai.ParseBehavior(inst.Behavior)
	if err != nil {
		e.logger.Warn("unknown behavior tag, treating as aggressive",
			zap.String("monster", inst.Name),
			zap.String("behavior", inst.Behavior),
		)
		behavior = ai.Aggressive
	}

	if behavior.ShouldFlee(inst.CurrentHP, inst.MaxHP) {
		check := ai.AttemptFlee(inst.Abilities.Mod(character.Dexterity), e.src)
		detail := RollDetail{
			Mode:     dice.Straight,
			Rolls:    []int{check.Natural},
			Natural:  check.Natural,
			Modifier: check.Modifier,
			Total:    check.Total,
			Target:   check.DC,
		}
		if check.Success {
			events = append(events, Event{
				Type:  EventFled,
				Code:  "monster_fled",
				Actor: m.Name(),
				Roll:  &detail,
			})
			e.status.Clear(m.ID())
			e.session.Remove(m.ID())
			return e.checkEnd(events)
		}
		events = append(events, Event{
			Type:  EventInfo,
			Code:  "flee_failed",
			Actor: m.Name(),
			Roll:  &detail,
		})
	}

	targetID := ai.SelectTarget(behavior, e.session.LastAttacker(m.ID()), e.targetViews())
	if target := e.session.ByID(targetID); target != nil && target.IsAlive() {
		events = append(events, e.performAttack(m, target, nil, nil)...)
	}

	events = append(events, e.endTurn(m)...)
	return e.checkEnd(events)
}

// targetViews snapshots the living non-monster combatants for the AI.
func (e *Engine) targetViews() []ai.TargetView {
	var views []ai.TargetView
	for _, c := range e.session.Order {
		if !c.IsPlayer() || !c.IsAlive() {
			continue
		}
		views = append(views, ai.TargetView{
			ID:        c.ID(),
			Name:      c.Name(),
			CurrentHP: c.CurrentHP(),
			IsPlayer:  true,
		})
	}
	return views
}

// endTurn runs end-of-turn effect processing for the combatant and
// advances the turn pointer.
func (e *Engine) endTurn(c *Combatant) []Event {
	saveMod := func(ownerID, ability string) int {
		if owner := e.session.ByID(ownerID); owner != nil {
			return owner.SaveModifier(ability)
		}
		return 0
	}
	events := e.tickEventsToEvents(e.status.ProcessTurnEnd(c.ID(), saveMod, e.src), c)

	if c.IsPlayer() {
		if e.session.Turn != nil && e.session.Turn.SmiteReady {
			// Carry the readied smite into the next turn.
			e.status.Apply(c.ID(), status.Indefinite("smite_ready", "Divine Smite (readied)", status.ConditionNone))
		} else {
			e.status.Remove(c.ID(), "smite_ready")
		}
		e.session.Turn = nil
		e.awaitingPlayer = false
	}
	e.session.PruneAggro()
	e.session.Advance()
	return events
}

// tickEventsToEvents translates manager tick events into combat events.
func (e *Engine) tickEventsToEvents(ticks []status.TickEvent, owner *Combatant) []Event {
	var events []Event
	for _, t := range ticks {
		ev := Event{Type: EventInfo, Actor: owner.Name()}
		switch {
		case t.Damage > 0 || t.Healing > 0:
			ev.Code = "ongoing_effect"
			if t.Damage > 0 {
				ev.Damage = owner.ApplyDamage(t.Damage)
			}
			if t.Healing > 0 {
				ev.Healing = owner.Heal(t.Healing)
			}
		case t.Saved:
			ev.Code = "effect_saved"
			ev.Roll = &RollDetail{
				Mode:    dice.Straight,
				Rolls:   []int{t.SaveRoll},
				Natural: t.SaveRoll,
				Total:   t.SaveRoll,
				Target:  t.SaveDC,
			}
		case t.Expired:
			ev.Code = "effect_expired"
		case t.SaveDC > 0:
			ev.Code = "effect_save_failed"
			ev.Roll = &RollDetail{
				Mode:    dice.Straight,
				Rolls:   []int{t.SaveRoll},
				Natural: t.SaveRoll,
				Total:   t.SaveRoll,
				Target:  t.SaveDC,
			}
		default:
			ev.Code = "effect_ticked"
		}
		ev.Target = t.EffectID
		events = append(events, ev)
	}
	return events
}

// checkEnd appends the terminal event when an end condition holds and
// clears the session. Returns the (possibly extended) event slice.
func (e *Engine) checkEnd(events []Event) []Event {
	if e.session == nil {
		return events
	}
	player := e.session.Player()

	if player == nil || !player.IsAlive() {
		name := ""
		if player != nil {
			name = player.Name()
		}
		events = append(events, Event{Type: EventDefeat, Code: "defeat", Actor: name})
		e.clearSession()
		return events
	}
	if len(e.session.LivingMonsters()) == 0 {
		xp := e.session.DefeatedXP()
		drops := e.session.Drops()
		ch := player.Player()
		ch.AwardExperience(xp)
		for _, d := range drops {
			// A weapon the player was disarmed of goes back in hand;
			// everything else lands in the inventory.
			if ch.WeaponID == "" && d.SourceName == player.Name() {
				ch.WeaponID = d.ItemID
				continue
			}
			ch.Inventory = append(ch.Inventory, d.ItemID)
		}
		events = append(events, Event{
			Type:  EventVictory,
			Code:  "victory",
			Actor: player.Name(),
			XP:    xp,
			Drops: drops,
		})
		e.logger.Info("combat won",
			zap.String("player", player.Name()),
			zap.Int("xp", xp),
			zap.Int("drops", len(drops)),
		)
		e.clearSession()
		return events
	}
	return events
}

func (e *Engine) clearSession() {
	for _, c := range e.session.Order {
		e.status.Clear(c.ID())
	}
	e.session = nil
	e.awaitingPlayer = false
}

// weaponFor resolves the character's equipped weapon, falling back to the
// class-appropriate unarmed strike when nothing is equipped or the ID is
// unknown.
func (e *Engine) weaponFor(ch *character.Character) *item.Weapon {
	if ch.WeaponID != "" {
		if w, ok := e.weapons.Weapon(ch.WeaponID); ok {
			return w
		}
		e.logger.Warn("equipped weapon not in registry, using unarmed",
			zap.String("weapon", ch.WeaponID),
		)
	}
	if ch.Class == character.Monk {
		return item.MonkUnarmed
	}
	return item.Unarmed
}

// findLivingMonster resolves a target by name, or defaults to the sole
// living monster when the name is empty and only one remains.
func (e *Engine) findLivingMonster(name string) (*Combatant, error) {
	living := e.session.LivingMonsters()
	if name == "" {
		if len(living) == 1 {
			return living[0], nil
		}
		return nil, fmt.Errorf("target required with %d enemies: %w", len(living), ErrInvalidTarget)
	}
	target := e.session.ByName(name)
	if target == nil || target.IsPlayer() {
		return nil, fmt.Errorf("no such target %q: %w", name, ErrInvalidTarget)
	}
	if !target.IsAlive() {
		return nil, fmt.Errorf("%s is already down: %w", target.Name(), ErrInvalidTarget)
	}
	return target, nil
}
