package status

// DurationKind is the closed set of ways an Effect can expire.
type DurationKind int

const (
	// DurationRounds expires after a fixed number of end-of-turn ticks.
	DurationRounds DurationKind = iota
	// DurationUntilSave persists until the owner succeeds a saving throw,
	// attempted automatically at each end of the owner's turn.
	DurationUntilSave
	// DurationUntilTurnStart expires at the start of the owner's next turn.
	DurationUntilTurnStart
	// DurationUntilTurnEnd expires at the end of the owner's current turn.
	DurationUntilTurnEnd
	// DurationIndefinite persists until explicitly removed (rage, stances).
	DurationIndefinite
	// DurationPermanent never expires and cannot be saved against.
	DurationPermanent
)

// String returns the lower-case duration-kind label.
func (k DurationKind) String() string {
	switch k {
	case DurationRounds:
		return "rounds"
	case DurationUntilSave:
		return "until_save"
	case DurationUntilTurnStart:
		return "until_turn_start"
	case DurationUntilTurnEnd:
		return "until_turn_end"
	case DurationIndefinite:
		return "indefinite"
	default:
		return "permanent"
	}
}

// Effect is one active status effect on a combatant. Construct Effects with
// the factory functions below, one per duration variant; the factories are
// the only way to keep the duration invariants.
//
// Invariant: Remaining is never negative; Remaining is meaningful only when
// Kind == DurationRounds.
type Effect struct {
	ID          string    // stable effect identifier, e.g. "rage", "restrained"
	Name        string    // display name for the caller's renderer
	Condition   Condition // optional mechanical condition tag
	Kind        DurationKind
	Remaining   int    // rounds left; only for DurationRounds
	SaveAbility string // ability for DurationUntilSave throws, e.g. "str"
	SaveDC      int    // difficulty class for DurationUntilSave throws
	SourceID    string // who inflicted it; flavor only, never dereferenced

	TickDamage  int // hit points lost at the start of the owner's turn
	TickHealing int // hit points restored at the start of the owner's turn
}

// ForRounds creates an effect that lasts the given number of rounds.
// A rounds value < 1 defaults to a single round.
//
// Postcondition: Kind == DurationRounds and Remaining >= 1.
func ForRounds(id, name string, cond Condition, rounds int) *Effect {
	if rounds < 1 {
		rounds = 1
	}
	return &Effect{ID: id, Name: name, Condition: cond, Kind: DurationRounds, Remaining: rounds}
}

// UntilSave creates an effect that persists until the owner succeeds a
// saving throw of the given ability against dc.
//
// Precondition: ability must be non-empty and dc >= 1.
func UntilSave(id, name string, cond Condition, ability string, dc int) *Effect {
	if ability == "" || dc < 1 {
		panic("status: UntilSave requires a save ability and a positive DC")
	}
	return &Effect{ID: id, Name: name, Condition: cond, Kind: DurationUntilSave, SaveAbility: ability, SaveDC: dc}
}

// UntilTurnStart creates an effect that expires at the start of the owner's
// next turn.
func UntilTurnStart(id, name string, cond Condition) *Effect {
	return &Effect{ID: id, Name: name, Condition: cond, Kind: DurationUntilTurnStart}
}

// UntilTurnEnd creates an effect that expires at the end of the owner's
// current turn.
func UntilTurnEnd(id, name string, cond Condition) *Effect {
	return &Effect{ID: id, Name: name, Condition: cond, Kind: DurationUntilTurnEnd}
}

// Indefinite creates an effect that persists until explicitly removed.
func Indefinite(id, name string, cond Condition) *Effect {
	return &Effect{ID: id, Name: name, Condition: cond, Kind: DurationIndefinite}
}

// Permanent creates an effect that never expires.
func Permanent(id, name string, cond Condition) *Effect {
	return &Effect{ID: id, Name: name, Condition: cond, Kind: DurationPermanent}
}

// WithSource records the inflicting combatant's ID on the effect and
// returns it, for chained construction.
func (e *Effect) WithSource(sourceID string) *Effect {
	e.SourceID = sourceID
	return e
}

// WithTickDamage makes the effect deal ongoing damage at the start of the
// owner's turn.
//
// Precondition: damage must be >= 0.
func (e *Effect) WithTickDamage(damage int) *Effect {
	if damage < 0 {
		panic("status: WithTickDamage requires damage >= 0")
	}
	e.TickDamage = damage
	return e
}

// WithTickHealing makes the effect restore hit points at the start of the
// owner's turn.
//
// Precondition: healing must be >= 0.
func (e *Effect) WithTickHealing(healing int) *Effect {
	if healing < 0 {
		panic("status: WithTickHealing requires healing >= 0")
	}
	e.TickHealing = healing
	return e
}
