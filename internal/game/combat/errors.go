package combat

import "errors"

// The error taxonomy for expected game-flow failures. All are returned as
// wrapped sentinel errors so callers can discriminate with errors.Is and
// re-prompt the player; none of them indicates a bug.
var (
	// ErrNoParticipants is returned when combat is started without an
	// active player or with an empty enemy list.
	ErrNoParticipants = errors.New("combat requires a player and at least one enemy")

	// ErrNoActiveSession is returned when a turn operation arrives outside
	// an encounter.
	ErrNoActiveSession = errors.New("no active combat session")

	// ErrCombatInProgress is returned when a new encounter is started while
	// one is already running.
	ErrCombatInProgress = errors.New("combat already in progress")

	// ErrOutOfTurn is returned when an action arrives for a combatant whose
	// turn it is not.
	ErrOutOfTurn = errors.New("not this combatant's turn")

	// ErrInvalidTarget is returned when a named target is unknown or
	// already defeated.
	ErrInvalidTarget = errors.New("invalid target")

	// ErrInsufficientResource is returned when an ability has no remaining
	// charge, slot, or use.
	ErrInsufficientResource = errors.New("insufficient resource")

	// ErrRuleViolation is returned when an action is mechanically illegal
	// this turn: bonus action already spent, ability already active, wrong
	// class for the ability.
	ErrRuleViolation = errors.New("rule violation")
)
