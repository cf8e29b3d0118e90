package combat

// TurnState consolidates the per-turn flags a player turn accumulates.
// A fresh value is constructed when the player's turn starts and discarded
// when the engine advances past it, which makes reset ordering a non-issue.
type TurnState struct {
	// ActionUsed is set once the turn's single action is consumed.
	ActionUsed bool
	// ExtraActions counts additional actions granted this turn (action surge).
	ExtraActions int
	// BonusActionUsed is set once the turn's bonus action is consumed.
	BonusActionUsed bool
	// Reckless marks a reckless attack declared this turn.
	Reckless bool
	// SneakAttackUsed caps sneak attack at once per turn.
	SneakAttackUsed bool
	// FlurryAttacksRemaining counts flurry-of-blows strikes still owed.
	FlurryAttacksRemaining int
	// SmiteReady marks a divine smite readied for the next hit.
	SmiteReady bool
}

// NewTurnState returns a fresh turn state with nothing spent.
func NewTurnState() *TurnState {
	return &TurnState{}
}

// UseAction consumes the turn's action, drawing on an extra action when the
// base action is already spent. Reports whether an action was available.
//
// Postcondition: returns true iff the turn had an action to consume.
func (t *TurnState) UseAction() bool {
	if !t.ActionUsed {
		t.ActionUsed = true
		return true
	}
	if t.ExtraActions > 0 {
		t.ExtraActions--
		return true
	}
	return false
}

// HasAction reports whether an action (base or extra) remains this turn.
func (t *TurnState) HasAction() bool {
	return !t.ActionUsed || t.ExtraActions > 0
}

// UseBonusAction consumes the turn's bonus action. Reports whether it was
// still available.
func (t *TurnState) UseBonusAction() bool {
	if t.BonusActionUsed {
		return false
	}
	t.BonusActionUsed = true
	return true
}
