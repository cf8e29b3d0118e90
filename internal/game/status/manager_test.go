package status_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"pgregory.net/rapid"

	"github.com/duskmire/duskmire/internal/game/status"
)

// fixedSrc always returns min(v, n-1), enabling deterministic test rolls.
type fixedSrc struct{ v int }

func (f fixedSrc) Intn(n int) int {
	if f.v >= n {
		return n - 1
	}
	return f.v
}

func noSaves(ownerID, ability string) int { return 0 }

func newManager() *status.Manager {
	return status.NewManager(zap.NewNop())
}

func TestManager_ApplyAndHas(t *testing.T) {
	m := newManager()
	m.Apply("goblin-1", status.ForRounds("poisoned", "Poisoned", status.Poisoned, 3))
	assert.True(t, m.Has("goblin-1", "poisoned"))
	assert.True(t, m.HasCondition("goblin-1", status.Poisoned))
	assert.False(t, m.Has("goblin-2", "poisoned"))
}

func TestManager_Apply_ReplacesSameID(t *testing.T) {
	m := newManager()
	m.Apply("c1", status.ForRounds("poisoned", "Poisoned", status.Poisoned, 1))
	m.Apply("c1", status.ForRounds("poisoned", "Poisoned", status.Poisoned, 5))
	require.Len(t, m.Active("c1"), 1)
	assert.Equal(t, 5, m.Active("c1")[0].Remaining)
}

func TestManager_Remove(t *testing.T) {
	m := newManager()
	m.Apply("c1", status.Indefinite("rage", "Rage", status.ConditionNone))
	m.Remove("c1", "rage")
	assert.False(t, m.Has("c1", "rage"))
	m.Remove("c1", "rage") // must not panic
}

func TestForRounds_DefaultsToOneRound(t *testing.T) {
	e := status.ForRounds("x", "X", status.ConditionNone, 0)
	assert.Equal(t, 1, e.Remaining)
	e = status.ForRounds("x", "X", status.ConditionNone, -4)
	assert.Equal(t, 1, e.Remaining)
}

func TestUntilSave_PanicsOnMissingAbility(t *testing.T) {
	assert.Panics(t, func() { status.UntilSave("x", "X", status.ConditionNone, "", 12) })
	assert.Panics(t, func() { status.UntilSave("x", "X", status.ConditionNone, "str", 0) })
}

func TestManager_ProcessTurnEnd_TicksRounds(t *testing.T) {
	m := newManager()
	m.Apply("c1", status.ForRounds("poisoned", "Poisoned", status.Poisoned, 2))

	events := m.ProcessTurnEnd("c1", noSaves, fixedSrc{v: 0})
	assert.Empty(t, events)
	assert.True(t, m.Has("c1", "poisoned"))

	events = m.ProcessTurnEnd("c1", noSaves, fixedSrc{v: 0})
	require.Len(t, events, 1)
	assert.True(t, events[0].Expired)
	assert.False(t, m.Has("c1", "poisoned"))
}

func TestManager_ProcessTurnEnd_UntilTurnEndExpires(t *testing.T) {
	m := newManager()
	m.Apply("c1", status.UntilTurnEnd("sneak_window", "Opening", status.ConditionNone))
	events := m.ProcessTurnEnd("c1", noSaves, fixedSrc{v: 0})
	require.Len(t, events, 1)
	assert.False(t, m.Has("c1", "sneak_window"))
}

func TestManager_ProcessTurnEnd_SaveSucceeds(t *testing.T) {
	m := newManager()
	m.Apply("c1", status.UntilSave("restrained", "Restrained", status.Restrained, "str", 13))

	// Kept die 14 + modifier 0 beats DC 13.
	events := m.ProcessTurnEnd("c1", noSaves, fixedSrc{v: 13})
	require.Len(t, events, 1)
	assert.True(t, events[0].Saved)
	assert.Equal(t, 14, events[0].SaveRoll)
	assert.Equal(t, 13, events[0].SaveDC)
	assert.False(t, m.Has("c1", "restrained"))
}

func TestManager_ProcessTurnEnd_SaveFails(t *testing.T) {
	m := newManager()
	m.Apply("c1", status.UntilSave("restrained", "Restrained", status.Restrained, "str", 13))

	events := m.ProcessTurnEnd("c1", noSaves, fixedSrc{v: 4}) // die 5 < 13
	require.Len(t, events, 1)
	assert.False(t, events[0].Saved)
	assert.True(t, m.Has("c1", "restrained"))
}

func TestManager_ProcessTurnEnd_SaveUsesOwnerModifier(t *testing.T) {
	m := newManager()
	m.Apply("c1", status.UntilSave("restrained", "Restrained", status.Restrained, "str", 13))

	strPlusThree := func(ownerID, ability string) int {
		require.Equal(t, "c1", ownerID)
		require.Equal(t, "str", ability)
		return 3
	}
	// Die 10 + mod 3 == DC 13: meets it, saves.
	events := m.ProcessTurnEnd("c1", strPlusThree, fixedSrc{v: 9})
	require.Len(t, events, 1)
	assert.True(t, events[0].Saved)
}

func TestManager_ProcessTurnStart_ExpiresTurnStartEffects(t *testing.T) {
	m := newManager()
	m.Apply("c1", status.UntilTurnStart("reckless", "Reckless", status.ConditionNone))
	m.Apply("c1", status.Indefinite("rage", "Rage", status.ConditionNone))

	events := m.ProcessTurnStart("c1")
	require.Len(t, events, 1)
	assert.Equal(t, "reckless", events[0].EffectID)
	assert.False(t, m.Has("c1", "reckless"))
	assert.True(t, m.Has("c1", "rage"))
}

func TestManager_ProcessTurnStart_ReportsOngoingDamage(t *testing.T) {
	m := newManager()
	m.Apply("c1", status.ForRounds("burning", "Burning", status.ConditionNone, 3).WithTickDamage(2))
	m.Apply("c1", status.Indefinite("regenerating", "Regenerating", status.ConditionNone).WithTickHealing(1))

	events := m.ProcessTurnStart("c1")
	require.Len(t, events, 2)
	assert.Equal(t, 2, events[0].Damage, "burning owes its tick damage")
	assert.Equal(t, 1, events[1].Healing, "regeneration owes its tick healing")
	assert.True(t, m.Has("c1", "burning"), "ticking does not expire the effect")
}

func TestManager_PermanentAndIndefiniteNeverTick(t *testing.T) {
	m := newManager()
	m.Apply("c1", status.Permanent("cursed", "Cursed", status.ConditionNone))
	m.Apply("c1", status.Indefinite("rage", "Rage", status.ConditionNone))
	for i := 0; i < 10; i++ {
		m.ProcessTurnStart("c1")
		m.ProcessTurnEnd("c1", noSaves, fixedSrc{v: 0})
	}
	assert.True(t, m.Has("c1", "cursed"))
	assert.True(t, m.Has("c1", "rage"))
}

func TestManager_ConditionQueries(t *testing.T) {
	m := newManager()
	m.Apply("held", status.UntilSave("restrained", "Restrained", status.Restrained, "str", 12))
	m.Apply("sleeper", status.Indefinite("unconscious", "Unconscious", status.Unconscious))
	m.Apply("shaky", status.ForRounds("frightened", "Frightened", status.Frightened, 2))

	assert.True(t, m.AttacksHaveAdvantageAgainst("held"))
	assert.True(t, m.AttacksHaveAdvantageAgainst("sleeper"))
	assert.False(t, m.AttacksHaveAdvantageAgainst("shaky"))

	assert.True(t, m.HasDisadvantageOnAttacks("held"))
	assert.True(t, m.HasDisadvantageOnAttacks("shaky"))

	assert.True(t, m.MeleeCritsAgainst("sleeper"))
	assert.False(t, m.MeleeCritsAgainst("held"))

	assert.True(t, m.CanAct("held"))
	assert.False(t, m.CanAct("sleeper"))
}

func TestManager_RecklessGrantsBothWays(t *testing.T) {
	m := newManager()
	m.Apply("b1", status.UntilTurnStart("reckless", "Reckless", status.ConditionNone))
	assert.True(t, m.HasAdvantageOnAttacks("b1"))
	assert.True(t, m.AttacksHaveAdvantageAgainst("b1"))
}

func TestManager_PatientDefenseImposesDisadvantage(t *testing.T) {
	m := newManager()
	m.Apply("m1", status.UntilTurnStart("patient_defense", "Patient Defense", status.ConditionNone))
	assert.True(t, m.AttacksHaveDisadvantageAgainst("m1"))
}

func TestManager_Clear(t *testing.T) {
	m := newManager()
	m.Apply("c1", status.Indefinite("rage", "Rage", status.ConditionNone))
	m.Clear("c1")
	assert.Empty(t, m.Active("c1"))
}

// TestProperty_RemainingNeverNegative drives arbitrary tick sequences and
// checks no surviving effect ever reports a negative duration.
func TestProperty_RemainingNeverNegative(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		rounds := rapid.IntRange(-2, 6).Draw(rt, "rounds")
		ticks := rapid.IntRange(0, 12).Draw(rt, "ticks")

		m := newManager()
		m.Apply("c1", status.ForRounds("poisoned", "Poisoned", status.Poisoned, rounds))
		for i := 0; i < ticks; i++ {
			m.ProcessTurnEnd("c1", noSaves, fixedSrc{v: 0})
		}
		for _, e := range m.Active("c1") {
			assert.GreaterOrEqual(rt, e.Remaining, 0,
				"Remaining must never go negative")
		}
	})
}

// TestProperty_TurnBoundariesNeverResurrect checks that once an effect has
// expired it stays gone across further boundaries.
func TestProperty_TurnBoundariesNeverResurrect(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		rounds := rapid.IntRange(1, 4).Draw(rt, "rounds")
		m := newManager()
		m.Apply("c1", status.ForRounds("x", "X", status.ConditionNone, rounds))
		for i := 0; i < rounds; i++ {
			m.ProcessTurnEnd("c1", noSaves, fixedSrc{v: 0})
		}
		assert.False(rt, m.Has("c1", "x"))
		m.ProcessTurnStart("c1")
		m.ProcessTurnEnd("c1", noSaves, fixedSrc{v: 0})
		assert.False(rt, m.Has("c1", "x"))
	})
}
