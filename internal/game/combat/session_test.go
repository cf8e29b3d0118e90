package combat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sessionOf(t *testing.T, totals map[string]int) (*Session, map[string]*Combatant) {
	t.Helper()
	player := NewPlayer(testFighter())
	byID := map[string]*Combatant{player.ID(): player}
	combatants := []*Combatant{player}
	for _, id := range []string{"m1", "m2", "m3"} {
		if _, ok := totals[id]; !ok {
			continue
		}
		g := testGoblin(7, 15)
		g.ID = id
		g.Name = "Goblin " + id
		c := NewMonster(g)
		byID[id] = c
		combatants = append(combatants, c)
	}
	rolls := make(map[string]InitiativeEntry, len(combatants))
	for _, c := range combatants {
		rolls[c.ID()] = InitiativeEntry{
			CombatantID: c.ID(),
			Name:        c.Name(),
			Total:       totals[c.ID()],
			Modifier:    c.InitiativeMod(),
		}
	}
	return NewSession(combatants, rolls), byID
}

func TestSession_OrderByTotalDescending(t *testing.T) {
	s, _ := sessionOf(t, map[string]int{"p1": 12, "m1": 18, "m2": 5})
	require.Len(t, s.Order, 3)
	assert.Equal(t, "m1", s.Order[0].ID())
	assert.Equal(t, "p1", s.Order[1].ID())
	assert.Equal(t, "m2", s.Order[2].ID())
}

func TestSession_CurrentSkipsDead(t *testing.T) {
	s, byID := sessionOf(t, map[string]int{"p1": 5, "m1": 20, "m2": 10})
	byID["m1"].Monster().CurrentHP = 0

	current := s.Current()
	require.NotNil(t, current)
	assert.Equal(t, "m2", current.ID(), "the pointer skips past the corpse")
}

func TestSession_RemoveAdjustsPointer(t *testing.T) {
	s, _ := sessionOf(t, map[string]int{"p1": 20, "m1": 10, "m2": 5})
	s.Advance() // now m1's turn
	s.Remove("m1")

	require.Len(t, s.Order, 2)
	current := s.Current()
	require.NotNil(t, current)
	assert.Equal(t, "m2", current.ID(), "removal hands the turn to the next survivor")
}

func TestSession_RemoveLastSlotClosesRound(t *testing.T) {
	s, _ := sessionOf(t, map[string]int{"p1": 20, "m1": 5})
	s.Advance() // m1's turn, final slot
	require.Equal(t, 1, s.Round)

	s.Remove("m1")
	assert.Equal(t, 2, s.Round, "the departed combatant held the final slot")
	current := s.Current()
	require.NotNil(t, current)
	assert.Equal(t, "p1", current.ID())
}

func TestSession_AggroPrunedWhenEitherSideDies(t *testing.T) {
	s, byID := sessionOf(t, map[string]int{"p1": 20, "m1": 10, "m2": 5})
	s.RecordAggro("m1", "p1")
	s.RecordAggro("p1", "m2")

	assert.Equal(t, "p1", s.LastAttacker("m1"))
	assert.Equal(t, "m2", s.LastAttacker("p1"))

	byID["m2"].Monster().CurrentHP = 0
	s.PruneAggro()
	assert.Empty(t, s.LastAttacker("p1"), "entries whose attacker died are pruned")
	assert.Equal(t, "p1", s.LastAttacker("m1"), "unrelated entries survive")

	byID["m1"].Monster().CurrentHP = 0
	s.PruneAggro()
	assert.Empty(t, s.LastAttacker("m1"), "entries whose target died are pruned")
}
