package dice_test

import (
	"testing"

	"github.com/duskmire/duskmire/internal/game/dice"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"pgregory.net/rapid"
)

// seqSource replays a scripted sequence of raw Intn values, cycling at the end.
type seqSource struct {
	vals []int
	i    int
}

func (s *seqSource) Intn(n int) int {
	v := s.vals[s.i%len(s.vals)]
	s.i++
	if v >= n {
		return n - 1
	}
	return v
}

func TestRollResult_Total(t *testing.T) {
	r := dice.RollResult{
		Expression: "2d6+3",
		Dice:       []int{4, 5},
		Modifier:   3,
	}
	assert.Equal(t, 12, r.Total(), "Total() must equal sum(Dice)+Modifier")
}

func TestRollResult_Total_Property(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		dice_ := rapid.SliceOf(rapid.IntRange(1, 20)).Draw(rt, "dice")
		modifier := rapid.Int().Draw(rt, "modifier")

		r := dice.RollResult{Expression: "Nd6+M", Dice: dice_, Modifier: modifier}

		expected := modifier
		for _, d := range dice_ {
			expected += d
		}
		assert.Equal(rt, expected, r.Total(),
			"Total() postcondition: must equal sum(Dice)+Modifier")
	})
}

func TestRollResult_String_PanicsOnEmptyExpression(t *testing.T) {
	r := dice.RollResult{Dice: []int{4}, Modifier: 0}
	assert.Panics(t, func() { _ = r.String() })
}

func TestModeFor(t *testing.T) {
	assert.Equal(t, dice.Advantage, dice.ModeFor(true, false))
	assert.Equal(t, dice.Disadvantage, dice.ModeFor(false, true))
	// Both flags cancel to a straight roll.
	assert.Equal(t, dice.Straight, dice.ModeFor(true, true))
	assert.Equal(t, dice.Straight, dice.ModeFor(false, false))
}

func TestRollD20_Straight(t *testing.T) {
	src := &seqSource{vals: []int{11}} // raw 11 → die 12
	roll := dice.RollD20(src, dice.Straight)
	assert.Equal(t, []int{12}, roll.Rolls)
	assert.Equal(t, 12, roll.Kept)
}

func TestRollD20_Advantage_KeepsHigher(t *testing.T) {
	src := &seqSource{vals: []int{4, 17}} // dice 5 and 18
	roll := dice.RollD20(src, dice.Advantage)
	assert.Equal(t, []int{5, 18}, roll.Rolls)
	assert.Equal(t, 18, roll.Kept)
}

func TestRollD20_Disadvantage_KeepsLower(t *testing.T) {
	src := &seqSource{vals: []int{4, 17}}
	roll := dice.RollD20(src, dice.Disadvantage)
	assert.Equal(t, []int{5, 18}, roll.Rolls)
	assert.Equal(t, 5, roll.Kept)
}

// TestRollD20_Property verifies the kept die is the max of two independent d20s
// under advantage, the min under disadvantage, and the only die rolled when straight.
func TestRollD20_Property(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		a := rapid.IntRange(0, 19).Draw(rt, "first")
		b := rapid.IntRange(0, 19).Draw(rt, "second")
		src := &seqSource{vals: []int{a, b}}

		mode := rapid.SampledFrom([]dice.CheckMode{
			dice.Straight, dice.Advantage, dice.Disadvantage,
		}).Draw(rt, "mode")

		roll := dice.RollD20(src, mode)
		switch mode {
		case dice.Straight:
			assert.Len(rt, roll.Rolls, 1)
			assert.Equal(rt, roll.Rolls[0], roll.Kept)
		case dice.Advantage:
			assert.Len(rt, roll.Rolls, 2)
			assert.Equal(rt, max(roll.Rolls[0], roll.Rolls[1]), roll.Kept)
		case dice.Disadvantage:
			assert.Len(rt, roll.Rolls, 2)
			assert.Equal(rt, min(roll.Rolls[0], roll.Rolls[1]), roll.Kept)
		}
		assert.GreaterOrEqual(rt, roll.Kept, 1)
		assert.LessOrEqual(rt, roll.Kept, 20)
	})
}

func TestParse_Forms(t *testing.T) {
	tests := []struct {
		expr  string
		count int
		sides int
		mod   int
	}{
		{"d20", 1, 20, 0},
		{"2d6", 2, 6, 0},
		{"2d6+3", 2, 6, 3},
		{"4d8-2", 4, 8, -2},
		{"1d12+0", 1, 12, 0},
	}
	for _, tc := range tests {
		e, err := dice.Parse(tc.expr)
		require.NoError(t, err, "expr=%q", tc.expr)
		assert.Equal(t, tc.count, e.Count, "expr=%q", tc.expr)
		assert.Equal(t, tc.sides, e.Sides, "expr=%q", tc.expr)
		assert.Equal(t, tc.mod, e.Modifier, "expr=%q", tc.expr)
	}
}

func TestParse_KeepHighest(t *testing.T) {
	e, err := dice.Parse("4d6kh3")
	require.NoError(t, err)
	assert.Equal(t, 4, e.Count)
	assert.Equal(t, 6, e.Sides)
	assert.Equal(t, 3, e.KeepHighest)
	assert.Equal(t, 0, e.Modifier)

	e, err = dice.Parse("4d6kh3+2")
	require.NoError(t, err)
	assert.Equal(t, 3, e.KeepHighest)
	assert.Equal(t, 2, e.Modifier)
}

func TestParse_Errors(t *testing.T) {
	for _, expr := range []string{"", "20", "0d6", "-1d6", "2d0", "2dx", "2d6+x", "4d6kh0", "4d6kh4", "4d6khx"} {
		_, err := dice.Parse(expr)
		assert.Error(t, err, "expr=%q must not parse", expr)
	}
}

func TestRoll_DiceCountMatchesExpression(t *testing.T) {
	src := &seqSource{vals: []int{2, 3, 4}}
	r := dice.Roll(dice.MustParse("3d6+1"), src)
	assert.Len(t, r.Dice, 3)
	assert.Equal(t, 13, r.Total()) // 3+4+5 +1
}

func TestRoll_KeepHighestDropsLowDice(t *testing.T) {
	src := &seqSource{vals: []int{0, 5, 2, 3}} // dice 1, 6, 3, 4
	r := dice.Roll(dice.MustParse("4d6kh3"), src)
	assert.Equal(t, []int{6, 4, 3}, r.Dice, "only the three highest survive")
	assert.Equal(t, 13, r.Total())
}

func TestRoll_Property_TotalInRange(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		count := rapid.IntRange(1, 8).Draw(rt, "count")
		sides := rapid.IntRange(2, 20).Draw(rt, "sides")
		raw := rapid.IntRange(0, 19).Draw(rt, "raw")
		src := &seqSource{vals: []int{raw}}

		r := dice.Roll(dice.Expression{Raw: "x", Count: count, Sides: sides}, src)
		assert.GreaterOrEqual(rt, r.Total(), count, "each die is at least 1")
		assert.LessOrEqual(rt, r.Total(), count*sides, "each die is at most sides")
	})
}

func TestLoggedRoller_LogsEachRoll(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	r := dice.NewLoggedRoller(&seqSource{vals: []int{2, 3}}, zap.New(core))

	result, err := r.RollExpr("2d6+1")
	require.NoError(t, err)
	assert.Equal(t, 8, result.Total()) // 3+4 +1

	entries := logs.FilterMessage("dice roll").All()
	require.Len(t, entries, 1)
	assert.Equal(t, int64(8), entries[0].ContextMap()["total"])

	roll := r.RollCheck(dice.Straight)
	assert.Len(t, roll.Rolls, 1)
	assert.Len(t, logs.FilterMessage("d20 check").All(), 1)
}

func TestMustParse_PanicsOnInvalid(t *testing.T) {
	assert.Panics(t, func() { dice.MustParse("bogus") })
}

func TestCryptoSource_Intn_InRange(t *testing.T) {
	src := dice.NewCryptoSource()
	for i := 0; i < 1000; i++ {
		v := src.Intn(6)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 6)
	}
}

func TestCryptoSource_Intn_PanicsOnZero(t *testing.T) {
	src := dice.NewCryptoSource()
	assert.Panics(t, func() { src.Intn(0) })
}
