package monster_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/duskmire/duskmire/internal/game/monster"
)

func goblinYAML() string {
	return `id: goblin
name: Goblin
description: A sneering little raider.
max_hp: 7
ac: 15
attack_bonus: 4
damage_dice: 1d6+2
abilities:
  str: -1
  dex: 2
experience: 50
behavior: cowardly
`
}

func TestLoadTemplateFromBytes(t *testing.T) {
	tmpl, err := monster.LoadTemplateFromBytes([]byte(goblinYAML()))
	require.NoError(t, err)
	assert.Equal(t, "goblin", tmpl.ID)
	assert.Equal(t, 7, tmpl.MaxHP)
	assert.Equal(t, 2, tmpl.Abilities.Dex)
	assert.Equal(t, 50, tmpl.Experience)
}

func TestTemplate_Validate_Errors(t *testing.T) {
	tests := []struct {
		name string
		mut  func(*monster.Template)
	}{
		{"empty id", func(m *monster.Template) { m.ID = "" }},
		{"empty name", func(m *monster.Template) { m.Name = "" }},
		{"zero hp", func(m *monster.Template) { m.MaxHP = 0 }},
		{"bad dice", func(m *monster.Template) { m.DamageDice = "six" }},
		{"negative xp", func(m *monster.Template) { m.Experience = -1 }},
		{"unknown behavior", func(m *monster.Template) { m.Behavior = "sleepy" }},
	}
	for _, tc := range tests {
		tmpl, err := monster.LoadTemplateFromBytes([]byte(goblinYAML()))
		require.NoError(t, err)
		tc.mut(tmpl)
		assert.Error(t, tmpl.Validate(), tc.name)
	}
}

func TestSpecial_Validate(t *testing.T) {
	ok := monster.Special{Kind: monster.SpecialDisarm, SaveAbility: "str", SaveDC: 11}
	assert.NoError(t, ok.Validate())

	bad := []monster.Special{
		{Kind: "trip", SaveAbility: "str", SaveDC: 11},
		{Kind: monster.SpecialAdhesive, SaveAbility: "", SaveDC: 11},
		{Kind: monster.SpecialAdhesive, SaveAbility: "str", SaveDC: 0},
	}
	for _, s := range bad {
		assert.Error(t, s.Validate())
	}
}

func TestLoadTemplates_RejectsUnknownFields(t *testing.T) {
	_, err := monster.LoadTemplateFromBytes([]byte(goblinYAML() + "speed: 30\n"))
	assert.Error(t, err)
}

func TestLoadTemplates_Directory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "goblin.yaml"), []byte(goblinYAML()), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("skip me"), 0o644))

	templates, err := monster.LoadTemplates(dir)
	require.NoError(t, err)
	require.Len(t, templates, 1)
	assert.Contains(t, templates, "goblin")
}

func TestNewInstance_CopiesTemplate(t *testing.T) {
	tmpl, err := monster.LoadTemplateFromBytes([]byte(goblinYAML()))
	require.NoError(t, err)

	a := monster.NewInstance(tmpl)
	b := monster.NewInstance(tmpl)
	assert.NotEqual(t, a.ID, b.ID, "each instance gets a fresh UUID")
	assert.Equal(t, tmpl.MaxHP, a.CurrentHP)
	assert.Equal(t, "cowardly", a.Behavior)

	a.ApplyDamage(3)
	assert.Equal(t, 7, b.CurrentHP, "instances do not share hit points")
}

func TestInstance_ApplyDamage_FloorsAtZero(t *testing.T) {
	tmpl, err := monster.LoadTemplateFromBytes([]byte(goblinYAML()))
	require.NoError(t, err)
	inst := monster.NewInstance(tmpl)

	lost := inst.ApplyDamage(100)
	assert.Equal(t, 7, lost)
	assert.Equal(t, 0, inst.CurrentHP)
	assert.False(t, inst.IsAlive())
}

func TestInstance_Bloodied(t *testing.T) {
	tmpl := &monster.Template{ID: "ogre", Name: "Ogre", MaxHP: 10, AC: 11, DamageDice: "2d8+4"}
	require.NoError(t, tmpl.Validate())
	inst := monster.NewInstance(tmpl)

	assert.False(t, inst.Bloodied())
	inst.ApplyDamage(5) // exactly 50%
	assert.True(t, inst.Bloodied(), "exactly half counts as bloodied")
}

func TestInstance_Property_HPNeverNegative(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		maxHP := rapid.IntRange(1, 100).Draw(rt, "max_hp")
		tmpl := &monster.Template{ID: "x", Name: "X", MaxHP: maxHP, AC: 10, DamageDice: "1d6"}
		inst := monster.NewInstance(tmpl)
		for i := 0; i < rapid.IntRange(1, 10).Draw(rt, "hits"); i++ {
			inst.ApplyDamage(rapid.IntRange(0, 60).Draw(rt, "dmg"))
			assert.GreaterOrEqual(rt, inst.CurrentHP, 0)
		}
	})
}

func TestAbilities_Mod(t *testing.T) {
	a := monster.Abilities{Str: 3, Dex: -1, Wis: 2}
	assert.Equal(t, 3, a.Mod("str"))
	assert.Equal(t, -1, a.Mod("dex"))
	assert.Equal(t, 0, a.Mod("luck"), "unknown ability defaults to 0")
}
