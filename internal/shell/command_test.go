package shell

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestParse_Empty(t *testing.T) {
	result := Parse("")
	assert.Equal(t, "", result.Command)
	assert.Equal(t, "", result.Target)
}

func TestParse_SingleWord(t *testing.T) {
	result := Parse("flee")
	assert.Equal(t, "flee", result.Command)
	assert.Equal(t, "", result.Target)
}

func TestParse_Lowercase(t *testing.T) {
	result := Parse("ATTACK")
	assert.Equal(t, "attack", result.Command)
}

func TestParse_WithTarget(t *testing.T) {
	result := Parse("attack goblin archer")
	assert.Equal(t, "attack", result.Command)
	assert.Equal(t, "goblin archer", result.Target)
}

func TestParse_ExtraWhitespace(t *testing.T) {
	result := Parse("  attack   Goblin  ")
	assert.Equal(t, "attack", result.Command)
	assert.Equal(t, "Goblin", result.Target)
}

func TestPropertyParseAlwaysLowercasesCommand(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		word := rapid.StringMatching(`[A-Za-z]{1,20}`).Draw(t, "word")
		result := Parse(word)
		for _, c := range result.Command {
			if c >= 'A' && c <= 'Z' {
				t.Fatalf("command %q contains uppercase char in Parse result %q", word, result.Command)
			}
		}
	})
}

func TestDefaultRegistry(t *testing.T) {
	r := DefaultRegistry()
	assert.NotNil(t, r)
	assert.Greater(t, len(r.Commands()), 0)
}

func TestResolve_CanonicalName(t *testing.T) {
	r := DefaultRegistry()

	cmd, ok := r.Resolve("attack")
	require.True(t, ok)
	assert.Equal(t, "attack", cmd.Name)
}

func TestResolve_Alias(t *testing.T) {
	r := DefaultRegistry()

	for alias, canonical := range map[string]string{
		"a":      "attack",
		"run":    "flee",
		"flurry": "flurry_of_blows",
		"smite":  "divine_smite",
		"dodge":  "patient_defense",
	} {
		cmd, ok := r.Resolve(alias)
		require.True(t, ok, "alias %q should resolve", alias)
		assert.Equal(t, canonical, cmd.Name)
	}
}

func TestResolve_NotFound(t *testing.T) {
	r := DefaultRegistry()

	_, ok := r.Resolve("teleport")
	assert.False(t, ok)
}

func TestNewRegistry_RejectsDuplicates(t *testing.T) {
	_, err := NewRegistry([]Command{{Name: "attack"}, {Name: "attack"}})
	assert.Error(t, err)

	_, err = NewRegistry([]Command{{Name: "attack"}, {Name: "strike", Aliases: []string{"attack"}}})
	assert.Error(t, err)
}

func TestCommands_SortedByName(t *testing.T) {
	cmds := DefaultRegistry().Commands()
	for i := 1; i < len(cmds); i++ {
		assert.Less(t, cmds[i-1].Name, cmds[i].Name)
	}
}
