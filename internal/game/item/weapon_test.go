package item_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/duskmire/duskmire/internal/game/item"
)

func TestWeapon_Validate(t *testing.T) {
	w := &item.Weapon{ID: "longsword", Name: "Longsword", DamageDice: "1d8", DamageType: "slashing"}
	assert.NoError(t, w.Validate())
}

func TestWeapon_Validate_Errors(t *testing.T) {
	tests := []struct {
		name string
		w    item.Weapon
	}{
		{"missing id", item.Weapon{Name: "X", DamageDice: "1d8", DamageType: "slashing"}},
		{"missing name", item.Weapon{ID: "x", DamageDice: "1d8", DamageType: "slashing"}},
		{"missing dice", item.Weapon{ID: "x", Name: "X", DamageType: "slashing"}},
		{"bad dice", item.Weapon{ID: "x", Name: "X", DamageDice: "8", DamageType: "slashing"}},
		{"missing type", item.Weapon{ID: "x", Name: "X", DamageDice: "1d8"}},
	}
	for _, tc := range tests {
		assert.Error(t, tc.w.Validate(), tc.name)
	}
}

func TestWeapon_SneakEligible(t *testing.T) {
	dagger := &item.Weapon{ID: "dagger", Name: "Dagger", DamageDice: "1d4", DamageType: "piercing", Finesse: true}
	bow := &item.Weapon{ID: "shortbow", Name: "Shortbow", DamageDice: "1d6", DamageType: "piercing", Ranged: true}
	mace := &item.Weapon{ID: "mace", Name: "Mace", DamageDice: "1d6", DamageType: "bludgeoning"}
	assert.True(t, dagger.SneakEligible())
	assert.True(t, bow.SneakEligible())
	assert.False(t, mace.SneakEligible())
	assert.True(t, mace.IsMelee())
	assert.False(t, bow.IsMelee())
}

func TestUnarmedFallbacksValidate(t *testing.T) {
	assert.NoError(t, item.Unarmed.Validate())
	assert.NoError(t, item.MonkUnarmed.Validate())
}

func TestRegistry_RegisterAndLookup(t *testing.T) {
	reg := item.NewRegistry()
	require.NoError(t, reg.Register(&item.Weapon{
		ID: "longsword", Name: "Longsword", DamageDice: "1d8", DamageType: "slashing",
	}))
	w, ok := reg.Weapon("longsword")
	require.True(t, ok)
	assert.Equal(t, "Longsword", w.Name)
	_, ok = reg.Weapon("halberd")
	assert.False(t, ok)
	assert.Len(t, reg.All(), 1)
}

func TestRegistry_Register_RejectsInvalid(t *testing.T) {
	reg := item.NewRegistry()
	assert.Error(t, reg.Register(&item.Weapon{ID: "x"}))
}

func TestLoadDirectory(t *testing.T) {
	dir := t.TempDir()
	yaml := `id: rapier
name: Rapier
damage_dice: 1d8
damage_type: piercing
finesse: true
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "rapier.yaml"), []byte(yaml), 0o644))

	reg, err := item.LoadDirectory(dir)
	require.NoError(t, err)
	w, ok := reg.Weapon("rapier")
	require.True(t, ok)
	assert.True(t, w.Finesse)
}

func TestLoadDirectory_RejectsUnknownFields(t *testing.T) {
	dir := t.TempDir()
	yaml := `id: rapier
name: Rapier
damage_dice: 1d8
damage_type: piercing
reach: 10
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "rapier.yaml"), []byte(yaml), 0o644))
	_, err := item.LoadDirectory(dir)
	assert.Error(t, err)
}

func TestNewDrop(t *testing.T) {
	d := item.NewDrop("longsword", "Longsword", "Grub")
	assert.NotEmpty(t, d.InstanceID)
	assert.Equal(t, "longsword", d.ItemID)

	d2 := item.NewDrop("longsword", "Longsword", "Grub")
	assert.NotEqual(t, d.InstanceID, d2.InstanceID, "each drop gets a fresh instance ID")

	assert.Panics(t, func() { item.NewDrop("", "X", "Y") })
}
