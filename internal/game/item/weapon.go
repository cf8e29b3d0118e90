// Package item provides weapon definitions and the registry the combat
// engine consults for damage dice and weapon traits.
package item

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/duskmire/duskmire/internal/game/dice"
)

// Weapon defines the static properties of a weapon loaded from YAML.
type Weapon struct {
	ID         string `yaml:"id"`
	Name       string `yaml:"name"`
	DamageDice string `yaml:"damage_dice"`
	DamageType string `yaml:"damage_type"`
	Finesse    bool   `yaml:"finesse"`
	Ranged     bool   `yaml:"ranged"`
}

// IsMelee reports whether the weapon is a melee weapon.
func (w *Weapon) IsMelee() bool { return !w.Ranged }

// SneakEligible reports whether the weapon can carry sneak-attack damage:
// finesse or ranged weapons only.
func (w *Weapon) SneakEligible() bool { return w.Finesse || w.Ranged }

// Validate checks that the Weapon satisfies its invariants.
//
// Precondition: w is non-nil.
// Postcondition: returns nil iff all fields are valid, including a parsable
// damage dice expression.
func (w *Weapon) Validate() error {
	var errs []error
	if w.ID == "" {
		errs = append(errs, errors.New("ID must not be empty"))
	}
	if w.Name == "" {
		errs = append(errs, errors.New("Name must not be empty"))
	}
	if w.DamageDice == "" {
		errs = append(errs, errors.New("DamageDice must not be empty"))
	} else if _, err := dice.Parse(w.DamageDice); err != nil {
		errs = append(errs, fmt.Errorf("DamageDice: %w", err))
	}
	if w.DamageType == "" {
		errs = append(errs, errors.New("DamageType must not be empty"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("weapon validation failed: %v", errs)
	}
	return nil
}

// Unarmed is the fallback weapon used when a combatant has nothing equipped.
// A bare fist deals a single point of bludgeoning damage plus modifiers.
var Unarmed = &Weapon{
	ID:         "unarmed",
	Name:       "Unarmed Strike",
	DamageDice: "1d1",
	DamageType: "bludgeoning",
}

// MonkUnarmed is the martial-arts die monks use instead of a bare fist.
var MonkUnarmed = &Weapon{
	ID:         "martial_arts",
	Name:       "Martial Arts Strike",
	DamageDice: "1d4",
	DamageType: "bludgeoning",
	Finesse:    true,
}

// Registry holds all known Weapons keyed by ID.
type Registry struct {
	weapons map[string]*Weapon
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{weapons: make(map[string]*Weapon)}
}

// Register adds w to the registry, overwriting any existing entry with the
// same ID.
//
// Precondition: w must be non-nil and pass Validate.
func (r *Registry) Register(w *Weapon) error {
	if err := w.Validate(); err != nil {
		return err
	}
	r.weapons[w.ID] = w
	return nil
}

// Weapon returns the weapon for id, or (nil, false) if not found.
func (r *Registry) Weapon(id string) (*Weapon, bool) {
	w, ok := r.weapons[id]
	return w, ok
}

// All returns a snapshot slice of all registered weapons.
func (r *Registry) All() []*Weapon {
	out := make([]*Weapon, 0, len(r.weapons))
	for _, w := range r.weapons {
		out = append(out, w)
	}
	return out
}

// LoadDirectory reads every *.yaml file in dir, parses each as a Weapon,
// and returns a populated Registry.
//
// Precondition: dir must be a readable directory.
// Postcondition: Returns a non-nil Registry, or an error if any file fails
// to parse or validate.
func LoadDirectory(dir string) (*Registry, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading weapon dir %q: %w", dir, err)
	}
	reg := NewRegistry()
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".yaml") {
			continue
		}
		path := filepath.Join(dir, e.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %q: %w", path, err)
		}
		var w Weapon
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&w); err != nil {
			return nil, fmt.Errorf("parsing %q: %w", path, err)
		}
		if err := reg.Register(&w); err != nil {
			return nil, fmt.Errorf("loading %q: %w", path, err)
		}
	}
	return reg, nil
}
