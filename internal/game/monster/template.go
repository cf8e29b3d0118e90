// Package monster provides monster template definitions and live instance
// management for combat encounters.
package monster

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/duskmire/duskmire/internal/game/dice"
)

// Abilities holds a monster's six ability modifiers (not scores).
type Abilities struct {
	Str int `yaml:"str"`
	Dex int `yaml:"dex"`
	Con int `yaml:"con"`
	Int int `yaml:"int"`
	Wis int `yaml:"wis"`
	Cha int `yaml:"cha"`
}

// Mod returns the modifier for the named ability key, or 0 for an unknown key.
func (a Abilities) Mod(ability string) int {
	switch ability {
	case "str":
		return a.Str
	case "dex":
		return a.Dex
	case "con":
		return a.Con
	case "int":
		return a.Int
	case "wis":
		return a.Wis
	case "cha":
		return a.Cha
	default:
		return 0
	}
}

// SpecialKind names a monster's on-hit special ability.
type SpecialKind string

const (
	// SpecialDisarm forces a save or the target drops its equipped weapon.
	SpecialDisarm SpecialKind = "disarm"
	// SpecialAdhesive forces a save or the target is restrained, with a
	// fresh save each turn to break free.
	SpecialAdhesive SpecialKind = "adhesive"
)

// Special defines a monster's on-hit special ability.
type Special struct {
	Kind        SpecialKind `yaml:"kind"`
	SaveAbility string      `yaml:"save_ability"`
	SaveDC      int         `yaml:"save_dc"`
}

// Validate checks the special ability invariants.
func (s *Special) Validate() error {
	if s.Kind != SpecialDisarm && s.Kind != SpecialAdhesive {
		return fmt.Errorf("special kind must be %q or %q, got %q", SpecialDisarm, SpecialAdhesive, s.Kind)
	}
	if s.SaveAbility == "" {
		return fmt.Errorf("special %q: save_ability must not be empty", s.Kind)
	}
	if s.SaveDC < 1 {
		return fmt.Errorf("special %q: save_dc must be >= 1, got %d", s.Kind, s.SaveDC)
	}
	return nil
}

// Template defines a reusable monster archetype loaded from YAML.
type Template struct {
	ID          string    `yaml:"id"`
	Name        string    `yaml:"name"`
	Description string    `yaml:"description"`
	MaxHP       int       `yaml:"max_hp"`
	AC          int       `yaml:"ac"`
	AttackBonus int       `yaml:"attack_bonus"`
	DamageDice  string    `yaml:"damage_dice"`
	Abilities   Abilities `yaml:"abilities"`
	Experience  int       `yaml:"experience"`
	// Behavior is the AI behavior tag: "aggressive", "cowardly",
	// "defensive", or "tactical".
	Behavior string   `yaml:"behavior"`
	Special  *Special `yaml:"special"`
}

// Validate checks that the template satisfies basic invariants.
//
// Precondition: t must not be nil.
// Postcondition: Returns nil iff ID and Name are non-empty, MaxHP >= 1,
// DamageDice parses, Experience >= 0, and any special validates.
func (t *Template) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("monster template: id must not be empty")
	}
	if t.Name == "" {
		return fmt.Errorf("monster template %q: name must not be empty", t.ID)
	}
	if t.MaxHP < 1 {
		return fmt.Errorf("monster template %q: max_hp must be >= 1", t.ID)
	}
	if t.DamageDice == "" {
		return fmt.Errorf("monster template %q: damage_dice must not be empty", t.ID)
	}
	if _, err := dice.Parse(t.DamageDice); err != nil {
		return fmt.Errorf("monster template %q: %w", t.ID, err)
	}
	if t.Experience < 0 {
		return fmt.Errorf("monster template %q: experience must be >= 0", t.ID)
	}
	switch t.Behavior {
	case "", "aggressive", "cowardly", "defensive", "tactical":
	default:
		return fmt.Errorf("monster template %q: unknown behavior %q", t.ID, t.Behavior)
	}
	if t.Special != nil {
		if err := t.Special.Validate(); err != nil {
			return fmt.Errorf("monster template %q: %w", t.ID, err)
		}
	}
	return nil
}

// LoadTemplateFromBytes parses a single monster template from raw YAML bytes.
//
// Precondition: data must be valid YAML for a single Template.
// Postcondition: Returns a validated *Template, or an error.
func LoadTemplateFromBytes(data []byte) (*Template, error) {
	var tmpl Template
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&tmpl); err != nil {
		return nil, fmt.Errorf("parsing template YAML: %w", err)
	}
	if err := tmpl.Validate(); err != nil {
		return nil, err
	}
	return &tmpl, nil
}

// LoadTemplates reads all *.yaml files in dir and returns the parsed
// templates keyed by ID.
//
// Precondition: dir must be a readable directory.
// Postcondition: Returns all templates or an error on the first parse or
// validate failure; on error, the partial result is discarded.
func LoadTemplates(dir string) (map[string]*Template, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading monster dir %q: %w", dir, err)
	}

	templates := make(map[string]*Template)
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %q: %w", path, err)
		}
		tmpl, err := LoadTemplateFromBytes(data)
		if err != nil {
			return nil, fmt.Errorf("loading %q: %w", path, err)
		}
		templates[tmpl.ID] = tmpl
	}
	return templates, nil
}
