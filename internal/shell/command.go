// Package shell provides the command parser and registry for the duskmire
// terminal shell.
package shell

import (
	"fmt"
	"sort"
	"strings"
)

// ParseResult holds the parsed command name and target from a text line.
type ParseResult struct {
	// Command is the first word of the input, lowercased.
	Command string
	// Target is the remaining text after the command, e.g. a monster name.
	Target string
}

// Parse splits a text line into a command word and its target.
//
// Postcondition: Returns a ParseResult. If line is empty, Command is empty.
func Parse(line string) ParseResult {
	line = strings.TrimSpace(line)
	if line == "" {
		return ParseResult{}
	}

	spaceIdx := strings.IndexByte(line, ' ')
	if spaceIdx < 0 {
		return ParseResult{Command: strings.ToLower(line)}
	}
	return ParseResult{
		Command: strings.ToLower(line[:spaceIdx]),
		Target:  strings.TrimSpace(line[spaceIdx+1:]),
	}
}

// Command defines a player-invocable shell command.
type Command struct {
	// Name is the canonical command name, passed to the combat engine.
	Name string
	// Aliases are alternate names for this command.
	Aliases []string
	// Help is the short help text displayed to players.
	Help string
}

// BuiltinCommands returns the commands the combat shell understands.
func BuiltinCommands() []Command {
	return []Command{
		{Name: "attack", Aliases: []string{"a", "hit"}, Help: "Strike a target with your equipped weapon"},
		{Name: "flee", Aliases: []string{"run"}, Help: "Attempt to escape; every enemy gets a parting blow"},
		{Name: "pass", Aliases: []string{"wait"}, Help: "End your turn without acting"},
		{Name: "rage", Help: "Enter a rage (barbarian, bonus action)"},
		{Name: "reckless", Help: "Attack recklessly this turn (barbarian)"},
		{Name: "second_wind", Aliases: []string{"secondwind"}, Help: "Recover hit points (fighter, bonus action)"},
		{Name: "action_surge", Aliases: []string{"surge"}, Help: "Take an extra action (fighter)"},
		{Name: "flurry_of_blows", Aliases: []string{"flurry"}, Help: "Two unarmed strikes for 1 ki (monk, bonus action)"},
		{Name: "patient_defense", Aliases: []string{"dodge"}, Help: "Impose disadvantage on attackers for 1 ki (monk, bonus action)"},
		{Name: "sacred_weapon", Help: "Add charisma to attack rolls (paladin, action)"},
		{Name: "divine_smite", Aliases: []string{"smite"}, Help: "Spend a slot; the next hit deals +2d8 (paladin)"},
		{Name: "lay_on_hands", Aliases: []string{"heal"}, Help: "Restore 5 hit points (paladin, action)"},
		{Name: "help", Aliases: []string{"?"}, Help: "List commands"},
		{Name: "quit", Aliases: []string{"exit"}, Help: "Abandon the encounter"},
	}
}

// Registry maps command names and aliases to Command definitions.
type Registry struct {
	commands map[string]*Command // canonical name → command
	aliases  map[string]string   // alias → canonical name
}

// NewRegistry creates a Registry populated with the given commands.
//
// Precondition: No two commands may share a canonical name or alias.
// Postcondition: Returns a Registry or an error on name/alias collisions.
func NewRegistry(cmds []Command) (*Registry, error) {
	r := &Registry{
		commands: make(map[string]*Command, len(cmds)),
		aliases:  make(map[string]string),
	}

	for i := range cmds {
		cmd := &cmds[i]
		if _, exists := r.commands[cmd.Name]; exists {
			return nil, fmt.Errorf("duplicate command name: %q", cmd.Name)
		}
		if _, exists := r.aliases[cmd.Name]; exists {
			return nil, fmt.Errorf("command name %q conflicts with an existing alias", cmd.Name)
		}
		r.commands[cmd.Name] = cmd

		for _, alias := range cmd.Aliases {
			if _, exists := r.commands[alias]; exists {
				return nil, fmt.Errorf("alias %q conflicts with command name %q", alias, alias)
			}
			if existing, exists := r.aliases[alias]; exists {
				return nil, fmt.Errorf("duplicate alias %q: used by %q and %q", alias, existing, cmd.Name)
			}
			r.aliases[alias] = cmd.Name
		}
	}

	return r, nil
}

// DefaultRegistry creates a Registry with all built-in commands.
func DefaultRegistry() *Registry {
	r, err := NewRegistry(BuiltinCommands())
	if err != nil {
		panic(fmt.Sprintf("building default registry: %v", err))
	}
	return r
}

// Resolve looks up a command by name or alias.
//
// Postcondition: Returns (command, true) if found, or (nil, false).
func (r *Registry) Resolve(input string) (*Command, bool) {
	if cmd, ok := r.commands[input]; ok {
		return cmd, true
	}
	if canonical, ok := r.aliases[input]; ok {
		return r.commands[canonical], true
	}
	return nil, false
}

// Commands returns all registered commands sorted by name.
func (r *Registry) Commands() []*Command {
	result := make([]*Command, 0, len(r.commands))
	for _, cmd := range r.commands {
		result = append(result, cmd)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result
}
