// Package main provides the duskmire binary: an interactive shell around
// the combat engine for playtesting encounters from the terminal.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/duskmire/duskmire/internal/config"
	"github.com/duskmire/duskmire/internal/game/character"
	"github.com/duskmire/duskmire/internal/game/combat"
	"github.com/duskmire/duskmire/internal/game/dice"
	"github.com/duskmire/duskmire/internal/game/item"
	"github.com/duskmire/duskmire/internal/game/monster"
	"github.com/duskmire/duskmire/internal/observability"
	"github.com/duskmire/duskmire/internal/shell"
)

func main() {
	configPath := flag.String("config", "configs/dev.yaml", "path to configuration file")
	heroName := flag.String("name", "Adventurer", "player character name")
	heroClass := flag.String("class", "fighter", "player class: fighter, rogue, barbarian, monk, paladin")
	heroLevel := flag.Int("level", 1, "player level")
	weaponID := flag.String("weapon", "", "equipped weapon ID; empty = unarmed")
	rollStats := flag.Bool("rollstats", false, "roll ability scores with 4d6kh3 instead of the stock array")
	enemyIDs := flag.String("enemies", "goblin", "comma-separated monster template IDs")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	weapons, err := item.LoadDirectory(cfg.Content.WeaponsDir)
	if err != nil {
		logger.Fatal("loading weapons", zap.Error(err))
	}
	templates, err := monster.LoadTemplates(cfg.Content.MonstersDir)
	if err != nil {
		logger.Fatal("loading monster templates", zap.Error(err))
	}
	logger.Info("content loaded",
		zap.Int("weapons", len(weapons.All())),
		zap.Int("monsters", len(templates)),
	)

	class, err := parseClass(*heroClass)
	if err != nil {
		logger.Fatal("parsing class", zap.Error(err))
	}
	src := dice.NewCryptoSource()
	hero := newHero(*heroName, class, *heroLevel, *rollStats, src)
	if *weaponID != "" {
		if _, ok := weapons.Weapon(*weaponID); !ok {
			logger.Fatal("unknown weapon", zap.String("weapon", *weaponID))
		}
		hero.WeaponID = *weaponID
	}

	var enemies []*monster.Instance
	for _, id := range strings.Split(*enemyIDs, ",") {
		id = strings.TrimSpace(id)
		tmpl, ok := templates[id]
		if !ok {
			logger.Fatal("unknown monster template", zap.String("template", id))
		}
		enemies = append(enemies, monster.NewInstance(tmpl))
	}

	engine := combat.NewEngine(logger, src, weapons, combat.Options{
		PlayerFleeDC:  cfg.Combat.PlayerFleeDC,
		CritThreshold: cfg.Combat.CritThreshold,
	})

	if err := run(engine, hero, enemies); err != nil {
		logger.Fatal("encounter failed", zap.Error(err))
	}
}

// run drives the encounter loop: engine turns until the player is up, then
// one line of input per player action.
func run(engine *combat.Engine, hero *character.Character, enemies []*monster.Instance) error {
	events, err := engine.StartCombat(hero, enemies)
	if err != nil {
		return err
	}
	render(events)

	commands := shell.DefaultRegistry()
	in := bufio.NewScanner(os.Stdin)
	for engine.InCombat() {
		if !engine.AwaitingPlayer() {
			events, err := engine.ExecuteTurn()
			if err != nil {
				return err
			}
			render(events)
			continue
		}

		fmt.Printf("\n%s (%d/%d HP) - type 'help' for commands\n> ",
			hero.Name, hero.CurrentHP, hero.MaxHP)
		if !in.Scan() {
			return engine.EndCombat()
		}
		parsed := shell.Parse(in.Text())
		if parsed.Command == "" {
			continue
		}
		cmd, ok := commands.Resolve(parsed.Command)
		if !ok {
			fmt.Printf("unknown command %q; type 'help'\n", parsed.Command)
			continue
		}
		switch cmd.Name {
		case "quit":
			return engine.EndCombat()
		case "help":
			for _, c := range commands.Commands() {
				fmt.Printf("  %-17s %s\n", c.Name, c.Help)
			}
			continue
		}

		events, err := engine.PlayerAction(cmd.Name, parsed.Target)
		if err != nil {
			fmt.Println(err)
			continue
		}
		render(events)
	}
	return nil
}

// render prints structured combat events as terminal lines. All text
// formatting lives here; the engine only produces values.
func render(events []combat.Event) {
	for _, ev := range events {
		switch ev.Type {
		case combat.EventCombatStarted:
			fmt.Println("Combat begins!")
		case combat.EventTurnStarted:
			fmt.Printf("-- %s's turn --\n", ev.Actor)
		case combat.EventAttackHit:
			line := fmt.Sprintf("%s hits %s for %d damage", ev.Actor, ev.Target, ev.Damage)
			if ev.Critical {
				line += " (critical!)"
			}
			if len(ev.Bonuses) > 0 {
				line += " [" + strings.Join(ev.Bonuses, ", ") + "]"
			}
			if ev.Roll != nil {
				line += fmt.Sprintf(" (rolled %d+%d vs AC %d)", ev.Roll.Natural, ev.Roll.Modifier, ev.Roll.Target)
			}
			fmt.Println(line)
		case combat.EventAttackMiss:
			if ev.Roll != nil {
				fmt.Printf("%s misses %s (rolled %d+%d vs AC %d)\n",
					ev.Actor, ev.Target, ev.Roll.Natural, ev.Roll.Modifier, ev.Roll.Target)
			} else {
				fmt.Printf("%s misses %s\n", ev.Actor, ev.Target)
			}
		case combat.EventCombatantDefeated:
			fmt.Printf("%s falls!\n", ev.Target)
		case combat.EventVictory:
			fmt.Printf("Victory! %s gains %d XP", ev.Actor, ev.XP)
			for _, d := range ev.Drops {
				fmt.Printf(", recovering the %s", d.Name)
			}
			fmt.Println()
		case combat.EventDefeat:
			fmt.Printf("%s has been defeated...\n", ev.Actor)
		case combat.EventFled:
			fmt.Printf("%s flees the battle!\n", ev.Actor)
		default:
			renderInfo(ev)
		}
	}
}

func renderInfo(ev combat.Event) {
	switch ev.Code {
	case "initiative":
		fmt.Printf("  %s rolls initiative: %d\n", ev.Actor, ev.Roll.Total)
	case "second_wind", "lay_on_hands":
		fmt.Printf("%s recovers %d HP\n", ev.Actor, ev.Healing)
	case "ongoing_effect":
		if ev.Damage > 0 {
			fmt.Printf("%s takes %d ongoing damage (%s)\n", ev.Actor, ev.Damage, ev.Target)
		}
		if ev.Healing > 0 {
			fmt.Printf("%s regains %d HP (%s)\n", ev.Actor, ev.Healing, ev.Target)
		}
	case "effect_expired":
		fmt.Printf("%s is no longer %s\n", ev.Actor, ev.Target)
	case "effect_saved":
		fmt.Printf("%s shakes off %s\n", ev.Actor, ev.Target)
	case "flee_failed":
		fmt.Printf("%s fails to escape\n", ev.Actor)
	case "opportunity_attack":
		fmt.Printf("%s lashes out as %s turns to run!\n", ev.Actor, ev.Target)
	case "disarmed":
		fmt.Printf("%s is disarmed!\n", ev.Target)
	case "restrained":
		fmt.Printf("%s is stuck fast!\n", ev.Target)
	case "incapacitated":
		fmt.Printf("%s cannot act\n", ev.Actor)
	default:
		fmt.Printf("%s: %s\n", ev.Actor, strings.ReplaceAll(ev.Code, "_", " "))
	}
}

func parseClass(name string) (character.Class, error) {
	switch strings.ToLower(name) {
	case "fighter":
		return character.Fighter, nil
	case "rogue":
		return character.Rogue, nil
	case "barbarian":
		return character.Barbarian, nil
	case "monk":
		return character.Monk, nil
	case "paladin":
		return character.Paladin, nil
	}
	return character.Fighter, fmt.Errorf("unknown class %q", name)
}

var statRoll = dice.MustParse("4d6kh3")

// rolledScores generates an ability array by rolling 4d6 keep highest 3
// for each score.
func rolledScores(src dice.Source) character.AbilityScores {
	roll := func() int { return dice.Roll(statRoll, src).Total() }
	return character.AbilityScores{
		Strength: roll(), Dexterity: roll(), Constitution: roll(),
		Intelligence: roll(), Wisdom: roll(), Charisma: roll(),
	}
}

// newHero builds a playable character with either a stock stat array for
// the chosen class or a freshly rolled one.
func newHero(name string, class character.Class, level int, rollStats bool, src dice.Source) *character.Character {
	abilities := character.AbilityScores{
		Strength: 14, Dexterity: 14, Constitution: 14,
		Intelligence: 10, Wisdom: 10, Charisma: 10,
	}
	armorClass := 14
	hitDie := 10
	switch class {
	case character.Fighter:
		abilities.Strength = 16
		armorClass = 16
	case character.Rogue:
		abilities.Dexterity = 16
		hitDie = 8
	case character.Barbarian:
		abilities.Strength = 16
		hitDie = 12
	case character.Monk:
		abilities.Dexterity = 16
		abilities.Wisdom = 14
		hitDie = 8
		armorClass = 15
	case character.Paladin:
		abilities.Strength = 16
		abilities.Charisma = 14
		armorClass = 18
	}
	if rollStats {
		abilities = rolledScores(src)
	}
	conMod := character.Modifier(abilities.Constitution)
	maxHP := hitDie + conMod + (level-1)*(hitDie/2+1+conMod)
	return character.New("hero", name, class, level, maxHP, armorClass, abilities)
}
