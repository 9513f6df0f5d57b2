package engine

import (
	"context"
	"strings"

	"github.com/duskward/labyrinth/internal/game/character"
	"github.com/duskward/labyrinth/internal/game/combat"
	"github.com/duskward/labyrinth/internal/game/content"
	"github.com/duskward/labyrinth/internal/game/dice"
	"github.com/duskward/labyrinth/internal/game/labyrinth"
	"github.com/duskward/labyrinth/internal/game/trap"
)

func labyrinthMenuEvent(c *character.Character) Event {
	options := []MenuOption{opt("dng:deeper", "Go deeper")}
	if !c.Utility.DivineUsed {
		options = append(options, opt("dng:divine", "Seek a vision of what lies ahead"))
	}
	if !c.Utility.ListenUsed {
		options = append(options, opt("dng:listen", "Listen at the passage"))
	}
	options = append(options, opt("dng:use_potion", "Use a potion"), opt("dng:back", "Return to town"))
	return menu(options...)
}

func handleLabyrinth(ctx context.Context, s *State, a Action) []Event {
	c := s.Character

	if a.ID == "labyrinth:continue" && s.Continuation != nil {
		cont := s.Continuation
		s.Continuation = nil
		return cont(s)
	}

	switch {
	case a.ID == "dng:back":
		s.Phase = PhaseTown
		c.Utility.ResetTownVisit()
		return []Event{clear(), sceneReset(), updateStats(s.statsSnapshot()), dialogue("You climb back to the surface."), townMenuEvent(c)}

	case a.ID == "dng:deeper":
		return enterNextRoom(s)

	case a.ID == "dng:divine":
		return handleDungeonDivine(s)

	case a.ID == "dng:listen":
		return handleListen(s)

	case a.ID == "dng:open_chest":
		return handleOpenChest(s)

	case a.ID == "dng:examine_items":
		return handleExamineItems(s)

	case a.ID == "dng:use_potion", strings.HasPrefix(a.ID, "dng:use_potion:"):
		return handleDungeonUsePotion(s, a)

	default:
		return []Event{labyrinthMenuEvent(c)}
	}
}

func enterNextRoom(s *State) []Event {
	c := s.Character
	s.Depth++
	c.Utility.ResetDepthScoped()

	room := labyrinth.Generate(s.Depth, s.EncounterCount, s.Tables, s.Dice)
	s.Room = room

	events := []Event{
		clear(),
		scene(room.Background, s.Tables.Dialogues.Get("labyrinth", "room_entry", 0, nil)),
	}

	if room.Trap != nil {
		events = append(events, resolveTrap(s, *room.Trap)...)
		if !c.IsAlive() {
			return append(events, startRevivalRoll(s)...)
		}
	}

	return append(events, startCombat(s, room.Monster)...)
}

func resolveTrap(s *State, t content.Trap) []Event {
	c := s.Character
	out := trap.Resolve(c, t, s.Dice)
	if out.Dodged {
		return []Event{dialogue(s.Tables.Dialogues.Get("traps", "avoid_trap", 0, nil))}
	}

	events := []Event{dialogue(s.Tables.Dialogues.Get("labyrinth", "trap_alert", 0, map[string]string{"name": t.Name}))}
	events = append(events, dialogue(s.Tables.Dialogues.Get("traps", "trap_damage", 0, map[string]string{
		"dmg": itoa(out.Damage), "hp": itoa(c.HP),
	})))
	if out.GoldLost > 0 {
		events = append(events, dialogue(s.Tables.Dialogues.Get("traps", "gold_dust", 0, map[string]string{"amount": itoa(out.GoldLost)})))
	}
	if out.PoisonApplied {
		events = append(events, dialogue(s.Tables.Dialogues.Get("traps", "poisoned", 0, nil)))
	}
	if out.DexLost > 0 {
		events = append(events, dialogue(s.Tables.Dialogues.Get("traps", "dex_down", 0, nil)))
	}
	return events
}

// handleDungeonDivine is the non-combat "vision of what lies ahead": a
// Wisdom-gated hint about the next room rather than damage, since no
// monster target exists outside combat. Shares the combat divine action's
// once-per-depth gate (spec §3 Open Questions).
func handleDungeonDivine(s *State) []Event {
	c := s.Character
	if c.Utility.DivineUsed {
		return []Event{dialogue("Your vision has already shown you all it will this depth."), labyrinthMenuEvent(c)}
	}
	c.Utility.DivineUsed = true
	total := dice.Sum("5d4", s.Dice) + (c.Attribute(character.Wisdom) - 10)
	if total < 12 {
		return []Event{dialogue("The vision is clouded; you see nothing useful."), labyrinthMenuEvent(c)}
	}
	row, ok := s.Tables.Monsters.WeightedRandom(s.Dice, func(m content.Monster) float64 { return m.WanderChance })
	if !ok {
		return []Event{dialogue("The vision is clouded; you see nothing useful."), labyrinthMenuEvent(c)}
	}
	return []Event{dialogue("You glimpse what waits below: a " + row.Name + "."), labyrinthMenuEvent(c)}
}

func handleListen(s *State) []Event {
	c := s.Character
	if c.Utility.ListenUsed {
		return []Event{dialogue("You have already listened closely enough this depth."), labyrinthMenuEvent(c)}
	}
	c.Utility.ListenUsed = true
	total := dice.Sum("5d4", s.Dice) + c.Attribute(character.Perception)
	if total <= 25 {
		return []Event{dialogue("You hear only the drip of water and your own heartbeat."), labyrinthMenuEvent(c)}
	}
	return []Event{dialogue("Faint sounds carry up from below: something moves beyond the next chamber."), labyrinthMenuEvent(c)}
}

func handleOpenChest(s *State) []Event {
	c := s.Character
	if s.Room == nil || s.Room.Chest == nil {
		return []Event{dialogue("There is no chest here."), labyrinthMenuEvent(c)}
	}
	chest := s.Room.Chest
	c.Gold += chest.Gold
	s.Stats.GoldEarned += chest.Gold
	events := []Event{dialogue(s.Tables.Dialogues.Get("labyrinth", "chest", 0, nil)), dialogue("You find " + itoa(chest.Gold) + " gold.")}
	if chest.Ring != nil {
		bindRing(c, rollRingInstance(*chest.Ring, s.Dice))
		events = append(events, dialogue("A ring glints among the coins: "+chest.Ring.Name+"."))
	}
	s.Room.Chest = nil
	return append(events, labyrinthMenuEvent(c))
}

func handleExamineItems(s *State) []Event {
	c := s.Character
	if s.Room == nil {
		return []Event{dialogue("There is nothing here to examine."), labyrinthMenuEvent(c)}
	}
	var b strings.Builder
	b.WriteString("The chamber holds: ")
	if s.Room.Chest != nil {
		b.WriteString("a chest; ")
	}
	if s.Room.Monster != nil && !s.Room.Monster.IsDead() {
		b.WriteString("a " + s.Room.Monster.Name + " still stirs nearby; ")
	}
	return []Event{dialogue(b.String()), labyrinthMenuEvent(c)}
}

func handleDungeonUsePotion(s *State, a Action) []Event {
	c := s.Character
	name := trimPrefix(a.ID, "dng:use_potion:")
	if name == "dng:use_potion" || name == "" {
		options := potionOptions(c, "dng:use_potion")
		if len(options) == 0 {
			return []Event{dialogue(s.Tables.Dialogues.Get("combat", "no_potions", 0, nil)), labyrinthMenuEvent(c)}
		}
		return []Event{dialogue("Use which potion?"), menu(options...)}
	}
	row, ok := s.Tables.Potions.ByName(name)
	if !ok || c.PotionUses[name] <= 0 {
		return []Event{dialogue("You have none of that potion."), labyrinthMenuEvent(c)}
	}
	c.PotionUses[name]--
	s.Stats.PotionsUsed++
	combat.UsePotion(c, row.Kind, s.Dice)
	return []Event{dialogue("You drink the " + row.Name + "."), updateStats(s.statsSnapshot()), labyrinthMenuEvent(c)}
}

func potionOptions(c *character.Character, prefix string) []MenuOption {
	var options []MenuOption
	for name, n := range c.PotionUses {
		if n > 0 {
			options = append(options, opt(prefix+":"+name, name+" ("+itoa(n)+")"))
		}
	}
	return options
}
