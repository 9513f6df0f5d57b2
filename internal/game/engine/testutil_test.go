package engine

import (
	"testing"

	"go.uber.org/zap"

	"github.com/duskward/labyrinth/internal/game/content"
	"github.com/duskward/labyrinth/internal/game/dice"
	"github.com/duskward/labyrinth/internal/storage/memory"
)

// newTestTables builds a minimal, in-memory content.Tables sufficient to
// exercise every phase handler without touching the filesystem.
func newTestTables(t *testing.T) *content.Tables {
	t.Helper()

	monsters, err := content.NewTable([]content.Monster{
		{Name: "Giant Rat", HP: 8, AC: 11, Strength: 6, Dexterity: 8, DamageDie: "1d4", XP: 10, GoldLow: 1, GoldHigh: 5, WanderChance: 0.8, Difficulty: 1},
		{Name: "Cave Bear", HP: 40, AC: 15, Strength: 16, Dexterity: 10, DamageDie: "2d6", XP: 60, GoldLow: 10, GoldHigh: 30, WanderChance: 0.2, Difficulty: 4},
	})
	if err != nil {
		t.Fatalf("monsters: %v", err)
	}

	weapons, err := content.NewTable([]content.Weapon{
		{Name: "Iron Sword", DamageDie: "1d8", BasePrice: 50, Chance: 0.5},
		{Name: "Rusty Dagger", DamageDie: "1d4", BasePrice: 10, Chance: 0.5},
	})
	if err != nil {
		t.Fatalf("weapons: %v", err)
	}

	armors, err := content.NewTable([]content.Armor{
		{Name: "Leather Vest", ArmorClass: 4, BasePrice: 40, Chance: 0.5},
	})
	if err != nil {
		t.Fatalf("armors: %v", err)
	}

	potions, err := content.NewTable([]content.Potion{
		{Name: "Healing Draught", Kind: content.PotionHealing, BasePrice: 20},
		{Name: "Antidote Vial", Kind: content.PotionAntidote, BasePrice: 15},
	})
	if err != nil {
		t.Fatalf("potions: %v", err)
	}

	spells, err := content.NewTable([]content.Spell{
		{Name: "Magic Missile", Kind: content.SpellMagicMissile, BasePrice: 30},
		{Name: "Lightning Bolt", Kind: content.SpellLightningBolt, BasePrice: 60},
	})
	if err != nil {
		t.Fatalf("spells: %v", err)
	}

	traps, err := content.NewTable([]content.Trap{
		{Name: "Dart Trap", DC: 12, DamageDie: "1d6", Effects: []content.TrapEffect{
			{Kind: content.TrapEffectGoldDust, Amount: 5},
		}},
	})
	if err != nil {
		t.Fatalf("traps: %v", err)
	}

	rings, err := content.NewTable([]content.Ring{
		{Name: "Ring of Vigor", Attribute: "Constitution", BonusDie: "1d3", Chance: 1},
	})
	if err != nil {
		t.Fatalf("rings: %v", err)
	}

	dialogues := content.NewDialogueTable(nil, zap.NewNop())

	return &content.Tables{
		Monsters:  monsters,
		Weapons:   weapons,
		Armors:    armors,
		Potions:   potions,
		Spells:    spells,
		Traps:     traps,
		Rings:     rings,
		Dialogues: dialogues,
	}
}

func newTestState(t *testing.T, seed int64) *State {
	t.Helper()
	stores := Stores{
		Save:        memory.NewSaveStore(),
		Leaderboard: memory.NewLeaderboardStore(),
		Review:      memory.NewReviewSubmitter(),
	}
	return NewState("device-1", newTestTables(t), dice.NewSeededSource(seed), stores, zap.NewNop())
}

// lastEventText returns the Text of the last dialogue/combat_update event in
// events, or "" if none exists.
func lastEventText(events []Event) string {
	for i := len(events) - 1; i >= 0; i-- {
		if events[i].Kind == EventDialogue || events[i].Kind == EventCombatUpdate {
			return events[i].Text
		}
	}
	return ""
}

func hasEventKind(events []Event, kind EventKind) bool {
	for _, e := range events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}
