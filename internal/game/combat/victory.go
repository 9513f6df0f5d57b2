package combat

import (
	"math"

	"github.com/duskward/labyrinth/internal/game/content"
	"github.com/duskward/labyrinth/internal/game/dice"
	"github.com/duskward/labyrinth/internal/game/monster"
)

// DepthMultiplier returns the reward scaling factor for the given depth:
// 1.0 + 0.5*(depth-1) (spec §4.4, Glossary). Every depth-scaled reward
// computation in the engine goes through this helper.
func DepthMultiplier(depth int) float64 {
	return 1.0 + 0.5*float64(depth-1)
}

// VictoryXP returns floor(m.XP * DepthMultiplier(depth)).
func VictoryXP(m *monster.Instance, depth int) int {
	return int(math.Floor(float64(m.XP) * DepthMultiplier(depth)))
}

// VictoryGold rolls a uniform value in [GoldLow, GoldHigh] and scales it by
// depth, returning floor(roll * DepthMultiplier(depth)).
func VictoryGold(m *monster.Instance, depth int, src dice.Source) int {
	span := m.GoldHigh - m.GoldLow
	base := m.GoldLow
	if span > 0 {
		base += src.Intn(span + 1)
	}
	return int(math.Floor(float64(base) * DepthMultiplier(depth)))
}

// DropKind identifies what, if anything, a victory drop roll produced.
type DropKind int

const (
	DropNone DropKind = iota
	DropPotion
	DropScroll
	DropRing
	DropArmor
	DropWeapon
)

// DropResult is the outcome of one victory's drop rolls. Potion and scroll
// drops are independent of the magic-gear roll; at most one magic-gear kind
// is ever produced per victory (spec §4.4).
type DropResult struct {
	Potion    bool
	Scroll    bool
	MagicGear DropKind
	Ring      content.Ring
	Armor     content.Armor
	Weapon    content.Weapon
}

// dropChance returns min(0.20, 0.05+0.01*difficulty), the shared formula for
// potion and scroll drop probability (spec §4.4).
func dropChance(difficulty int) float64 {
	c := 0.05 + 0.01*float64(difficulty)
	if c > 0.20 {
		return 0.20
	}
	return c
}

// rollChance draws a uniform [0,1) float from a 1-10000 scaled integer roll
// and compares it against chance.
func rollChance(chance float64, src dice.Source) bool {
	return src.Intn(10000) < int(chance*10000)
}

// RollDrops resolves a victory's potion/scroll/magic-gear drop rolls
// against tables for the armor/weapon sub-pick (spec §4.4).
func RollDrops(m *monster.Instance, tables *content.Tables, src dice.Source) DropResult {
	chance := dropChance(m.Difficulty)
	result := DropResult{
		Potion: rollChance(chance, src),
		Scroll: rollChance(chance, src),
	}

	if !rollChance(0.25, src) {
		return result
	}

	roll := src.Intn(100)
	switch {
	case roll < 40:
		if ring, ok := tables.Rings.WeightedRandom(src, func(r content.Ring) float64 { return r.Chance }); ok {
			result.MagicGear = DropRing
			result.Ring = ring
		}
	case roll < 70:
		armors := tables.Armors.Filter(func(a content.Armor) bool { return a.LabyrinthDrop })
		if len(armors) > 0 {
			sub, _ := content.NewTable(armors)
			if armor, ok := sub.WeightedRandom(src, func(a content.Armor) float64 { return a.Chance }); ok {
				result.MagicGear = DropArmor
				result.Armor = armor
			}
		}
	default:
		weapons := tables.Weapons.Filter(func(w content.Weapon) bool { return w.LabyrinthDrop })
		if len(weapons) > 0 {
			sub, _ := content.NewTable(weapons)
			if weapon, ok := sub.WeightedRandom(src, func(w content.Weapon) float64 { return w.Chance }); ok {
				result.MagicGear = DropWeapon
				result.Weapon = weapon
			}
		}
	}
	return result
}
