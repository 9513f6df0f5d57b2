package labyrinth

import (
	"github.com/duskward/labyrinth/internal/game/content"
	"github.com/duskward/labyrinth/internal/game/dice"
	"github.com/duskward/labyrinth/internal/game/monster"
)

const (
	chestChance = 0.25
	ringChance  = 0.50
	trapChance  = 0.20

	chestGoldLow  = 10
	chestGoldHigh = 100

	// dragonEncounterNumber is the 1-indexed encounter at which a Dragon is
	// forced regardless of depth (spec §4.5, Glossary).
	dragonEncounterNumber = 50
)

// DragonForced reports whether the given depth or encounter count forces a
// Dragon room, independent of any roll (spec §4.5).
//
// encounterCount is the number of monsters already engaged this save; the
// room about to be generated would be encounter number encounterCount+1.
func DragonForced(depth, encounterCount int) bool {
	return depth == 5 || encounterCount+1 == dragonEncounterNumber
}

// rollChance draws a uniform roll scaled to 1/10000 precision and compares
// it against chance, matching the precision combat.RollDrops uses so both
// packages' drop math agrees bit-for-bit given the same source stream.
func rollChance(chance float64, src dice.Source) bool {
	return src.Intn(10000) < int(chance*10000)
}

// Generate produces the Room for one "go deeper" action (spec §4.5).
//
// Precondition: tables.Monsters, tables.Traps and tables.Rings are non-nil
// and tables.Monsters has at least one weighted-eligible row unless depth
// or encounterCount forces a Dragon.
func Generate(depth, encounterCount int, tables *content.Tables, src dice.Source) *Room {
	var m *monster.Instance
	if DragonForced(depth, encounterCount) {
		m = monster.NewDragon()
	} else {
		row, ok := tables.Monsters.WeightedRandom(src, func(row content.Monster) float64 { return row.WanderChance })
		if !ok {
			row = content.Dragon
		}
		m = monster.FromRow(row)
	}

	room := &Room{Monster: m, Background: descriptorFor(m.Name)}

	if !m.IsDragon && rollChance(chestChance, src) {
		chest := &Chest{Gold: chestGoldLow + src.Intn(chestGoldHigh-chestGoldLow+1)}
		if rollChance(ringChance, src) {
			if ring, ok := tables.Rings.WeightedRandom(src, func(r content.Ring) float64 { return r.Chance }); ok {
				chest.Ring = &ring
			}
		}
		room.Chest = chest
	}

	if rollChance(trapChance, src) {
		if trap, ok := tables.Traps.WeightedRandom(src, func(content.Trap) float64 { return 1 }); ok {
			room.Trap = &trap
		}
	}

	return room
}
