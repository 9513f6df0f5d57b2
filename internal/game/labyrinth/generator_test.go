package labyrinth_test

import (
	"testing"

	"github.com/duskward/labyrinth/internal/game/content"
	"github.com/duskward/labyrinth/internal/game/dice"
	"github.com/duskward/labyrinth/internal/game/labyrinth"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"pgregory.net/rapid"
)

func testTables(t *testing.T) *content.Tables {
	t.Helper()
	monsters, err := content.NewTable([]content.Monster{
		{Name: "Goblin", HP: 20, AC: 12, WanderChance: 0.5},
		{Name: "Rat", HP: 5, AC: 8, WanderChance: 0.5},
	})
	assert.NoError(t, err)
	traps, err := content.NewTable([]content.Trap{{Name: "Pit", DC: 15, DamageDie: "1d6"}})
	assert.NoError(t, err)
	rings, err := content.NewTable([]content.Ring{{Name: "Ring of Vigor", Chance: 1}})
	assert.NoError(t, err)
	weapons, _ := content.NewTable([]content.Weapon{})
	armors, _ := content.NewTable([]content.Armor{})
	potions, _ := content.NewTable([]content.Potion{})
	spells, _ := content.NewTable([]content.Spell{})
	dialogues := content.NewDialogueTable(nil, zap.NewNop())
	return &content.Tables{
		Monsters: monsters, Traps: traps, Rings: rings,
		Weapons: weapons, Armors: armors, Potions: potions, Spells: spells, Dialogues: dialogues,
	}
}

func TestDragonForced_Depth5(t *testing.T) {
	assert.True(t, labyrinth.DragonForced(5, 0))
	assert.False(t, labyrinth.DragonForced(4, 0))
}

func TestDragonForced_FiftiethEncounter(t *testing.T) {
	assert.True(t, labyrinth.DragonForced(3, 49))
	assert.False(t, labyrinth.DragonForced(3, 48))
}

func TestGenerate_ForcedDragonAtDepth5(t *testing.T) {
	tables := testTables(t)
	src := dice.NewSeededSource(1)

	room := labyrinth.Generate(5, 0, tables, src)
	assert.True(t, room.Monster.IsDragon)
	assert.Nil(t, room.Chest)
	assert.Equal(t, "dragon_lair", room.Background)
}

func TestGenerate_NonDragonRoomHasBackground(t *testing.T) {
	tables := testTables(t)
	src := dice.NewSeededSource(7)

	room := labyrinth.Generate(1, 0, tables, src)
	assert.False(t, room.Monster.IsDragon)
	assert.NotEmpty(t, room.Background)
}

// Property: Generate always returns a non-nil Monster, and a Dragon room
// never carries a chest (traps are independent of the Dragon branch and
// may attach to any room, spec §4.5 step 5).
func TestGenerate_Property(t *testing.T) {
	tables := testTables(t)
	rapid.Check(t, func(rt *rapid.T) {
		depth := rapid.IntRange(1, 10).Draw(rt, "depth")
		encounters := rapid.IntRange(0, 60).Draw(rt, "encounters")
		seed := rapid.Int64().Draw(rt, "seed")

		room := labyrinth.Generate(depth, encounters, tables, dice.NewSeededSource(seed))
		if room.Monster == nil {
			rt.Fatal("Generate returned a nil monster")
		}
		if room.Monster.IsDragon && room.Chest != nil {
			rt.Fatal("dragon room carried a chest")
		}
	})
}
