package combat

import (
	"github.com/duskward/labyrinth/internal/game/character"
	"github.com/duskward/labyrinth/internal/game/dice"
	"github.com/duskward/labyrinth/internal/game/monster"
)

// RollInitiative rolls 5d4+DEX for the player and 5d4+monster.dex for the
// monster, returning true if the player acts first. Ties favor the player
// (spec §4.4).
func RollInitiative(c *character.Character, m *monster.Instance, src dice.Source) bool {
	playerRoll := dice.Sum("5d4", src) + c.Attribute(character.Dexterity)
	monsterRoll := dice.Sum("5d4", src) + m.Dexterity
	return playerRoll >= monsterRoll
}
