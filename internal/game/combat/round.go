package combat

import (
	"github.com/duskward/labyrinth/internal/game/character"
	"github.com/duskward/labyrinth/internal/game/dice"
	"github.com/duskward/labyrinth/internal/game/monster"
)

// ApplyPoisonTick applies the poison debuff's per-turn 1d4 damage if
// c.Debuffs.PoisonTurns > 0, then decrements the counter. Called once per
// round on the player's turn (spec §4.4, §4.7).
//
// Postcondition: Returns 0 and leaves PoisonTurns unchanged if no poison is
// active.
func ApplyPoisonTick(c *character.Character, src dice.Source) int {
	if c.Debuffs.PoisonTurns <= 0 {
		return 0
	}
	dmg := dice.Sum("1d4", src)
	c.HP -= dmg
	if c.HP < 0 {
		c.HP = 0
	}
	c.Debuffs.PoisonTurns--
	return dmg
}

// TickFreeze reports whether the monster's turn should be skipped this
// round because of an active freeze, decrementing the counter if so
// (spec §4.4).
func TickFreeze(m *monster.Instance) bool {
	if m.FreezeTurns <= 0 {
		return false
	}
	m.FreezeTurns--
	return true
}
