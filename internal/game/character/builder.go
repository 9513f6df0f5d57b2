package character

import (
	"fmt"
	"math"

	"github.com/duskward/labyrinth/internal/game/dice"
)

// RollAttribute rolls one attribute value for the given difficulty's
// creation die (spec §4.8). The caller serializes the roll-then-assign
// sequence: each rolled value must be assigned to an unfilled attribute
// before the next is rolled.
func RollAttribute(difficulty Difficulty, src dice.Source) int {
	return dice.Sum(difficulty.CreationDie(), src)
}

// goldTierBonus returns the gold bonus die roll for a character's starting
// HP band (spec §4.8): the highest matching band wins.
func goldTierBonus(hp int, src dice.Source) int {
	switch {
	case hp < 25:
		return dice.Sum("15d6", src)
	case hp < 30:
		return dice.Sum("10d6", src)
	case hp < 40:
		return dice.Sum("7d6", src)
	case hp < 50:
		return dice.Sum("5d6", src)
	case hp < 60:
		return dice.Sum("3d6", src)
	default:
		return 0
	}
}

// Finalize computes starting HP and gold once all seven attributes have
// been assigned (spec §4.8): HP = 3*CON + roll(5d4); gold =
// roll(20d6) + roll(ceil(CHA/1.5)d6) + a tier bonus keyed off the rolled HP.
//
// Precondition: c.Attributes holds a value for every Attribute in
// Attributes, and c.Gold/c.HP/c.MaxHP are still at their zero values.
func Finalize(c *Character, src dice.Source) {
	hp := 3*c.Attribute(Constitution) + dice.Sum("5d4", src)
	c.MaxHP = hp
	c.HP = hp

	chaDie := int(math.Ceil(float64(c.Attribute(Charisma)) / 1.5))
	gold := dice.Sum("20d6", src) + dice.Sum(fmt.Sprintf("%dd6", chaDie), src)
	gold += goldTierBonus(hp, src)
	c.Gold = gold
}
