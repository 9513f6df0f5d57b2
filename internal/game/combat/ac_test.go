package combat_test

import (
	"testing"

	"github.com/duskward/labyrinth/internal/game/character"
	"github.com/duskward/labyrinth/internal/game/combat"
	"github.com/duskward/labyrinth/internal/game/item"
	"github.com/stretchr/testify/assert"
)

func TestComputeAC_Unarmored(t *testing.T) {
	c := character.New("Ada", character.Normal, "device-1")
	c.Attributes[character.Constitution] = 16

	assert.Equal(t, 10+8+5, combat.ComputeAC(c))
}

func TestComputeAC_WithArmor(t *testing.T) {
	c := character.New("Ada", character.Normal, "device-1")
	c.Attributes[character.Constitution] = 16
	c.Armors = append(c.Armors, item.Armor{Name: "Plate", ArmorClass: 10})
	c.EquippedArmor = 0

	assert.Equal(t, 10+8+10, combat.ComputeAC(c))
}

func TestComputeAC_DamagedArmorHalved(t *testing.T) {
	c := character.New("Ada", character.Normal, "device-1")
	c.Attributes[character.Constitution] = 16
	c.Armors = append(c.Armors, item.Armor{Name: "Plate", ArmorClass: 10, Damaged: true})
	c.EquippedArmor = 0

	assert.Equal(t, 10+8+5, combat.ComputeAC(c))
}

func TestComputeAC_BuffsAndDebuffs(t *testing.T) {
	c := character.New("Ada", character.Normal, "device-1")
	c.Attributes[character.Constitution] = 16
	c.Buffs.ACBonus = 3
	c.Debuffs.ACPenalty = 20

	assert.Equal(t, 0, combat.ComputeAC(c)) // floored at 0
}
