package combat_test

import (
	"testing"

	"github.com/duskward/labyrinth/internal/game/character"
	"github.com/duskward/labyrinth/internal/game/combat"
	"github.com/duskward/labyrinth/internal/game/item"
	"github.com/stretchr/testify/assert"
)

func TestMaybeDamageWeapon_NoEquippedWeaponNoOp(t *testing.T) {
	c := character.New("Ada", character.Normal, "device-1")
	src := &fixedSource{vals: []int{0}}
	combat.MaybeDamageWeapon(c, src) // must not panic
}

func TestMaybeDamageWeapon_LowRollDamages(t *testing.T) {
	c := character.New("Ada", character.Normal, "device-1")
	c.Weapons = append(c.Weapons, item.Weapon{Name: "Sword"})
	c.EquippedWeapon = 0
	src := &fixedSource{vals: []int{0}} // Intn(100) == 0, within 5% chance

	combat.MaybeDamageWeapon(c, src)
	assert.True(t, c.Weapons[0].Damaged)
}

func TestMaybeDamageArmor_HighRollDoesNotDamage(t *testing.T) {
	c := character.New("Ada", character.Normal, "device-1")
	c.Armors = append(c.Armors, item.Armor{Name: "Plate"})
	c.EquippedArmor = 0
	src := &fixedSource{vals: []int{99}} // Intn(100) == 99, well above 5% chance

	combat.MaybeDamageArmor(c, src)
	assert.False(t, c.Armors[0].Damaged)
}
