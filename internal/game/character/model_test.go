package character_test

import (
	"testing"

	"github.com/duskward/labyrinth/internal/game/character"
	"github.com/duskward/labyrinth/internal/game/item"
	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestNew_AllAttributesAtFloor(t *testing.T) {
	c := character.New("Ada", character.Normal, "device-1")
	for _, a := range character.Attributes {
		assert.Equal(t, 3, c.Attribute(a))
	}
	assert.Equal(t, -1, c.EquippedWeapon)
	assert.Equal(t, -1, c.EquippedArmor)
}

func TestClampAttributeFloor(t *testing.T) {
	c := character.New("Ada", character.Normal, "device-1")
	c.Attributes[character.Dexterity] = 1
	c.ClampAttributeFloor(character.Dexterity)
	assert.Equal(t, 3, c.Attribute(character.Dexterity))
}

func TestEquippedWeaponItem_Unarmed(t *testing.T) {
	c := character.New("Ada", character.Normal, "device-1")
	_, ok := c.EquippedWeaponItem()
	assert.False(t, ok)
}

func TestEquippedWeaponItem_Equipped(t *testing.T) {
	c := character.New("Ada", character.Normal, "device-1")
	c.Weapons = append(c.Weapons, item.Weapon{Name: "Dagger", DamageDie: "1d4"})
	c.EquippedWeapon = 0

	w, ok := c.EquippedWeaponItem()
	assert.True(t, ok)
	assert.Equal(t, "Dagger", w.Name)
}

func TestIsAlive(t *testing.T) {
	c := character.New("Ada", character.Normal, "device-1")
	c.HP = 0
	assert.False(t, c.IsAlive())
	c.HP = 1
	assert.True(t, c.IsAlive())
}

func TestQuest_Done(t *testing.T) {
	q := character.Quest{Goal: 1, Progress: 0}
	assert.False(t, q.Done())
	q.Progress = 1
	assert.True(t, q.Done())
}

func TestUtilityFlags_ResetTownVisit(t *testing.T) {
	var u character.UtilityFlags
	u.AteThisVisit = true
	u.TavernThisVisit = true
	u.PrayedThisVisit = true
	u.SleptThisVisit = true
	u.DivineUsed = true

	u.ResetTownVisit()

	assert.False(t, u.AteThisVisit)
	assert.False(t, u.TavernThisVisit)
	assert.False(t, u.PrayedThisVisit)
	assert.False(t, u.SleptThisVisit)
	assert.True(t, u.DivineUsed) // depth-scoped, unaffected by town reset
}

func TestUtilityFlags_ResetDepthScoped(t *testing.T) {
	var u character.UtilityFlags
	u.DivineUsed = true
	u.ListenUsed = true
	u.AteThisVisit = true

	u.ResetDepthScoped()

	assert.False(t, u.DivineUsed)
	assert.False(t, u.ListenUsed)
	assert.True(t, u.AteThisVisit) // town-scoped, unaffected by depth reset
}

// Property: ClampAttributeFloor never produces a value below 3.
func TestClampAttributeFloor_Property(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		v := rapid.IntRange(-10, 10).Draw(rt, "v")
		c := character.New("Ada", character.Normal, "device-1")
		c.Attributes[character.Strength] = v
		c.ClampAttributeFloor(character.Strength)
		if c.Attribute(character.Strength) < 3 {
			rt.Fatalf("attribute %d below floor", c.Attribute(character.Strength))
		}
	})
}
