package combat_test

import (
	"testing"

	"github.com/duskward/labyrinth/internal/game/character"
	"github.com/duskward/labyrinth/internal/game/combat"
	"github.com/duskward/labyrinth/internal/game/content"
	"github.com/stretchr/testify/assert"
)

func TestUsePotion_HealingRestoresHPAndCapsAtMax(t *testing.T) {
	c := character.New("Ada", character.Normal, "device-1")
	c.Attributes[character.Constitution] = 10
	c.HP, c.MaxHP = 5, 10
	src := &fixedSource{vals: []int{1}}

	r := combat.UsePotion(c, content.PotionHealing, src)
	assert.True(t, r.ConsumesTurn)
	assert.Equal(t, 10, c.HP)
}

func TestUsePotion_StrengthAddsDamageBonus(t *testing.T) {
	c := character.New("Ada", character.Normal, "device-1")
	src := &fixedSource{vals: []int{0}}

	combat.UsePotion(c, content.PotionStrength, src)
	assert.Equal(t, 2, c.Buffs.DamageBonus)
}

func TestUsePotion_AntidoteClearsPoisonWithoutConsumingTurn(t *testing.T) {
	c := character.New("Ada", character.Normal, "device-1")
	c.Debuffs.PoisonTurns = 3
	src := &fixedSource{vals: []int{0}}

	r := combat.UsePotion(c, content.PotionAntidote, src)
	assert.False(t, r.ConsumesTurn)
	assert.Equal(t, 0, c.Debuffs.PoisonTurns)
}

func TestUsePotion_InvisibilitySetsOneShotBuff(t *testing.T) {
	c := character.New("Ada", character.Normal, "device-1")
	src := &fixedSource{vals: []int{0}}

	combat.UsePotion(c, content.PotionInvisibility, src)
	assert.True(t, c.Buffs.InvisibilityOneShot)
}
