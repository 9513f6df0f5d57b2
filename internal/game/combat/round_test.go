package combat_test

import (
	"testing"

	"github.com/duskward/labyrinth/internal/game/character"
	"github.com/duskward/labyrinth/internal/game/combat"
	"github.com/duskward/labyrinth/internal/game/content"
	"github.com/duskward/labyrinth/internal/game/monster"
	"github.com/stretchr/testify/assert"
)

func TestApplyPoisonTick_DamagesAndDecrements(t *testing.T) {
	c := character.New("Ada", character.Normal, "device-1")
	c.HP, c.MaxHP = 20, 20
	c.Debuffs.PoisonTurns = 2
	src := &fixedSource{vals: []int{1}}

	dmg := combat.ApplyPoisonTick(c, src)
	assert.Greater(t, dmg, 0)
	assert.Equal(t, 1, c.Debuffs.PoisonTurns)
	assert.Equal(t, 20-dmg, c.HP)
}

func TestApplyPoisonTick_NoOpWhenInactive(t *testing.T) {
	c := character.New("Ada", character.Normal, "device-1")
	src := &fixedSource{vals: []int{1}}

	dmg := combat.ApplyPoisonTick(c, src)
	assert.Equal(t, 0, dmg)
}

func TestTickFreeze_SkipsAndDecrements(t *testing.T) {
	m := monster.FromRow(content.Monster{Name: "Goblin"})
	m.FreezeTurns = 1

	assert.True(t, combat.TickFreeze(m))
	assert.Equal(t, 0, m.FreezeTurns)
	assert.False(t, combat.TickFreeze(m))
}
