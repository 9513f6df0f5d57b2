package combat_test

import (
	"testing"

	"github.com/duskward/labyrinth/internal/game/character"
	"github.com/duskward/labyrinth/internal/game/combat"
	"github.com/duskward/labyrinth/internal/game/content"
	"github.com/duskward/labyrinth/internal/game/monster"
	"github.com/stretchr/testify/assert"
)

func TestExamine_SucceedsAboveThreshold(t *testing.T) {
	c := character.New("Ada", character.Normal, "device-1")
	c.Attributes[character.Wisdom] = 20
	m := monster.FromRow(content.Monster{Name: "Goblin", HP: 20, AC: 15, Dexterity: 10})
	src := &fixedSource{vals: []int{3, 3, 3, 3, 3}} // raw 20

	r := combat.Examine(c, m, src)
	assert.True(t, r.Succeeded)
	assert.Equal(t, 20, r.HP)
}

func TestExamine_FailsAtOrBelowThreshold(t *testing.T) {
	c := character.New("Ada", character.Normal, "device-1")
	c.Attributes[character.Wisdom] = 3
	m := monster.FromRow(content.Monster{Name: "Goblin", HP: 20})
	src := &fixedSource{vals: []int{0, 0, 0, 0, 0}} // raw 5

	r := combat.Examine(c, m, src)
	assert.False(t, r.Succeeded)
}

func TestDivineAid_HighRollDealsFourD6(t *testing.T) {
	c := character.New("Ada", character.Normal, "device-1")
	c.Attributes[character.Wisdom] = 20
	src := &fixedSource{vals: []int{3, 3, 3, 3, 3, 3, 3, 3, 3}} // 5d4 raw 20, then 4d6 all max

	r := combat.DivineAid(c, src)
	assert.True(t, r.Succeeded)
	assert.Equal(t, 16, r.Damage) // 4d6 all rolling 4 (capped die value)
}

func TestDivineAid_BelowThresholdFails(t *testing.T) {
	c := character.New("Ada", character.Normal, "device-1")
	c.Attributes[character.Wisdom] = 3
	src := &fixedSource{vals: []int{0, 0, 0, 0, 0}}

	r := combat.DivineAid(c, src)
	assert.False(t, r.Succeeded)
}

func TestCharm_DragonAlwaysImmune(t *testing.T) {
	c := character.New("Ada", character.Normal, "device-1")
	c.Attributes[character.Charisma] = 30
	m := monster.NewDragon()
	src := &fixedSource{vals: []int{3, 3, 3, 3, 3}}

	assert.False(t, combat.Charm(c, m, src))
}

func TestFlee_SucceedsAboveThreshold(t *testing.T) {
	c := character.New("Ada", character.Normal, "device-1")
	c.Attributes[character.Dexterity] = 30
	m := monster.FromRow(content.Monster{Name: "Goblin", Dexterity: 3})
	src := &fixedSource{vals: []int{3, 3, 3, 3, 3}}

	assert.True(t, combat.Flee(c, m, src))
}
