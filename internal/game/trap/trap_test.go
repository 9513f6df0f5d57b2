package trap_test

import (
	"testing"

	"github.com/duskward/labyrinth/internal/game/character"
	"github.com/duskward/labyrinth/internal/game/content"
	"github.com/duskward/labyrinth/internal/game/dice"
	"github.com/duskward/labyrinth/internal/game/trap"
	"github.com/stretchr/testify/assert"
)

type fixedSource struct {
	vals []int
	i    int
}

func (f *fixedSource) Intn(n int) int {
	v := f.vals[f.i%len(f.vals)]
	f.i++
	if v >= n {
		v = n - 1
	}
	return v
}

func TestResolve_SuccessfulDodge(t *testing.T) {
	c := character.New("Ada", character.Normal, "device-1")
	c.HP, c.MaxHP = 20, 20
	tr := content.Trap{Name: "Pit", DC: 1, DamageDie: "1d6"}
	src := &fixedSource{vals: []int{3}}

	out := trap.Resolve(c, tr, src)
	assert.True(t, out.Dodged)
	assert.Equal(t, 20, c.HP)
}

func TestResolve_FailedDodgeAppliesDamage(t *testing.T) {
	c := character.New("Ada", character.Normal, "device-1")
	c.HP, c.MaxHP = 20, 20
	tr := content.Trap{Name: "Pit", DC: 999, DamageDie: "1d6"}
	src := &fixedSource{vals: []int{3}}

	out := trap.Resolve(c, tr, src)
	assert.False(t, out.Dodged)
	assert.Greater(t, out.Damage, 0)
	assert.Equal(t, 20-out.Damage, c.HP)
}

func TestResolve_DamageNeverDropsHPBelowZero(t *testing.T) {
	c := character.New("Ada", character.Normal, "device-1")
	c.HP, c.MaxHP = 2, 20
	tr := content.Trap{Name: "Spikes", DC: 999, DamageDie: "10d4"}
	src := &fixedSource{vals: []int{3}}

	trap.Resolve(c, tr, src)
	assert.Equal(t, 0, c.HP)
}

func TestResolve_GoldDustFloorsAtZero(t *testing.T) {
	c := character.New("Ada", character.Normal, "device-1")
	c.Gold = 10
	tr := content.Trap{
		Name: "Dust", DC: 999, DamageDie: "1d4",
		Effects: []content.TrapEffect{{Kind: content.TrapEffectGoldDust, Amount: 50}},
	}
	src := &fixedSource{vals: []int{1}}

	out := trap.Resolve(c, tr, src)
	assert.Equal(t, 10, out.GoldLost)
	assert.Equal(t, 0, c.Gold)
}

func TestResolve_PoisonSetsDebuffDuration(t *testing.T) {
	c := character.New("Ada", character.Normal, "device-1")
	tr := content.Trap{
		Name: "Dart", DC: 999, DamageDie: "1d4",
		Effects: []content.TrapEffect{{Kind: content.TrapEffectPoison, Duration: 3}},
	}
	src := &fixedSource{vals: []int{1}}

	out := trap.Resolve(c, tr, src)
	assert.True(t, out.PoisonApplied)
	assert.Equal(t, 3, c.Debuffs.PoisonTurns)
	assert.Equal(t, 3, out.PoisonTurns)
}

func TestResolve_DexDownFloorsAtThree(t *testing.T) {
	c := character.New("Ada", character.Normal, "device-1")
	c.Attributes[character.Dexterity] = 4
	tr := content.Trap{
		Name: "Mist", DC: 999, DamageDie: "1d4",
		Effects: []content.TrapEffect{{Kind: content.TrapEffectDexDown, Amount: 5}},
	}
	src := &fixedSource{vals: []int{1}}

	trap.Resolve(c, tr, src)
	assert.Equal(t, 3, c.Attribute(character.Dexterity))
}

func TestResolve_RustWeaponIsFlavorOnly(t *testing.T) {
	c := character.New("Ada", character.Normal, "device-1")
	tr := content.Trap{
		Name: "Rust", DC: 999, DamageDie: "1d4",
		Effects: []content.TrapEffect{{Kind: content.TrapEffectRustWeapon}},
	}
	src := &fixedSource{vals: []int{1}}

	out := trap.Resolve(c, tr, src)
	assert.Equal(t, 0, out.GoldLost)
	assert.False(t, out.PoisonApplied)
}

func TestResolve_EffectChanceCanSkip(t *testing.T) {
	c := character.New("Ada", character.Normal, "device-1")
	c.Gold = 10
	tr := content.Trap{
		Name: "Dust", DC: 999, DamageDie: "1d4",
		Effects: []content.TrapEffect{{Kind: content.TrapEffectGoldDust, Amount: 5, Chance: 0.01}},
	}
	// roll scaled to 10000; fixedSource returns 9999 capped value, which is >= chance*10000=100
	src := &fixedSource{vals: []int{9999}}

	out := trap.Resolve(c, tr, src)
	assert.Equal(t, 0, out.GoldLost)
	assert.Equal(t, 10, c.Gold)
}

func TestDice_TrapDieDamageRespectsSeed(t *testing.T) {
	src := dice.NewSeededSource(42)
	v := dice.Sum("1d6", src)
	assert.GreaterOrEqual(t, v, 1)
	assert.LessOrEqual(t, v, 6)
}
