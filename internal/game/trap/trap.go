// Package trap resolves a labyrinth trap encounter: a dodge check, and on
// failure, damage plus whatever side-effects the trap row carries (spec
// §4.7).
package trap

import (
	"github.com/duskward/labyrinth/internal/game/character"
	"github.com/duskward/labyrinth/internal/game/content"
	"github.com/duskward/labyrinth/internal/game/dice"
)

// minDexterity is the floor a dex_down effect can never push Dexterity
// below (spec §4.7).
const minDexterity = 3

// Outcome records what a trap resolution did to the character.
type Outcome struct {
	Dodged        bool
	Damage        int
	GoldLost      int
	PoisonApplied bool
	PoisonTurns   int
	DexLost       int
}

func ceilDiv(n, d int) int {
	if n <= 0 {
		return 0
	}
	return (n + d - 1) / d
}

func rollChance(chance float64, src dice.Source) bool {
	return src.Intn(10000) < int(chance*10000)
}

// Resolve runs the dodge check and, on failure, applies damage and effects.
//
// Postcondition: c.HP never drops below 0; c.Gold never drops below 0;
// Dexterity never drops below minDexterity.
func Resolve(c *character.Character, t content.Trap, src dice.Source) Outcome {
	roll := dice.Sum("5d4", src) + ceilDiv(c.Attribute(character.Dexterity), 2)
	if roll >= t.DC {
		return Outcome{Dodged: true}
	}

	dmg := dice.Sum(t.DamageDie, src)
	if dmg < 0 {
		dmg = 0
	}
	c.HP -= dmg
	if c.HP < 0 {
		c.HP = 0
	}
	outcome := Outcome{Damage: dmg}

	for _, eff := range t.Effects {
		if eff.Chance > 0 && !rollChance(eff.Chance, src) {
			continue
		}
		switch eff.Kind {
		case content.TrapEffectGoldDust:
			lose := eff.Amount
			if lose > c.Gold {
				lose = c.Gold
			}
			c.Gold -= lose
			outcome.GoldLost = lose
		case content.TrapEffectPoison:
			if eff.Duration > c.Debuffs.PoisonTurns {
				c.Debuffs.PoisonTurns = eff.Duration
			}
			outcome.PoisonApplied = true
			outcome.PoisonTurns = eff.Duration
		case content.TrapEffectRustWeapon:
			// Flavor only; no mechanical effect (spec §4.7).
		case content.TrapEffectDexDown:
			before := c.Attribute(character.Dexterity)
			after := before - eff.Amount
			if after < minDexterity {
				after = minDexterity
			}
			outcome.DexLost = before - after
			c.Attributes[character.Dexterity] = after
		}
	}
	return outcome
}
