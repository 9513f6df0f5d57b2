// Package combat implements the pure 5d4-based combat resolver: AC and
// initiative math, the attack/damage pipeline, the seven action contracts
// (examine, divine aid, charm, flee, potion, spell, attack), equipment
// degradation, and victory payout (spec §4.4).
package combat

import "github.com/duskward/labyrinth/internal/game/character"

// unarmoredBonus is the AC contribution when no armor is equipped
// (spec §4.4: "+5 when no armor equipped").
const unarmoredBonus = 5

// ComputeAC returns a character's current armor class:
// 10 + ceil(CON/2) + armor_effective + ac_bonus - ac_penalty (spec §4.4).
//
// Postcondition: Returns >= 0.
func ComputeAC(c *character.Character) int {
	conMod := ceilDiv(c.Attribute(character.Constitution), 2)

	armorEffective := unarmoredBonus
	if armor, ok := c.EquippedArmorItem(); ok {
		armorEffective = armor.EffectiveAC()
	}

	ac := 10 + conMod + armorEffective + c.Buffs.ACBonus - c.Debuffs.ACPenalty
	if ac < 0 {
		return 0
	}
	return ac
}

// ceilDiv returns ceil(n / d) for positive d.
func ceilDiv(n, d int) int {
	if n <= 0 {
		return 0
	}
	return (n + d - 1) / d
}
