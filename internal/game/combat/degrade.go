package combat

import (
	"github.com/duskward/labyrinth/internal/game/character"
	"github.com/duskward/labyrinth/internal/game/dice"
)

// degradeChance is the probability an equipment item becomes damaged on a
// qualifying attack (spec §4.4).
const degradeChance = 0.05

// MaybeDamageWeapon applies a 5% chance to mark the player's equipped
// weapon damaged, called after any resolved attack where the player landed
// or was blocked (spec §4.4).
func MaybeDamageWeapon(c *character.Character, src dice.Source) {
	if c.EquippedWeapon < 0 || c.EquippedWeapon >= len(c.Weapons) {
		return
	}
	if dice.Sum("1d100", src) <= int(degradeChance*100) {
		c.Weapons[c.EquippedWeapon].Damaged = true
	}
}

// MaybeDamageArmor applies a 5% chance to mark the player's equipped armor
// damaged, called after any monster attack where the player was hit or
// blocked (spec §4.4).
func MaybeDamageArmor(c *character.Character, src dice.Source) {
	if c.EquippedArmor < 0 || c.EquippedArmor >= len(c.Armors) {
		return
	}
	if dice.Sum("1d100", src) <= int(degradeChance*100) {
		c.Armors[c.EquippedArmor].Damaged = true
	}
}

// RepairCost is the smith's flat fee to clear a damaged flag (spec §4.4).
const RepairCost = 30
