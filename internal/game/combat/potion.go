package combat

import (
	"github.com/duskward/labyrinth/internal/game/character"
	"github.com/duskward/labyrinth/internal/game/content"
	"github.com/duskward/labyrinth/internal/game/dice"
)

// PotionResult is the outcome of a combat:potion action.
type PotionResult struct {
	Healed      int
	ConsumesTurn bool
}

// UsePotion applies a potion's effect to c (spec §4.4). Every kind except
// Antidote consumes the player's turn. The caller is responsible for
// decrementing c.PotionUses and checking it was > 0 before calling.
func UsePotion(c *character.Character, kind content.PotionKind, src dice.Source) PotionResult {
	switch kind {
	case content.PotionHealing:
		healed := ceilDiv(c.Attribute(character.Constitution), 2) * dice.Sum("2d2", src)
		c.HP += healed
		if c.HP > c.MaxHP {
			c.HP = c.MaxHP
		}
		return PotionResult{Healed: healed, ConsumesTurn: true}
	case content.PotionStrength:
		c.Buffs.DamageBonus += 2
		return PotionResult{ConsumesTurn: true}
	case content.PotionIntelligence:
		c.Buffs.DamageBonus += 1
		return PotionResult{ConsumesTurn: true}
	case content.PotionSpeed:
		c.Buffs.ExtraAttackCharges += 1
		return PotionResult{ConsumesTurn: true}
	case content.PotionProtection:
		c.Buffs.ACBonus += 3
		return PotionResult{ConsumesTurn: true}
	case content.PotionInvisibility:
		c.Buffs.InvisibilityOneShot = true
		return PotionResult{ConsumesTurn: true}
	case content.PotionAntidote:
		c.Debuffs.PoisonTurns = 0
		return PotionResult{ConsumesTurn: false}
	default:
		return PotionResult{}
	}
}
