package combat

import (
	"github.com/duskward/labyrinth/internal/game/character"
	"github.com/duskward/labyrinth/internal/game/content"
	"github.com/duskward/labyrinth/internal/game/dice"
	"github.com/duskward/labyrinth/internal/game/monster"
)

// SpellResult is the outcome of a combat:cast action.
type SpellResult struct {
	Damage        int
	ExitsCombat   bool
	CompanionTier int
}

// applySpellResistance floors damage at 0 after subtracting the monster's
// spell resistance, if any (spec §4.4).
func applySpellResistance(dmg int, m *monster.Instance) int {
	dmg -= m.SpellResistance
	if dmg < 0 {
		return 0
	}
	return dmg
}

// CastSpell resolves a combat:cast action. lightningFull selects the full
// (6d6) or half (3d6) variant of Lightning Bolt; it is ignored for every
// other spell (spec §4.4).
func CastSpell(c *character.Character, m *monster.Instance, kind content.SpellKind, lightningFull bool, src dice.Source) SpellResult {
	switch kind {
	case content.SpellMagicMissile:
		return SpellResult{Damage: applySpellResistance(dice.Sum("2d6", src), m)}
	case content.SpellFireball:
		return SpellResult{Damage: applySpellResistance(dice.Sum("4d6", src), m)}
	case content.SpellLightningBolt:
		die := "3d6"
		if lightningFull {
			die = "6d6"
		}
		return SpellResult{Damage: applySpellResistance(dice.Sum(die, src), m)}
	case content.SpellFreeze:
		m.FreezeTurns++
		return SpellResult{}
	case content.SpellVulnerability:
		m.ACPenalty += 2
		return SpellResult{}
	case content.SpellWeakness, content.SpellSlowness:
		m.DamagePenalty += 2
		return SpellResult{}
	case content.SpellSummon:
		tier := dice.Sum("5d4", src)
		return SpellResult{CompanionTier: tier}
	case content.SpellTeleport, content.SpellPortal:
		return SpellResult{ExitsCombat: true}
	default:
		return SpellResult{}
	}
}
