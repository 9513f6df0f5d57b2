package combat

import (
	"github.com/duskward/labyrinth/internal/game/character"
	"github.com/duskward/labyrinth/internal/game/dice"
	"github.com/duskward/labyrinth/internal/game/monster"
)

// AttackResult holds the outcome of one attack roll and, if it landed, the
// damage dealt.
type AttackResult struct {
	Raw         int
	Total       int
	Outcome     Outcome
	Damage      int
	SelfInjury  int // fumble self-injury, if any
	WeaponBreak bool
	ArmorBreak  bool
}

// ResolvePlayerAttack resolves one player attack against m, aimed at
// playerZone, with the monster defending monsterZone (spec §4.4).
//
// Precondition: c and m must be non-nil and alive.
func ResolvePlayerAttack(c *character.Character, m *monster.Instance, playerZone, monsterZone Zone, src dice.Source) AttackResult {
	raw := dice.Sum("5d4", src)
	fumble, crit := rawOutcome(raw)
	total := raw + c.Attribute(character.Strength)

	if fumble {
		selfInjury := dice.Sum("1d4", src)
		return AttackResult{Raw: raw, Total: total, Outcome: Fumble, SelfInjury: selfInjury}
	}

	hit := total >= m.EffectiveAC()
	if !hit {
		return AttackResult{Raw: raw, Total: total, Outcome: Miss}
	}
	if !crit && playerZone == monsterZone {
		return AttackResult{Raw: raw, Total: total, Outcome: Blocked}
	}

	weapon, _ := c.EquippedWeaponItem()
	die := weapon.EffectiveDamageDie()
	if die == "" {
		die = "1d4" // unarmed baseline
	}
	dmg := dice.Sum(die, src) + ceilDiv(c.Attribute(character.Strength), 2) + c.Buffs.DamageBonus
	if weapon.Damaged {
		dmg = dmg / 2
		if dmg < 1 {
			dmg = 1
		}
	}
	outcome := Hit
	if crit {
		outcome = Crit
		dmg = dmg * 3 / 2
	}

	return AttackResult{Raw: raw, Total: total, Outcome: outcome, Damage: dmg}
}

// ResolveMonsterAttack resolves one monster attack against c. If
// c.Buffs.InvisibilityOneShot is set, the attack automatically misses and
// the buff is consumed (spec §4.4).
func ResolveMonsterAttack(c *character.Character, m *monster.Instance, src dice.Source) AttackResult {
	if c.Buffs.InvisibilityOneShot {
		c.Buffs.InvisibilityOneShot = false
		return AttackResult{Outcome: Miss}
	}

	raw := dice.Sum("5d4", src)
	fumble, crit := rawOutcome(raw)
	total := raw + m.Strength/2

	if fumble {
		selfInjury := dice.Sum("1d4", src)
		return AttackResult{Raw: raw, Total: total, Outcome: Fumble, SelfInjury: selfInjury}
	}

	playerAC := ComputeAC(c)
	hit := total >= playerAC
	if !hit {
		return AttackResult{Raw: raw, Total: total, Outcome: Miss}
	}

	dmg := dice.Sum(m.DamageDie, src) - m.DamagePenalty
	if dmg < 1 {
		dmg = 1
	}
	outcome := Hit
	if crit {
		outcome = Crit
		dmg = dmg * 3 / 2
	}
	return AttackResult{Raw: raw, Total: total, Outcome: outcome, Damage: dmg}
}
