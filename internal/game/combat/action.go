package combat

import (
	"github.com/duskward/labyrinth/internal/game/character"
	"github.com/duskward/labyrinth/internal/game/dice"
	"github.com/duskward/labyrinth/internal/game/monster"
)

// ExamineResult is the outcome of a combat:examine action.
type ExamineResult struct {
	Succeeded bool
	HP, AC    int
	Dexterity int
}

// Examine reveals monster stats on a 5d4+WIS > 25 check. Does not end the
// player's turn regardless of outcome. The caller is responsible for
// checking c.ExamineUsed before calling and setting it to true after
// (spec §4.4: allowed once per combat).
func Examine(c *character.Character, m *monster.Instance, src dice.Source) ExamineResult {
	total := dice.Sum("5d4", src) + c.Attribute(character.Wisdom)
	if total <= 25 {
		return ExamineResult{}
	}
	return ExamineResult{Succeeded: true, HP: m.HP, AC: m.AC, Dexterity: m.Dexterity}
}

// DivineResult is the outcome of a combat:divine action.
type DivineResult struct {
	Succeeded bool
	Damage    int
}

// DivineAid resolves a divine aid action: 5d4 + (WIS-10) >= 12 succeeds,
// dealing 3d6 on a 12-15 total or 4d6 on 16+. Either outcome consumes the
// player's turn (spec §4.4). Limited to once per depth; the caller checks
// c.Utility.DivineUsed.
func DivineAid(c *character.Character, src dice.Source) DivineResult {
	total := dice.Sum("5d4", src) + (c.Attribute(character.Wisdom) - 10)
	if total < 12 {
		return DivineResult{}
	}
	if total >= 16 {
		return DivineResult{Succeeded: true, Damage: dice.Sum("4d6", src)}
	}
	return DivineResult{Succeeded: true, Damage: dice.Sum("3d6", src)}
}

// Charm resolves a combat:charm action: 5d4 + ceil(CHA/2) >=
// 20 + floor(monster.difficulty/2). Dragons are always immune (spec §4.4).
func Charm(c *character.Character, m *monster.Instance, src dice.Source) bool {
	if m.IsDragon {
		return false
	}
	total := dice.Sum("5d4", src) + ceilDiv(c.Attribute(character.Charisma), 2)
	threshold := 20 + m.Difficulty/2
	return total >= threshold
}

// Flee resolves a combat:flee action: 5d4 + ceil(DEX/2) >
// 15 + ceil(monster.dex/2) (spec §4.4).
func Flee(c *character.Character, m *monster.Instance, src dice.Source) bool {
	total := dice.Sum("5d4", src) + ceilDiv(c.Attribute(character.Dexterity), 2)
	threshold := 15 + ceilDiv(m.Dexterity, 2)
	return total > threshold
}
