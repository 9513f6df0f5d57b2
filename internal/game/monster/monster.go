// Package monster defines the live combat instance derived from a
// content.Monster content-table row (spec §3).
package monster

import "github.com/duskward/labyrinth/internal/game/content"

// Instance is a monster as it exists during one encounter: a copy of its
// content-table row plus the mutable combat state a player's spells and
// attacks can apply to it. No depth scaling is ever applied to the copied
// base stats (spec §3, §9); only reward payout scales by depth.
//
// Lifecycle: created on room entry (or a forced Dragon spawn); destroyed on
// death, charm-away, flee, or teleport — it never outlives one combat.
type Instance struct {
	Name            string
	HP              int
	MaxHP           int
	AC              int
	Strength        int
	Dexterity       int
	DamageDie       string
	XP              int
	GoldLow         int
	GoldHigh        int
	Difficulty      int
	Abilities       []string
	SpellResistance int
	IsDragon        bool

	// Combat-scoped debuffs applied by player spells (spec §4.4).
	DamagePenalty int
	ACPenalty     int
	FreezeTurns   int
}

// FromRow creates a fresh Instance from a content table row.
//
// Postcondition: HP == MaxHP == row.HP; all combat-scoped debuffs are zero.
func FromRow(row content.Monster) *Instance {
	return &Instance{
		Name:            row.Name,
		HP:              row.HP,
		MaxHP:           row.HP,
		AC:              row.AC,
		Strength:        row.Strength,
		Dexterity:       row.Dexterity,
		DamageDie:       row.DamageDie,
		XP:              row.XP,
		GoldLow:         row.GoldLow,
		GoldHigh:        row.GoldHigh,
		Difficulty:      row.Difficulty,
		Abilities:       row.Abilities,
		SpellResistance: row.SpellResistance,
		IsDragon:        row.Name == content.Dragon.Name,
	}
}

// NewDragon creates a fresh forced-Dragon Instance (spec §4.5, Glossary).
func NewDragon() *Instance {
	return FromRow(content.Dragon)
}

// IsDead reports whether the instance has been reduced to zero or fewer hit points.
func (m *Instance) IsDead() bool {
	return m.HP <= 0
}

// EffectiveAC returns AC after the temporary ac_penalty debuff (spec §4.4).
//
// Postcondition: Returns >= 0.
func (m *Instance) EffectiveAC() int {
	ac := m.AC - m.ACPenalty
	if ac < 0 {
		return 0
	}
	return ac
}
