// Package character defines the character domain model: attributes,
// vitals, economy, equipment, progression, and the combat/depth/town-scoped
// flags the engine resets at well-defined points (spec §3, §9).
package character

import "github.com/duskward/labyrinth/internal/game/item"

// Attribute identifies one of the seven integer stats on a Character.
type Attribute string

const (
	Strength     Attribute = "Strength"
	Dexterity    Attribute = "Dexterity"
	Constitution Attribute = "Constitution"
	Intelligence Attribute = "Intelligence"
	Wisdom       Attribute = "Wisdom"
	Charisma     Attribute = "Charisma"
	Perception   Attribute = "Perception"
)

// Attributes is the canonical, stable order the creation flow rolls and
// assigns in (spec §4.8 "Creation").
var Attributes = []Attribute{Strength, Dexterity, Constitution, Intelligence, Wisdom, Charisma, Perception}

// Difficulty selects the character's creation dice and revival DC pressure.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Normal Difficulty = "normal"
	Hard   Difficulty = "hard"
)

// CreationDie returns the dice expression rolled for each attribute during
// creation for the given difficulty (spec §4.8).
func (d Difficulty) CreationDie() string {
	switch d {
	case Easy:
		return "6d5"
	case Hard:
		return "4d5"
	default:
		return "5d5"
	}
}

// Buffs holds the per-combat buffs a Character accumulates from potions and
// spells. Cleared as a unit at combat start (spec §3, §9).
type Buffs struct {
	DamageBonus         int
	ACBonus             int
	ExtraAttackCharges  int
	InvisibilityOneShot bool
}

// Debuffs holds status effects applied to the Character. Poison persists
// across the labyrinth delve (it is cured by the Antidote potion, the
// Healer, or expires by duration) rather than being cleared at combat start;
// the other fields exist for symmetry with monster.Instance's debuff shape
// and are populated only in the rare case a trap or hazard targets the
// player directly with them.
type Debuffs struct {
	PoisonTurns     int
	DamagePenalty   int
	ACPenalty       int
	SpellResistance int
	FreezeTurns     int
}

// Quest is one active kill-type quest (spec §3, §4.6).
type Quest struct {
	TargetMonster string
	Kind          string // "kill" or "collect"; both mechanically credit on kill
	Goal          int
	Progress      int
	RewardGold    int
}

// Done reports whether the quest's goal has been met.
func (q Quest) Done() bool { return q.Progress >= q.Goal }

// Companion is an optional combat ally (spec §3, §4.8 "Companion").
type Companion struct {
	Name      string
	Tier      int
	MaxHP     int
	HP        int
	Strength  int
	AC        int
	DamageDie string
}

// UtilityFlags tracks once-per-depth and once-per-town-visit usage. The
// depth-scoped pair resets on entering a new depth OR on a successful
// post-revival return to town (spec §3); the town-visit pair resets at the
// start of each town visit.
type UtilityFlags struct {
	// Depth-scoped.
	DivineUsed bool
	ListenUsed bool
	// Town-visit-scoped.
	AteThisVisit    bool
	TavernThisVisit bool
	PrayedThisVisit bool
	SleptThisVisit  bool
}

// ResetDepthScoped clears the once-per-depth flags. Called on entering a new
// depth and on a successful revival's return to town (spec §3).
func (u *UtilityFlags) ResetDepthScoped() {
	u.DivineUsed = false
	u.ListenUsed = false
}

// ResetTownVisit clears the once-per-town-visit flags. Called whenever the
// character (re)enters the town phase.
func (u *UtilityFlags) ResetTownVisit() {
	u.AteThisVisit = false
	u.TavernThisVisit = false
	u.PrayedThisVisit = false
	u.SleptThisVisit = false
}

// Character is the persistent player state (spec §3). It is owned
// exclusively by one engine.State for the duration of a session.
type Character struct {
	Name       string
	Difficulty Difficulty
	DeviceID   string

	Attributes map[Attribute]int

	HP    int
	MaxHP int

	Gold           int
	Rings          []item.Ring // bound magic rings; cursed ones block sale
	Weapons        []item.Weapon
	Armors         []item.Armor
	EquippedWeapon int // index into Weapons, -1 = unarmed
	EquippedArmor  int // index into Armors, -1 = unarmored

	HealingPotions int            // legacy potion count
	PotionUses     map[string]int // potion name -> remaining uses
	SpellUses      map[string]int // spell name -> remaining uses

	Level             int
	XP                int
	UnspentStatPoints int
	AttributeTraining map[Attribute]int
	DeathCount        int

	ExamineUsed bool
	Buffs       Buffs
	Debuffs     Debuffs

	Companion *Companion
	Quests    []Quest

	Utility UtilityFlags
}

// New creates a bare Character with all attributes at 3 (the invariant
// floor) and empty collections. Creation (builder.go) fills in rolled
// attributes, starting HP/gold, and identity fields.
func New(name string, difficulty Difficulty, deviceID string) *Character {
	attrs := make(map[Attribute]int, len(Attributes))
	for _, a := range Attributes {
		attrs[a] = 3
	}
	return &Character{
		Name:              name,
		Difficulty:        difficulty,
		DeviceID:          deviceID,
		Attributes:        attrs,
		EquippedWeapon:    -1,
		EquippedArmor:     -1,
		PotionUses:        make(map[string]int),
		SpellUses:         make(map[string]int),
		Level:             1,
		AttributeTraining: make(map[Attribute]int),
	}
}

// Attribute returns the character's current value for a, defaulting to the
// floor of 3 if somehow unset.
func (c *Character) Attribute(a Attribute) int {
	if v, ok := c.Attributes[a]; ok {
		return v
	}
	return 3
}

// ClampAttributeFloor enforces the invariant that every attribute stays >= 3
// (spec §3). Called after any attribute decrease (revival, trap dex_down).
func (c *Character) ClampAttributeFloor(a Attribute) {
	if c.Attributes[a] < 3 {
		c.Attributes[a] = 3
	}
}

// EquippedWeaponItem returns the currently equipped weapon, or (zero, false)
// if unarmed.
func (c *Character) EquippedWeaponItem() (item.Weapon, bool) {
	if c.EquippedWeapon < 0 || c.EquippedWeapon >= len(c.Weapons) {
		return item.Weapon{}, false
	}
	return c.Weapons[c.EquippedWeapon], true
}

// EquippedArmorItem returns the currently equipped armor, or (zero, false)
// if unarmored.
func (c *Character) EquippedArmorItem() (item.Armor, bool) {
	if c.EquippedArmor < 0 || c.EquippedArmor >= len(c.Armors) {
		return item.Armor{}, false
	}
	return c.Armors[c.EquippedArmor], true
}

// IsAlive reports whether the character's HP is above zero.
func (c *Character) IsAlive() bool { return c.HP > 0 }
