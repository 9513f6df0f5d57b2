package content

// Weapon is an immutable content-table row describing a purchasable or
// droppable weapon kind. Character-owned weapon instances carry their own
// damaged flag separately (internal/game/item.Weapon).
type Weapon struct {
	Name          string `yaml:"name"`
	DamageDie     string `yaml:"damage_die"`
	BasePrice     int    `yaml:"base_price"`
	LabyrinthDrop bool   `yaml:"labyrinth_drop"`
	// Chance weights this row for labyrinth-drop sub-selection (spec §4.4).
	Chance float64 `yaml:"chance"`
}

// RecordName implements Named.
func (w Weapon) RecordName() string { return w.Name }

// WeaponTable loads and serves the weapon content table.
type WeaponTable = Table[Weapon]

// LoadWeapons reads every YAML file in dir into a WeaponTable.
func LoadWeapons(dir string) (*WeaponTable, error) {
	records, err := loadYAMLDir(dir, decodeYAMLList[Weapon])
	if err != nil {
		return nil, err
	}
	return NewTable(records)
}

// Armor is an immutable content-table row describing a purchasable or
// droppable armor kind.
type Armor struct {
	Name          string  `yaml:"name"`
	ArmorClass    int     `yaml:"armor_class"`
	BasePrice     int     `yaml:"base_price"`
	LabyrinthDrop bool    `yaml:"labyrinth_drop"`
	Chance        float64 `yaml:"chance"`
}

// RecordName implements Named.
func (a Armor) RecordName() string { return a.Name }

// ArmorTable loads and serves the armor content table.
type ArmorTable = Table[Armor]

// LoadArmors reads every YAML file in dir into an ArmorTable.
func LoadArmors(dir string) (*ArmorTable, error) {
	records, err := loadYAMLDir(dir, decodeYAMLList[Armor])
	if err != nil {
		return nil, err
	}
	return NewTable(records)
}

// PotionKind enumerates the combat-effect potions spec §4.4 names.
type PotionKind string

const (
	PotionHealing      PotionKind = "Healing"
	PotionStrength     PotionKind = "Strength"
	PotionIntelligence PotionKind = "Intelligence"
	PotionSpeed        PotionKind = "Speed"
	PotionProtection   PotionKind = "Protection"
	PotionInvisibility PotionKind = "Invisibility"
	PotionAntidote     PotionKind = "Antidote"
)

// Potion is an immutable content-table row.
type Potion struct {
	Name      string     `yaml:"name"`
	Kind      PotionKind `yaml:"kind"`
	BasePrice int        `yaml:"base_price"`
}

// RecordName implements Named.
func (p Potion) RecordName() string { return p.Name }

// PotionTable loads and serves the potion content table.
type PotionTable = Table[Potion]

// LoadPotions reads every YAML file in dir into a PotionTable.
func LoadPotions(dir string) (*PotionTable, error) {
	records, err := loadYAMLDir(dir, decodeYAMLList[Potion])
	if err != nil {
		return nil, err
	}
	return NewTable(records)
}

// SpellKind enumerates the combat spells spec §4.4 names.
type SpellKind string

const (
	SpellMagicMissile  SpellKind = "Magic Missile"
	SpellFireball      SpellKind = "Fireball"
	SpellLightningBolt SpellKind = "Lightning Bolt"
	SpellFreeze        SpellKind = "Freeze"
	SpellVulnerability SpellKind = "Vulnerability"
	SpellWeakness      SpellKind = "Weakness"
	SpellSlowness      SpellKind = "Slowness"
	SpellSummon        SpellKind = "Summon"
	SpellTeleport      SpellKind = "Teleport"
	SpellPortal        SpellKind = "Portal"
)

// Spell is an immutable content-table row.
type Spell struct {
	Name      string    `yaml:"name"`
	Kind      SpellKind `yaml:"kind"`
	BasePrice int       `yaml:"base_price"`
}

// RecordName implements Named.
func (s Spell) RecordName() string { return s.Name }

// SpellTable loads and serves the spell content table.
type SpellTable = Table[Spell]

// LoadSpells reads every YAML file in dir into a SpellTable.
func LoadSpells(dir string) (*SpellTable, error) {
	records, err := loadYAMLDir(dir, decodeYAMLList[Spell])
	if err != nil {
		return nil, err
	}
	return NewTable(records)
}

// Ring is an immutable content-table row describing a magic ring. Effect
// magnitude is rolled at acquisition time (spec §3).
type Ring struct {
	Name          string `yaml:"name"`
	Attribute     string `yaml:"attribute"`      // e.g. "Strength"
	BonusDie      string `yaml:"bonus_die"`      // magnitude band, e.g. "1d3"
	Penalty       bool   `yaml:"penalty"`        // true = subtracts instead of adds
	Cursed        bool   `yaml:"cursed"`
	Chance        float64 `yaml:"chance"`
}

// RecordName implements Named.
func (r Ring) RecordName() string { return r.Name }

// RingTable loads and serves the magic ring content table.
type RingTable = Table[Ring]

// LoadRings reads every YAML file in dir into a RingTable.
func LoadRings(dir string) (*RingTable, error) {
	records, err := loadYAMLDir(dir, decodeYAMLList[Ring])
	if err != nil {
		return nil, err
	}
	return NewTable(records)
}
