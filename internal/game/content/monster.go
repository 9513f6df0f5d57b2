package content

// Monster is an immutable content-table row. Monster instances in combat are
// copied from a row by internal/game/monster.FromRow; no depth scaling is
// ever applied to these base stats (spec §3, §9).
type Monster struct {
	Name         string   `yaml:"name"`
	HP           int      `yaml:"hp"`
	AC           int      `yaml:"ac"`
	Strength     int      `yaml:"strength"`
	Dexterity    int      `yaml:"dexterity"`
	DamageDie    string   `yaml:"damage_die"`
	XP           int      `yaml:"xp"`
	GoldLow      int      `yaml:"gold_low"`
	GoldHigh     int      `yaml:"gold_high"`
	WanderChance float64  `yaml:"wander_chance"`
	Difficulty   int      `yaml:"difficulty"`
	Abilities    []string `yaml:"abilities"`
	// SpellResistance reduces incoming damage-spell rolls when > 0 (spec §4.4).
	SpellResistance int `yaml:"spell_resistance"`
}

// RecordName implements Named.
func (m Monster) RecordName() string { return m.Name }

// Dragon is the fixed boss monster, forced at depth 5 and on the 50th
// engaged monster (spec §4.5, Glossary). It is not part of the loaded table
// because its stats never vary and must always be available even if a
// content author omits it from monsters.yaml.
var Dragon = Monster{
	Name:            "Dragon",
	HP:              135,
	AC:              31,
	Strength:        22,
	Dexterity:       18,
	DamageDie:       "8d7",
	XP:              500,
	GoldLow:         200,
	GoldHigh:        500,
	WanderChance:    0, // never wanders in; only forced spawns
	Difficulty:      10,
	SpellResistance: 0,
}

// MonsterTable loads and serves the monster content table.
type MonsterTable = Table[Monster]

// LoadMonsters reads every YAML file in dir into a MonsterTable.
//
// Precondition: dir must be a readable directory of monster YAML files.
func LoadMonsters(dir string) (*MonsterTable, error) {
	records, err := loadYAMLDir(dir, decodeYAMLList[Monster])
	if err != nil {
		return nil, err
	}
	return NewTable(records)
}

// QuestEligible reports whether a monster may be offered as a quest target.
// Monsters with wander_chance <= 0.02 are excluded from quest targeting
// (spec §3, §4.2).
func QuestEligible(m Monster) bool {
	return m.WanderChance > 0.02
}
