package content

// TrapEffectKind enumerates the trap side-effects spec §4.7 names.
type TrapEffectKind string

const (
	TrapEffectGoldDust   TrapEffectKind = "gold_dust"
	TrapEffectPoison     TrapEffectKind = "poison"
	TrapEffectRustWeapon TrapEffectKind = "rust_weapon"
	TrapEffectDexDown    TrapEffectKind = "dex_down"
)

// TrapEffect is one possible side-effect a trap can apply on a failed dodge.
type TrapEffect struct {
	Kind     TrapEffectKind `yaml:"kind"`
	Amount   int            `yaml:"amount"`   // gold_dust loss, dex_down subtraction
	Duration int            `yaml:"duration"` // poison turns
	Chance   float64        `yaml:"chance"`   // 0 or omitted means "always applies"
}

// Trap is an immutable content-table row.
type Trap struct {
	Name      string       `yaml:"name"`
	DC        int          `yaml:"dc"`
	DamageDie string       `yaml:"damage_die"`
	Effects   []TrapEffect `yaml:"effects"`
}

// RecordName implements Named.
func (t Trap) RecordName() string { return t.Name }

// TrapTable loads and serves the trap content table.
type TrapTable = Table[Trap]

// LoadTraps reads every YAML file in dir into a TrapTable.
func LoadTraps(dir string) (*TrapTable, error) {
	records, err := loadYAMLDir(dir, decodeYAMLList[Trap])
	if err != nil {
		return nil, err
	}
	return NewTable(records)
}
