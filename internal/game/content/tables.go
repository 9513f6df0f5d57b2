package content

import (
	"fmt"

	"go.uber.org/zap"
)

// Dirs names the on-disk directories each content table loads from,
// populated from config.ContentConfig.
type Dirs struct {
	Monsters  string
	Weapons   string
	Armors    string
	Potions   string
	Spells    string
	Traps     string
	Rings     string
	Dialogues string
}

// Tables bundles every content table the engine needs. It is built once at
// startup and shared read-only across all sessions (spec §2, §5).
type Tables struct {
	Monsters  *MonsterTable
	Weapons   *WeaponTable
	Armors    *ArmorTable
	Potions   *PotionTable
	Spells    *SpellTable
	Traps     *TrapTable
	Rings     *RingTable
	Dialogues *DialogueTable
}

// Load builds a Tables from the given directories.
//
// Precondition: every directory in dirs must exist and be readable.
// Postcondition: Returns a fully populated Tables or the first loading error.
func Load(dirs Dirs, logger *zap.Logger) (*Tables, error) {
	monsters, err := LoadMonsters(dirs.Monsters)
	if err != nil {
		return nil, fmt.Errorf("loading monsters: %w", err)
	}
	weapons, err := LoadWeapons(dirs.Weapons)
	if err != nil {
		return nil, fmt.Errorf("loading weapons: %w", err)
	}
	armors, err := LoadArmors(dirs.Armors)
	if err != nil {
		return nil, fmt.Errorf("loading armors: %w", err)
	}
	potions, err := LoadPotions(dirs.Potions)
	if err != nil {
		return nil, fmt.Errorf("loading potions: %w", err)
	}
	spells, err := LoadSpells(dirs.Spells)
	if err != nil {
		return nil, fmt.Errorf("loading spells: %w", err)
	}
	traps, err := LoadTraps(dirs.Traps)
	if err != nil {
		return nil, fmt.Errorf("loading traps: %w", err)
	}
	rings, err := LoadRings(dirs.Rings)
	if err != nil {
		return nil, fmt.Errorf("loading rings: %w", err)
	}
	dialogues, err := LoadDialogues(dirs.Dialogues, logger)
	if err != nil {
		return nil, fmt.Errorf("loading dialogues: %w", err)
	}

	return &Tables{
		Monsters:  monsters,
		Weapons:   weapons,
		Armors:    armors,
		Potions:   potions,
		Spells:    spells,
		Traps:     traps,
		Rings:     rings,
		Dialogues: dialogues,
	}, nil
}
