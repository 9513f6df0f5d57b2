package engine

import (
	"context"

	"go.uber.org/zap"

	"github.com/duskward/labyrinth/internal/game/character"
	"github.com/duskward/labyrinth/internal/storage"
)

func mainMenuEvent() Event {
	return menu(
		opt("menu:new_game", "Begin a new descent"),
		opt("menu:continue", "Continue a saved character"),
		opt("menu:quit", "Quit"),
	)
}

func handleMainMenu(ctx context.Context, s *State, a Action) []Event {
	switch a.ID {
	case "menu:new_game":
		s.Phase = PhaseSelectDifficulty
		return []Event{clear(), dialogue("Choose your difficulty."), difficultyMenuEvent()}
	case "menu:continue":
		rec, err := s.Stores.Save.Load(ctx, s.DeviceID)
		if err != nil {
			if err == storage.ErrNotFound {
				return []Event{dialogue("No saved character was found for this device."), mainMenuEvent()}
			}
			s.Logger.Error("loading save", zap.Error(err))
			return []Event{dialogue("Your save could not be loaded."), mainMenuEvent()}
		}
		s.Character = character.Deserialize(rec)
		s.Character.Utility.ResetTownVisit()
		s.Depth = 0
		s.EncounterCount = 0
		s.Phase = PhaseTown
		return []Event{clear(), updateStats(s.statsSnapshot()), dialogue("Welcome back, " + s.Character.Name + "."), townMenuEvent(s.Character)}
	case "menu:quit":
		return []Event{dialogue("Farewell, traveler.")}
	default:
		return []Event{mainMenuEvent()}
	}
}

func difficultyMenuEvent() Event {
	return menu(
		opt("difficulty:easy", "Easy (6d5 attributes)"),
		opt("difficulty:normal", "Normal (5d5 attributes)"),
		opt("difficulty:hard", "Hard (4d5 attributes)"),
	)
}

func handleSelectDifficulty(ctx context.Context, s *State, a Action) []Event {
	switch a.ID {
	case "difficulty:easy":
		s.PendingDifficulty = character.Easy
	case "difficulty:normal":
		s.PendingDifficulty = character.Normal
	case "difficulty:hard":
		s.PendingDifficulty = character.Hard
	default:
		return []Event{difficultyMenuEvent()}
	}
	s.Phase = PhaseIntro
	return []Event{
		clear(),
		scene("dungeon_corridor", "A labyrinth yawns beneath the town, older than anyone living. Those who enter seeking its gold rarely return twice."),
		prompt("intro:continue", "Continue"),
	}
}

func handleIntro(ctx context.Context, s *State, a Action) []Event {
	s.Phase = PhaseCreateName
	return []Event{clear(), prompt("create:set_name", "What is your name?")}
}

func handleCreateName(ctx context.Context, s *State, a Action) []Event {
	name := a.Param("value")
	if name == "" {
		return []Event{dialogue("Every adventurer needs a name."), prompt("create:set_name", "What is your name?")}
	}
	s.PendingName = name
	s.Character = character.New(name, s.PendingDifficulty, s.DeviceID)
	s.Unassigned = append([]character.Attribute{}, character.Attributes...)
	s.Phase = PhaseCreateAttrs
	return beginAttributeRoll(s)
}

func beginAttributeRoll(s *State) []Event {
	if len(s.Unassigned) == 0 {
		character.Finalize(s.Character, s.Dice)
		s.Phase = PhaseTown
		s.Character.Utility.ResetTownVisit()
		return []Event{
			clear(),
			dialogue("Your attributes are set. You arrive in town with " +
				itoa(s.Character.Gold) + " gold and " + itoa(s.Character.MaxHP) + " hit points."),
			updateStats(s.statsSnapshot()),
			townMenuEvent(s.Character),
		}
	}
	s.RolledValue = character.RollAttribute(s.PendingDifficulty, s.Dice)
	options := make([]MenuOption, 0, len(s.Unassigned))
	for _, attr := range s.Unassigned {
		options = append(options, opt("create:assign:"+string(attr), string(attr)))
	}
	return []Event{
		dialogue("You rolled " + itoa(s.RolledValue) + ". Assign it to which attribute?"),
		menu(options...),
	}
}

func handleCreateAttrs(ctx context.Context, s *State, a Action) []Event {
	attr := character.Attribute(trimPrefix(a.ID, "create:assign:"))
	idx := indexOfAttribute(s.Unassigned, attr)
	if idx < 0 {
		return beginAttributeRoll(s)
	}
	s.Character.Attributes[attr] = s.RolledValue
	s.Unassigned = append(s.Unassigned[:idx], s.Unassigned[idx+1:]...)
	return beginAttributeRoll(s)
}

func indexOfAttribute(list []character.Attribute, target character.Attribute) int {
	for i, a := range list {
		if a == target {
			return i
		}
	}
	return -1
}

func trimPrefix(s, prefix string) string {
	if len(s) >= len(prefix) && s[:len(prefix)] == prefix {
		return s[len(prefix):]
	}
	return s
}
