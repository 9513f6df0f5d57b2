package engine

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/duskward/labyrinth/internal/storage"
)

// beginVictorySequence routes a Dragon kill into the victory phase: the
// reward events from resolveVictory are still shown first, then the run is
// committed to the leaderboard (spec §4.4 "Victory branch", §4.9).
func beginVictorySequence(s *State) []Event {
	s.Phase = PhaseVictory
	return []Event{
		dialogue("The Dragon falls. Its hoard is yours, and the labyrinth falls silent behind you."),
		updateStats(s.statsSnapshot()),
		menu(opt("victory:continue", "Claim your legacy")),
	}
}

func handleVictory(ctx context.Context, s *State, a Action) []Event {
	c := s.Character

	finalWeapon := ""
	if w, ok := c.EquippedWeaponItem(); ok {
		finalWeapon = w.Name
	}
	finalArmor := ""
	if ar, ok := c.EquippedArmorItem(); ok {
		finalArmor = ar.Name
	}
	companionName := ""
	if c.Companion != nil {
		companionName = c.Companion.Name
	}

	entry := storage.LeaderboardEntry{
		Name:             c.Name,
		Level:            c.Level,
		Difficulty:       c.Difficulty,
		RecordedAt:       time.Now().UTC(),
		MonstersDefeated: s.Stats.MonstersDefeated,
		QuestsCompleted:  s.Stats.QuestsCompleted,
		PotionsUsed:      s.Stats.PotionsUsed,
		SpellsUsed:       s.Stats.SpellsUsed,
		GoldEarned:       s.Stats.GoldEarned,
		GoldSpent:        s.Stats.GoldSpent,
		FinalWeapon:      finalWeapon,
		FinalArmor:       finalArmor,
		CompanionName:    companionName,
		Victorious:       true,
	}
	if err := s.Stores.Leaderboard.Append(ctx, entry); err != nil {
		s.Logger.Error("appending leaderboard entry", zap.Error(err))
	}
	if err := s.Stores.Save.Delete(ctx, s.DeviceID); err != nil {
		s.Logger.Error("clearing save after victory", zap.Error(err))
	}

	s.Phase = PhaseMainMenu
	s.Character = nil
	return []Event{
		clear(),
		dialogue("Your name is carved into the hall of champions."),
		mainMenuEvent(),
	}
}
