package engine

import (
	"context"

	"go.uber.org/zap"

	"github.com/duskward/labyrinth/internal/game/character"
	"github.com/duskward/labyrinth/internal/game/dice"
)

// startRevivalRoll transitions to the revival check once the player's HP
// has been reduced to zero: 5d4 + WIS >= 15 + 5*death_count (spec §9).
func startRevivalRoll(s *State) []Event {
	s.Phase = PhaseRevivalRoll
	s.AwaitingRevival = true
	return []Event{
		clear(),
		dialogue("Darkness closes in. Does fate grant you another chance?"),
		updateStats(s.statsSnapshot()),
		menu(opt("revival:roll", "Face your fate")),
	}
}

func handleRevivalRoll(ctx context.Context, s *State, a Action) []Event {
	c := s.Character
	if a.ID != "revival:roll" {
		return []Event{menu(opt("revival:roll", "Face your fate"))}
	}

	c.DeathCount++
	threshold := 15 + 5*c.DeathCount
	total := dice.Sum("5d4", s.Dice) + c.Attribute(character.Wisdom)
	s.AwaitingRevival = false

	if total < threshold {
		if err := s.Stores.Save.Delete(ctx, s.DeviceID); err != nil {
			s.Logger.Error("deleting character on permanent death", zap.Error(err))
		}
		s.Phase = PhaseMainMenu
		s.Character = nil
		return []Event{
			clear(),
			dialogue("Fate turns away from you. Your journey ends here, permanently."),
			mainMenuEvent(),
		}
	}

	for _, attr := range character.Attributes {
		c.Attributes[attr]--
		c.ClampAttributeFloor(attr)
	}
	c.HP = 1
	c.Utility.ResetDepthScoped()
	c.Utility.ResetTownVisit()
	s.Phase = PhaseTown
	s.Room = nil

	return []Event{
		clear(),
		dialogue("You claw your way back from the brink, diminished but alive."),
		updateStats(s.statsSnapshot()),
		townMenuEvent(c),
	}
}
