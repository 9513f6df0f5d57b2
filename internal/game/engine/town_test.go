package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/duskward/labyrinth/internal/game/character"
	"github.com/duskward/labyrinth/internal/game/item"
)

func newTownCharacter(t *testing.T, seed int64) *State {
	t.Helper()
	s := newTestState(t, seed)
	s.Character = character.New("Rowan", character.Normal, s.DeviceID)
	for _, attr := range character.Attributes {
		s.Character.Attributes[attr] = 10
	}
	character.Finalize(s.Character, s.Dice)
	s.Character.Gold = 200
	s.Phase = PhaseTown
	return s
}

func TestHandleHealer_RestoresHPAndClearsDebuffs(t *testing.T) {
	s := newTownCharacter(t, 1)
	s.Character.HP = 1
	s.Character.Debuffs.PoisonTurns = 3
	Dispatch(context.Background(), s, Action{ID: "town:healer"})
	require.Equal(t, s.Character.MaxHP, s.Character.HP)
	require.Equal(t, 0, s.Character.Debuffs.PoisonTurns)
}

func TestHandleHealer_RejectsWithoutEnoughGold(t *testing.T) {
	s := newTownCharacter(t, 1)
	s.Character.Gold = 0
	s.Character.HP = 1
	events := Dispatch(context.Background(), s, Action{ID: "town:healer"})
	require.Equal(t, 1, s.Character.HP)
	require.Contains(t, lastEventText(events), "enough gold")
}

func TestHandleOnceService_GatedToOncePerVisit(t *testing.T) {
	s := newTownCharacter(t, 7)
	Dispatch(context.Background(), s, Action{ID: "town:eat"})
	require.True(t, s.Character.Utility.AteThisVisit)
	goldAfterFirst := s.Character.Gold
	Dispatch(context.Background(), s, Action{ID: "town:eat"})
	require.Equal(t, goldAfterFirst, s.Character.Gold)
}

func TestHandleTrainMenu_IncreasesAttributeAndCost(t *testing.T) {
	s := newTownCharacter(t, 3)
	startStrength := s.Character.Attribute(character.Strength)
	Dispatch(context.Background(), s, Action{ID: "town:train:Strength"})
	require.Equal(t, startStrength+1, s.Character.Attribute(character.Strength))
	require.Equal(t, 1, s.Character.AttributeTraining[character.Strength])
}

func TestHandleQuestsMenu_RequestAddsQuest(t *testing.T) {
	s := newTownCharacter(t, 9)
	events := Dispatch(context.Background(), s, Action{ID: "town:quests"})
	require.True(t, hasEventKind(events, EventMenu))

	events = Dispatch(context.Background(), s, Action{ID: "town:quests:request"})
	require.Len(t, s.Character.Quests, 1)
	require.Contains(t, lastEventText(events), "New quest")
}

func TestHandleRepairMenu_RestoresDamagedGear(t *testing.T) {
	s := newTownCharacter(t, 4)
	s.Character.Weapons = append(s.Character.Weapons, item.Weapon{Name: "Iron Sword", DamageDie: "1d8", BasePrice: 50, Damaged: true})
	events := Dispatch(context.Background(), s, Action{ID: "town:repair"})
	require.True(t, hasEventKind(events, EventMenu))

	Dispatch(context.Background(), s, Action{ID: "town:repair:weapon:0"})
	require.False(t, s.Character.Weapons[0].Damaged)
}

func TestHandleTown_SaveAndQuit(t *testing.T) {
	s := newTownCharacter(t, 5)
	events := Dispatch(context.Background(), s, Action{ID: "town:save"})
	require.Contains(t, lastEventText(events), "saved")

	Dispatch(context.Background(), s, Action{ID: "town:quit"})
	require.Equal(t, PhaseMainMenu, s.Phase)
	require.Nil(t, s.Character)
}
