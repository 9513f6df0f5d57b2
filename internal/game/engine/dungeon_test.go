package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHandleLabyrinth_BackReturnsToTown(t *testing.T) {
	s := newTownCharacter(t, 6)
	s.Phase = PhaseLabyrinth
	Dispatch(context.Background(), s, Action{ID: "dng:back"})
	require.Equal(t, PhaseTown, s.Phase)
}

func TestEnterNextRoom_GeneratesRoomAndStartsEncounter(t *testing.T) {
	s := newTownCharacter(t, 15)
	s.Phase = PhaseLabyrinth
	events := Dispatch(context.Background(), s, Action{ID: "dng:deeper"})
	require.Equal(t, 1, s.Depth)
	require.NotNil(t, s.Room)
	require.Contains(t, []Phase{PhaseCombat, PhaseRevivalRoll}, s.Phase)
	require.True(t, hasEventKind(events, EventMenu))
}

func TestHandleListen_GatedOncePerDepth(t *testing.T) {
	s := newTownCharacter(t, 8)
	s.Phase = PhaseLabyrinth
	Dispatch(context.Background(), s, Action{ID: "dng:listen"})
	require.True(t, s.Character.Utility.ListenUsed)
	events := Dispatch(context.Background(), s, Action{ID: "dng:listen"})
	require.Contains(t, lastEventText(events), "already listened")
}

func TestHandleDungeonDivine_GatedOncePerDepth(t *testing.T) {
	s := newTownCharacter(t, 21)
	s.Phase = PhaseLabyrinth
	Dispatch(context.Background(), s, Action{ID: "dng:divine"})
	require.True(t, s.Character.Utility.DivineUsed)
	events := Dispatch(context.Background(), s, Action{ID: "dng:divine"})
	require.Contains(t, lastEventText(events), "already shown")
}
