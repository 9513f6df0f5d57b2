package engine

import (
	"context"

	"go.uber.org/zap"
)

// handlerFunc processes one Action against State and returns the events to
// emit. Handlers are pure with respect to everything except State and the
// injected Stores/Dice; they never return an error for a game-logic reject,
// only for the storage boundary (spec §7), and those are logged and
// converted into a dialogue event rather than propagated to the caller.
type handlerFunc func(context.Context, *State, Action) []Event

var handlers = map[Phase]handlerFunc{
	PhaseMainMenu:         handleMainMenu,
	PhaseSelectDifficulty: handleSelectDifficulty,
	PhaseIntro:            handleIntro,
	PhaseCreateName:       handleCreateName,
	PhaseCreateAttrs:      handleCreateAttrs,
	PhaseTown:             handleTown,
	PhaseLabyrinth:        handleLabyrinth,
	PhaseCombat:           handleCombat,
	PhaseRevivalRoll:      handleRevivalRoll,
	PhaseVictory:          handleVictory,
}

// Dispatch routes a into the handler registered for state.Phase and returns
// the resulting events (spec §4.8). An action id the current phase's
// handler doesn't recognize is ignored: the handler re-renders its own
// current menu rather than mutating state or returning an error (spec §7).
func Dispatch(ctx context.Context, state *State, a Action) []Event {
	h, ok := handlers[state.Phase]
	if !ok {
		state.Logger.Error("dispatch: no handler registered for phase", zap.String("phase", string(state.Phase)))
		return []Event{dialogue("Something has gone wrong. Returning to the main menu."), mainMenuEvent()}
	}
	return h(ctx, state, a)
}
