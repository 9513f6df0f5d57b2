// Package session hosts one live engine.State per connected device and
// serializes dispatch against each, mirroring the teacher's session
// registry shape but keyed for a single-player, one-state-per-device game
// rather than a multiplayer room roster (spec §4.8, §5).
package session

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/duskward/labyrinth/internal/game/content"
	"github.com/duskward/labyrinth/internal/game/dice"
	"github.com/duskward/labyrinth/internal/game/engine"
)

// Stores is re-exported so callers don't need to import engine directly
// just to construct a Host.
type Stores = engine.Stores

// Host tracks one engine.State per device id and guarantees that no two
// actions for the same device are dispatched concurrently (spec §5: "a
// device's actions are processed strictly one at a time, in arrival
// order").
//
// Invariant: every *engine.State reachable from states is owned by exactly
// one per-device lock; Dispatch never holds the registry lock while running
// a handler, so two different devices can dispatch concurrently.
type Host struct {
	tables *content.Tables
	stores Stores
	logger *zap.Logger
	newSrc func() dice.Source

	mu     sync.Mutex
	states map[string]*lockedState
}

// lockedState pairs one device's engine.State with the lock that serializes
// dispatch against it.
type lockedState struct {
	mu sync.Mutex
	s  *engine.State
}

// NewHost creates a Host backed by tables and stores. newSrc is called once
// per new device session to produce that session's dice.Source; pass a
// constructor that returns a crypto-backed source for real play, or a
// deterministic seeded one for tests.
//
// Precondition: tables, logger, and newSrc must be non-nil.
func NewHost(tables *content.Tables, stores Stores, logger *zap.Logger, newSrc func() dice.Source) *Host {
	return &Host{
		tables: tables,
		stores: stores,
		logger: logger,
		newSrc: newSrc,
		states: make(map[string]*lockedState),
	}
}

// getOrCreate returns the lockedState for deviceID, creating a fresh one
// parked at the main menu if this is the device's first action (spec §4.8).
func (h *Host) getOrCreate(deviceID string) *lockedState {
	h.mu.Lock()
	defer h.mu.Unlock()

	if st, ok := h.states[deviceID]; ok {
		return st
	}
	st := &lockedState{s: engine.NewState(deviceID, h.tables, h.newSrc(), h.stores, h.logger)}
	h.states[deviceID] = st
	return st
}

// Dispatch routes a into deviceID's engine.State and returns the resulting
// events. Actions for the same device never run concurrently; actions for
// different devices always can (spec §5).
func (h *Host) Dispatch(ctx context.Context, deviceID string, a engine.Action) ([]engine.Event, error) {
	if deviceID == "" {
		return nil, fmt.Errorf("session: device id must not be empty")
	}
	st := h.getOrCreate(deviceID)

	st.mu.Lock()
	defer st.mu.Unlock()

	return engine.Dispatch(ctx, st.s, a), nil
}

// Forget drops deviceID's live state, e.g. after the device has been idle
// long enough that the session host wants to free its memory. The device's
// next action starts a fresh State (re-hydrated from storage if a save
// exists, per engine's own "menu:continue" handling).
func (h *Host) Forget(deviceID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.states, deviceID)
}

// SessionCount returns the number of devices with a live, in-memory State.
func (h *Host) SessionCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.states)
}
