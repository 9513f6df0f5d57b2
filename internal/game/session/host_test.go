package session

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/duskward/labyrinth/internal/game/content"
	"github.com/duskward/labyrinth/internal/game/dice"
	"github.com/duskward/labyrinth/internal/game/engine"
	"github.com/duskward/labyrinth/internal/storage/memory"
)

func newTestHost(t *testing.T) *Host {
	t.Helper()
	tables := &content.Tables{}
	stores := Stores{
		Save:        memory.NewSaveStore(),
		Leaderboard: memory.NewLeaderboardStore(),
		Review:      memory.NewReviewSubmitter(),
	}
	seed := int64(0)
	var mu sync.Mutex
	newSrc := func() dice.Source {
		mu.Lock()
		defer mu.Unlock()
		seed++
		return dice.NewSeededSource(seed)
	}
	return NewHost(tables, stores, zap.NewNop(), newSrc)
}

func TestHost_DispatchCreatesStateOnFirstAction(t *testing.T) {
	h := newTestHost(t)
	events, err := h.Dispatch(context.Background(), "device-1", engine.Action{ID: "menu:new_game"})
	require.NoError(t, err)
	require.NotEmpty(t, events)
	require.Equal(t, 1, h.SessionCount())
}

func TestHost_DispatchRejectsEmptyDeviceID(t *testing.T) {
	h := newTestHost(t)
	_, err := h.Dispatch(context.Background(), "", engine.Action{ID: "menu:new_game"})
	require.Error(t, err)
}

func TestHost_ForgetDropsState(t *testing.T) {
	h := newTestHost(t)
	h.Dispatch(context.Background(), "device-1", engine.Action{ID: "menu:new_game"})
	require.Equal(t, 1, h.SessionCount())
	h.Forget("device-1")
	require.Equal(t, 0, h.SessionCount())
}

func TestHost_ConcurrentDevicesDoNotRace(t *testing.T) {
	h := newTestHost(t)
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		device := "device-" + string(rune('a'+i))
		wg.Add(1)
		go func(d string) {
			defer wg.Done()
			for j := 0; j < 10; j++ {
				h.Dispatch(context.Background(), d, engine.Action{ID: "menu:new_game"})
			}
		}(device)
	}
	wg.Wait()
	require.Equal(t, 20, h.SessionCount())
}
