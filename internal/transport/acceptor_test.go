package transport

import (
	"bufio"
	"encoding/json"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/duskward/labyrinth/internal/config"
	"github.com/duskward/labyrinth/internal/game/content"
	"github.com/duskward/labyrinth/internal/game/dice"
	"github.com/duskward/labyrinth/internal/game/engine"
	"github.com/duskward/labyrinth/internal/game/session"
	"github.com/duskward/labyrinth/internal/storage/memory"
)

func newTestAcceptor(t *testing.T) *Acceptor {
	t.Helper()
	logger := zaptest.NewLogger(t)
	tables := &content.Tables{}
	stores := session.Stores{
		Save:        memory.NewSaveStore(),
		Leaderboard: memory.NewLeaderboardStore(),
		Review:      memory.NewReviewSubmitter(),
	}
	host := session.NewHost(tables, stores, logger, func() dice.Source {
		return dice.NewSeededSource(1)
	})
	cfg := config.TransportConfig{
		Host:         "127.0.0.1",
		Port:         0,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 5 * time.Second,
	}
	return NewAcceptor(cfg, host, logger)
}

func waitForRunning(t *testing.T, acc *Acceptor) {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		if acc.IsRunning() && acc.Addr() != "" {
			return
		}
		select {
		case <-deadline:
			t.Fatal("acceptor never started listening")
		case <-time.After(10 * time.Millisecond):
		}
	}
}

func TestAcceptor_DispatchesActionAndReturnsEvents(t *testing.T) {
	acc := newTestAcceptor(t)
	errCh := make(chan error, 1)
	go func() { errCh <- acc.ListenAndServe() }()
	waitForRunning(t, acc)
	defer acc.Stop()

	conn, err := net.Dial("tcp", acc.Addr())
	require.NoError(t, err)
	defer conn.Close()

	req := request{DeviceID: "device-1", Action: engine.Action{ID: "menu:new_game"}}
	body, err := json.Marshal(req)
	require.NoError(t, err)
	_, err = conn.Write(append(body, '\n'))
	require.NoError(t, err)

	scanner := bufio.NewScanner(conn)
	require.True(t, scanner.Scan())

	var resp response
	require.NoError(t, json.Unmarshal(scanner.Bytes(), &resp))
	require.Empty(t, resp.Error)
	require.NotEmpty(t, resp.Events)
}

func TestAcceptor_MalformedRequestReturnsError(t *testing.T) {
	acc := newTestAcceptor(t)
	errCh := make(chan error, 1)
	go func() { errCh <- acc.ListenAndServe() }()
	waitForRunning(t, acc)
	defer acc.Stop()

	conn, err := net.Dial("tcp", acc.Addr())
	require.NoError(t, err)
	defer conn.Close()

	_, err = conn.Write([]byte("not json\n"))
	require.NoError(t, err)

	scanner := bufio.NewScanner(conn)
	require.True(t, scanner.Scan())

	var resp response
	require.NoError(t, json.Unmarshal(scanner.Bytes(), &resp))
	require.NotEmpty(t, resp.Error)
}

func TestAcceptor_RejectsEmptyDeviceID(t *testing.T) {
	acc := newTestAcceptor(t)
	errCh := make(chan error, 1)
	go func() { errCh <- acc.ListenAndServe() }()
	waitForRunning(t, acc)
	defer acc.Stop()

	conn, err := net.Dial("tcp", acc.Addr())
	require.NoError(t, err)
	defer conn.Close()

	req := request{Action: engine.Action{ID: "menu:new_game"}}
	body, err := json.Marshal(req)
	require.NoError(t, err)
	_, err = conn.Write(append(body, '\n'))
	require.NoError(t, err)

	scanner := bufio.NewScanner(conn)
	require.True(t, scanner.Scan())

	var resp response
	require.NoError(t, json.Unmarshal(scanner.Bytes(), &resp))
	require.NotEmpty(t, resp.Error)
}

func TestAcceptor_StopClosesListener(t *testing.T) {
	acc := newTestAcceptor(t)
	errCh := make(chan error, 1)
	go func() { errCh <- acc.ListenAndServe() }()
	waitForRunning(t, acc)

	acc.Stop()
	require.False(t, acc.IsRunning())
	require.NoError(t, <-errCh)
}
