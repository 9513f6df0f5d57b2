// Package transport hosts the line-delimited JSON listener that carries
// engine actions and events over TCP, the one concrete stand-in the
// process needs even though the wire protocol itself is out of scope
// (spec §1, §6: "the core... communicates purely through action-in /
// event-out messages").
package transport

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"net"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/duskward/labyrinth/internal/config"
	"github.com/duskward/labyrinth/internal/game/engine"
	"github.com/duskward/labyrinth/internal/game/session"
)

// request is one inbound line: a device id and the action to dispatch
// against that device's state.
type request struct {
	DeviceID string        `json:"device_id"`
	Action   engine.Action `json:"action"`
}

// response is one outbound line: either the events produced by a
// dispatched action, or an error describing why dispatch failed.
type response struct {
	Events []engine.Event `json:"events,omitempty"`
	Error  string         `json:"error,omitempty"`
}

// Acceptor listens for TCP connections and dispatches each line received
// on a connection to the session Host as one action, writing back the
// resulting events as one JSON line per request.
type Acceptor struct {
	cfg    config.TransportConfig
	host   *session.Host
	logger *zap.Logger

	listener net.Listener
	wg       sync.WaitGroup
	quit     chan struct{}
	mu       sync.Mutex
	running  bool
}

// NewAcceptor creates a transport Acceptor backed by host.
//
// Precondition: host and logger must be non-nil.
func NewAcceptor(cfg config.TransportConfig, host *session.Host, logger *zap.Logger) *Acceptor {
	return &Acceptor{
		cfg:    cfg,
		host:   host,
		logger: logger,
		quit:   make(chan struct{}),
	}
}

// ListenAndServe starts the TCP listener and accepts connections until Stop
// is called. This method blocks until the acceptor is stopped.
//
// Precondition: the acceptor must not already be running.
// Postcondition: the listener is closed when this method returns.
func (a *Acceptor) ListenAndServe() error {
	start := time.Now()

	listener, err := net.Listen("tcp", a.cfg.Addr())
	if err != nil {
		return fmt.Errorf("listening on %s: %w", a.cfg.Addr(), err)
	}

	a.mu.Lock()
	a.listener = listener
	a.running = true
	a.mu.Unlock()

	a.logger.Info("transport acceptor listening",
		zap.String("addr", listener.Addr().String()),
		zap.Duration("startup", time.Since(start)),
	)

	for {
		conn, err := listener.Accept()
		if err != nil {
			select {
			case <-a.quit:
				return nil
			default:
				a.logger.Error("accepting connection", zap.Error(err))
				continue
			}
		}

		a.wg.Add(1)
		go a.handleConn(conn)
	}
}

// handleConn processes one TCP connection: each newline-delimited JSON
// request is dispatched as one engine action, and the resulting events
// (or the dispatch error) are written back as one JSON response line.
func (a *Acceptor) handleConn(raw net.Conn) {
	defer a.wg.Done()
	start := time.Now()
	addr := raw.RemoteAddr().String()

	a.logger.Info("client connected", zap.String("remote_addr", addr))
	defer raw.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		select {
		case <-a.quit:
			cancel()
		case <-ctx.Done():
		}
	}()

	scanner := bufio.NewScanner(raw)
	enc := json.NewEncoder(raw)

	for scanner.Scan() {
		if a.cfg.ReadTimeout > 0 {
			raw.SetReadDeadline(time.Now().Add(a.cfg.ReadTimeout))
		}

		var req request
		if err := json.Unmarshal(scanner.Bytes(), &req); err != nil {
			enc.Encode(response{Error: fmt.Sprintf("malformed request: %v", err)})
			continue
		}

		events, err := a.host.Dispatch(ctx, req.DeviceID, req.Action)
		if err != nil {
			enc.Encode(response{Error: err.Error()})
			continue
		}

		if a.cfg.WriteTimeout > 0 {
			raw.SetWriteDeadline(time.Now().Add(a.cfg.WriteTimeout))
		}
		if err := enc.Encode(response{Events: events}); err != nil {
			a.logger.Debug("writing response", zap.String("remote_addr", addr), zap.Error(err))
			return
		}
	}

	a.logger.Info("session ended",
		zap.String("remote_addr", addr),
		zap.Duration("duration", time.Since(start)),
	)
}

// Stop gracefully stops the acceptor, closing the listener and waiting for
// all active connections to finish.
func (a *Acceptor) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.running {
		return
	}
	a.running = false

	close(a.quit)
	if a.listener != nil {
		a.listener.Close()
	}
	a.wg.Wait()

	a.logger.Info("transport acceptor stopped")
}

// Addr returns the actual listening address, or empty string if not yet
// listening.
func (a *Acceptor) Addr() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.listener != nil {
		return a.listener.Addr().String()
	}
	return ""
}

// IsRunning reports whether the acceptor is currently accepting
// connections.
func (a *Acceptor) IsRunning() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.running
}
