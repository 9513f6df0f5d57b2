// Package memory provides in-memory SaveStore and LeaderboardStore
// implementations for tests and local runs, following the mutex-protected
// map shape the teacher uses for its session manager.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/duskward/labyrinth/internal/game/character"
	"github.com/duskward/labyrinth/internal/storage"
)

// SaveStore is a storage.SaveStore backed by a mutex-protected map. Safe for
// concurrent use.
type SaveStore struct {
	mu    sync.RWMutex
	saves map[string]character.Record
}

// NewSaveStore returns an empty SaveStore.
func NewSaveStore() *SaveStore {
	return &SaveStore{saves: make(map[string]character.Record)}
}

// Save writes rec as the current save for deviceID.
func (s *SaveStore) Save(_ context.Context, deviceID string, rec character.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saves[deviceID] = rec
	return nil
}

// Load returns the save record for deviceID, or storage.ErrNotFound.
func (s *SaveStore) Load(_ context.Context, deviceID string) (character.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.saves[deviceID]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return rec, nil
}

// Delete removes the save for deviceID. A no-op if none exists.
func (s *SaveStore) Delete(_ context.Context, deviceID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.saves, deviceID)
	return nil
}

// LeaderboardStore is a storage.LeaderboardStore backed by an
// append-only, mutex-protected slice.
type LeaderboardStore struct {
	mu      sync.RWMutex
	entries []storage.LeaderboardEntry
}

// NewLeaderboardStore returns an empty LeaderboardStore.
func NewLeaderboardStore() *LeaderboardStore {
	return &LeaderboardStore{}
}

// Append adds entry to the leaderboard.
func (l *LeaderboardStore) Append(_ context.Context, entry storage.LeaderboardEntry) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, entry)
	return nil
}

// Recent returns up to limit entries, most recently recorded first.
func (l *LeaderboardStore) Recent(_ context.Context, limit int) ([]storage.LeaderboardEntry, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	sorted := make([]storage.LeaderboardEntry, len(l.entries))
	copy(sorted, l.entries)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].RecordedAt.After(sorted[j].RecordedAt) })

	if limit > 0 && limit < len(sorted) {
		sorted = sorted[:limit]
	}
	return sorted, nil
}

// ReviewSubmitter is a storage.ReviewSubmitter that records submissions
// in-memory, for tests that don't need to reach a real document store.
type ReviewSubmitter struct {
	mu        sync.Mutex
	submitted []storage.Review
}

// NewReviewSubmitter returns a ReviewSubmitter with no submissions.
func NewReviewSubmitter() *ReviewSubmitter {
	return &ReviewSubmitter{}
}

// Submit records rev and returns a synthetic path/URL.
func (r *ReviewSubmitter) Submit(_ context.Context, rev storage.Review) (storage.ReviewResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.submitted = append(r.submitted, rev)
	path := "reviews/" + rev.DeviceID + "-" + time.Now().UTC().Format("20060102T150405Z") + ".txt"
	return storage.ReviewResult{Path: path, URL: ""}, nil
}

// Submissions returns every review submitted so far, for test assertions.
func (r *ReviewSubmitter) Submissions() []storage.Review {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]storage.Review, len(r.submitted))
	copy(out, r.submitted)
	return out
}
