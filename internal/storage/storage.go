// Package storage defines the persistence boundary the engine depends on:
// a character save store, a leaderboard store, and a review submitter
// (spec §4.9). Concrete backends live in the memory, postgres, and review
// subpackages; the engine only ever sees these interfaces.
package storage

import (
	"context"
	"errors"
	"time"

	"github.com/duskward/labyrinth/internal/game/character"
)

// ErrNotFound is returned by SaveStore.Load when no record exists for the
// given device id.
var ErrNotFound = errors.New("storage: save record not found")

// SaveStore persists and retrieves one character save per device id (spec
// §4.9, §6.3). Implementations read and write only through
// character.Record; they never construct a character.Character directly.
type SaveStore interface {
	// Save writes rec as the current save for deviceID, replacing any
	// existing save.
	Save(ctx context.Context, deviceID string, rec character.Record) error
	// Load returns the save record for deviceID, or ErrNotFound if none
	// exists.
	Load(ctx context.Context, deviceID string) (character.Record, error)
	// Delete removes the save for deviceID. Deleting an absent save is not
	// an error (spec §4.8 "Revival" death-wipe is idempotent).
	Delete(ctx context.Context, deviceID string) error
}

// LeaderboardEntry is one append-only leaderboard row (spec §6.3): a
// character summary plus run statistics recorded at run end (victory or
// permanent death).
type LeaderboardEntry struct {
	ID               string
	Name             string
	Level            int
	Difficulty       character.Difficulty
	RecordedAt       time.Time
	MonstersDefeated int
	QuestsCompleted  int
	PotionsUsed      int
	SpellsUsed       int
	GoldEarned       int
	GoldSpent        int
	FinalWeapon      string
	FinalArmor       string
	CompanionName    string
	Victorious       bool
}

// LeaderboardStore records finished runs and answers recency queries (spec
// §4.9).
type LeaderboardStore interface {
	// Append adds entry to the leaderboard. Entries are never mutated or
	// removed once appended.
	Append(ctx context.Context, entry LeaderboardEntry) error
	// Recent returns up to limit entries, most recently recorded first.
	Recent(ctx context.Context, limit int) ([]LeaderboardEntry, error)
}

// Review is one player-submitted rating/text pair (spec §6.4).
type Review struct {
	DeviceID string
	Rating   int // 1..5
	Text     string
}

// ReviewResult identifies where a submitted review landed.
type ReviewResult struct {
	Path string
	URL  string
}

// ErrReviewsNotConfigured is returned when no review backend is wired up
// (spec §7: "Review submitter not configured" fails explicitly rather than
// silently dropping the submission).
var ErrReviewsNotConfigured = errors.New("storage: review submitter not configured")

// ReviewSubmitter writes a review to the configured external document store
// (spec §4.9, §6.4).
type ReviewSubmitter interface {
	Submit(ctx context.Context, rev Review) (ReviewResult, error)
}
