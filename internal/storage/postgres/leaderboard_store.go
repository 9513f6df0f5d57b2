package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/duskward/labyrinth/internal/game/character"
	"github.com/duskward/labyrinth/internal/storage"
)

// LeaderboardStore is a storage.LeaderboardStore backed by an append-only
// "leaderboard" table.
type LeaderboardStore struct {
	db *pgxpool.Pool
}

// NewLeaderboardStore creates a LeaderboardStore backed by the given pool.
//
// Precondition: db must be a valid, open connection pool.
func NewLeaderboardStore(db *pgxpool.Pool) *LeaderboardStore {
	return &LeaderboardStore{db: db}
}

// Append inserts entry, assigning a fresh id if entry.ID is empty.
func (l *LeaderboardStore) Append(ctx context.Context, entry storage.LeaderboardEntry) error {
	id := entry.ID
	if id == "" {
		id = uuid.NewString()
	}

	_, err := l.db.Exec(ctx, `
		INSERT INTO leaderboard
			(id, name, level, difficulty, recorded_at, monsters_defeated,
			 quests_completed, potions_used, spells_used, gold_earned,
			 gold_spent, final_weapon, final_armor, companion_name, victorious)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)`,
		id, entry.Name, entry.Level, string(entry.Difficulty), entry.RecordedAt,
		entry.MonstersDefeated, entry.QuestsCompleted, entry.PotionsUsed,
		entry.SpellsUsed, entry.GoldEarned, entry.GoldSpent, entry.FinalWeapon,
		entry.FinalArmor, entry.CompanionName, entry.Victorious,
	)
	if err != nil {
		return fmt.Errorf("appending leaderboard entry: %w", err)
	}
	return nil
}

// Recent returns up to limit entries, most recently recorded first.
//
// Precondition: limit must be > 0.
func (l *LeaderboardStore) Recent(ctx context.Context, limit int) ([]storage.LeaderboardEntry, error) {
	rows, err := l.db.Query(ctx, `
		SELECT id, name, level, difficulty, recorded_at, monsters_defeated,
		       quests_completed, potions_used, spells_used, gold_earned,
		       gold_spent, final_weapon, final_armor, companion_name, victorious
		FROM leaderboard ORDER BY recorded_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("querying leaderboard: %w", err)
	}
	defer rows.Close()

	entries := make([]storage.LeaderboardEntry, 0, limit)
	for rows.Next() {
		var e storage.LeaderboardEntry
		var difficulty string
		if err := rows.Scan(
			&e.ID, &e.Name, &e.Level, &difficulty, &e.RecordedAt, &e.MonstersDefeated,
			&e.QuestsCompleted, &e.PotionsUsed, &e.SpellsUsed, &e.GoldEarned,
			&e.GoldSpent, &e.FinalWeapon, &e.FinalArmor, &e.CompanionName, &e.Victorious,
		); err != nil {
			return nil, fmt.Errorf("scanning leaderboard row: %w", err)
		}
		e.Difficulty = character.Difficulty(difficulty)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
