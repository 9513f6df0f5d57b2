package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/duskward/labyrinth/internal/game/character"
	"github.com/duskward/labyrinth/internal/storage"
)

// SaveStore is a storage.SaveStore backed by a single "saves" table keyed
// by device_id, storing the character.Record as jsonb.
type SaveStore struct {
	db *pgxpool.Pool
}

// NewSaveStore creates a SaveStore backed by the given pool.
//
// Precondition: db must be a valid, open connection pool.
func NewSaveStore(db *pgxpool.Pool) *SaveStore {
	return &SaveStore{db: db}
}

// Save upserts rec as the current save for deviceID.
//
// Precondition: deviceID must be non-empty.
// Postcondition: Returns nil on success, or an error wrapping the marshal
// or query failure.
func (s *SaveStore) Save(ctx context.Context, deviceID string, rec character.Record) error {
	payload, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshalling save record: %w", err)
	}

	_, err = s.db.Exec(ctx, `
		INSERT INTO saves (device_id, record, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (device_id) DO UPDATE SET record = $2, updated_at = NOW()`,
		deviceID, payload,
	)
	if err != nil {
		return fmt.Errorf("saving record: %w", err)
	}
	return nil
}

// Load returns the save record for deviceID, or storage.ErrNotFound.
//
// Precondition: deviceID must be non-empty.
func (s *SaveStore) Load(ctx context.Context, deviceID string) (character.Record, error) {
	var payload []byte
	err := s.db.QueryRow(ctx,
		`SELECT record FROM saves WHERE device_id = $1`, deviceID,
	).Scan(&payload)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("querying save record: %w", err)
	}

	var rec character.Record
	if err := json.Unmarshal(payload, &rec); err != nil {
		return nil, fmt.Errorf("unmarshalling save record: %w", err)
	}
	return rec, nil
}

// Delete removes the save for deviceID. Deleting an absent save is not an
// error.
func (s *SaveStore) Delete(ctx context.Context, deviceID string) error {
	_, err := s.db.Exec(ctx, `DELETE FROM saves WHERE device_id = $1`, deviceID)
	if err != nil {
		return fmt.Errorf("deleting save record: %w", err)
	}
	return nil
}
