package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// StateKey is the key the learner state snapshot is stored under.
const StateKey = "financeLabState:v1"

// Get returns the value stored under key. ok is false when the key is absent.
func (s *Store) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get %q: %w", key, err)
	}
	return value, true, nil
}

// Set stores value under key, replacing any previous value.
func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("set %q: %w", key, err)
	}
	return nil
}

// Delete removes key. Deleting an absent key is not an error.
func (s *Store) Delete(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key); err != nil {
		return fmt.Errorf("delete %q: %w", key, err)
	}
	return nil
}

// StateRepo returns the learner-state byte store backed by this store.
func (s *Store) StateRepo() ByteStore {
	return &kvRecord{store: s, key: StateKey}
}

// kvRecord adapts one key of the Store to ByteStore.
type kvRecord struct {
	store *Store
	key   string
}

func (r *kvRecord) Load(ctx context.Context) ([]byte, error) {
	value, ok, err := r.store.Get(ctx, r.key)
	if err != nil || !ok {
		return nil, err
	}
	return value, nil
}

func (r *kvRecord) Save(ctx context.Context, value []byte) error {
	return r.store.Set(ctx, r.key, value)
}

func (r *kvRecord) Clear(ctx context.Context) error {
	return r.store.Delete(ctx, r.key)
}
