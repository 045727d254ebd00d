package store

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/abhisek/financelab/internal/progress"
)

// ByteStore persists a single serialized snapshot.
type ByteStore interface {
	// Load returns the stored bytes, or nil if nothing has been saved.
	Load(ctx context.Context) ([]byte, error)

	// Save replaces the stored bytes.
	Save(ctx context.Context, value []byte) error

	// Clear removes the stored bytes.
	Clear(ctx context.Context) error
}

// StateStore owns the in-memory learner state and writes every change
// through to a ByteStore. Reducers stay pure; persistence happens here.
type StateStore struct {
	mu     sync.Mutex
	repo   ByteStore
	state  progress.AppState
	logger *slog.Logger
}

// LoadState reads the persisted snapshot. Unreadable or partially corrupt
// snapshots fall back to defaults and are logged, never returned as errors;
// only transport failures are.
func LoadState(ctx context.Context, repo ByteStore, logger *slog.Logger) (*StateStore, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	raw, err := repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load state: %w", err)
	}

	state, notes := progress.Decode(raw)
	for _, n := range notes {
		logger.Warn("state snapshot field reset to default", "detail", n)
	}
	if raw == nil {
		logger.Info("no saved state, starting fresh")
	}

	return &StateStore{repo: repo, state: state, logger: logger}, nil
}

// Get returns the current state. Callers must treat it as read-only.
func (s *StateStore) Get() progress.AppState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Apply computes the next state with update, persists it, and only then makes
// it current. On a save failure the previous state stays current.
func (s *StateStore) Apply(ctx context.Context, update func(progress.AppState) progress.AppState) (progress.AppState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := update(s.state)
	raw, err := progress.Encode(next)
	if err != nil {
		return s.state, err
	}
	if err := s.repo.Save(ctx, raw); err != nil {
		return s.state, fmt.Errorf("save state: %w", err)
	}
	s.state = next
	return next, nil
}

// Reset clears the persisted snapshot and returns to the default state.
func (s *StateStore) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.Clear(ctx); err != nil {
		return fmt.Errorf("reset state: %w", err)
	}
	s.state = progress.DefaultState()
	s.logger.Info("learner state reset")
	return nil
}
