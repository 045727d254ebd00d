// Package session orchestrates a practice session: it picks questions,
// grades answers and folds the finished session into learner state.
package session

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/abhisek/financelab/internal/content"
	"github.com/abhisek/financelab/internal/progress"
	"github.com/abhisek/financelab/internal/selection"
	"github.com/abhisek/financelab/internal/store"
	"github.com/google/uuid"
)

// Service starts and finishes sessions against a catalog and a state store.
type Service struct {
	Catalog  *content.Catalog
	Selector *selection.Selector
	States   *store.StateStore
	Logger   *slog.Logger

	// Now returns the current local time. Defaults to time.Now.
	Now func() time.Time
}

// NewService creates a Service.
func NewService(catalog *content.Catalog, selector *selection.Selector, states *store.StateStore, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{
		Catalog:  catalog,
		Selector: selector,
		States:   states,
		Logger:   logger,
		Now:      time.Now,
	}
}

// Start builds a new session for (mode, module, skill), prioritizing the
// learner's weak questions.
func (s *Service) Start(mode content.Mode, moduleID, skillID string) (*Session, error) {
	pool, err := s.Catalog.Pool(moduleID, skillID, mode)
	if err != nil {
		return nil, err
	}
	if len(pool) == 0 {
		return nil, ErrEmptyPool
	}

	weak := s.States.Get().WeakQuestionIDs
	questions := s.Selector.Select(pool, weak, s.Selector.SessionLength())

	shown := make([][]content.Option, len(questions))
	for i, q := range questions {
		if q.Type == content.TypeMCQ {
			shown[i] = s.Selector.ShuffleOptions(q)
		}
	}

	sess := &Session{
		ID:        uuid.New().String(),
		Mode:      mode,
		ModuleID:  moduleID,
		SkillID:   skillID,
		Questions: questions,
		StartedAt: s.Now(),
		shown:     shown,
	}

	s.Logger.Info("session started",
		"session_id", sess.ID,
		"mode", string(mode),
		"module_id", moduleID,
		"skill_id", skillID,
		"questions", len(questions),
		"pool", len(pool),
	)
	return sess, nil
}

// Finish folds a fully answered session into learner state and persists it.
func (s *Service) Finish(ctx context.Context, sess *Session) (*Summary, error) {
	if sess.finished {
		return nil, ErrSessionComplete
	}
	if !sess.Done() {
		return nil, ErrSessionIncomplete
	}

	completion := progress.Completion{
		SessionID:   sess.ID,
		Mode:        sess.Mode,
		ModuleID:    sess.ModuleID,
		SkillID:     sess.SkillID,
		StartedAt:   sess.StartedAt,
		CompletedAt: s.Now(),
		Results:     sess.Results,
	}

	var outcome progress.Outcome
	_, err := s.States.Apply(ctx, func(st progress.AppState) progress.AppState {
		next, out := progress.CompleteSession(st, completion)
		outcome = out
		return next
	})
	if err != nil {
		return nil, fmt.Errorf("complete session: %w", err)
	}
	sess.finished = true

	s.Logger.Info("session completed",
		"session_id", sess.ID,
		"correct", outcome.Correct,
		"total", outcome.Total,
		"stars", int(outcome.Stars),
		"xp_gained", outcome.XPGained,
		"streak", outcome.Streak.Count,
	)

	return BuildSummary(sess, completion.CompletedAt, outcome), nil
}
