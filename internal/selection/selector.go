// Package selection assembles the ordered question list for a session.
package selection

import "github.com/abhisek/financelab/internal/content"

// Selector builds session question lists.
type Selector struct {
	cfg Config
	rng Rand
}

// New creates a Selector. A nil rng uses the process-wide generator.
func New(cfg Config, rng Rand) *Selector {
	if rng == nil {
		rng = processRand{}
	}
	if cfg.BackfillFactor <= 0 {
		cfg.BackfillFactor = DefaultConfig().BackfillFactor
	}
	if cfg.MaxLength < cfg.MinLength {
		cfg.MaxLength = cfg.MinLength
	}
	return &Selector{cfg: cfg, rng: rng}
}

// SessionLength draws a session length uniformly from the configured range.
func (s *Selector) SessionLength() int {
	span := s.cfg.MaxLength - s.cfg.MinLength + 1
	if span <= 1 {
		return s.cfg.MinLength
	}
	return s.cfg.MinLength + s.rng.IntN(span)
}

// Select returns exactly length questions for a non-empty pool and a positive
// length, and an empty result otherwise. Neither pool nor weakIDs is modified.
//
// Up to MaxWeakPriority questions named in weakIDs (in weakIDs order) lead the
// session; the rest of the pool follows in random order. When the pool is
// smaller than length, already chosen questions repeat cyclically, bounded by
// BackfillFactor × length attempts.
func (s *Selector) Select(pool []content.Question, weakIDs []string, length int) []content.Question {
	if len(pool) == 0 || length <= 0 {
		return nil
	}

	byID := make(map[string]content.Question, len(pool))
	for _, q := range pool {
		byID[q.ID] = q
	}

	// Weak questions first.
	picked := make([]content.Question, 0, length)
	pickedIDs := make(map[string]bool, length)
	for _, id := range weakIDs {
		if len(picked) >= s.cfg.MaxWeakPriority {
			break
		}
		q, ok := byID[id]
		if !ok || pickedIDs[id] {
			continue
		}
		picked = append(picked, q)
		pickedIDs[id] = true
	}

	// Fill from a shuffled copy of the remainder.
	remaining := make([]content.Question, 0, len(pool))
	for _, q := range pool {
		if !pickedIDs[q.ID] {
			remaining = append(remaining, q)
		}
	}
	shuffle(s.rng, remaining)
	for _, q := range remaining {
		if len(picked) >= length {
			break
		}
		picked = append(picked, q)
		pickedIDs[q.ID] = true
	}

	// Pool smaller than the session: repeat, bounded.
	if len(picked) < length {
		source := picked
		if len(source) == 0 {
			source = pool
		}
		n := len(source)
		for i := 0; len(picked) < length && i < length*s.cfg.BackfillFactor; i++ {
			picked = append(picked, source[i%n])
		}
	}

	if len(picked) > length {
		picked = picked[:length]
	}
	return picked
}

// ShuffleOptions returns the options of q in a random display order.
func (s *Selector) ShuffleOptions(q content.Question) []content.Option {
	if len(q.Options) == 0 {
		return nil
	}
	opts := make([]content.Option, len(q.Options))
	copy(opts, q.Options)
	shuffle(s.rng, opts)
	return opts
}
