package progress

import (
	"maps"
	"time"

	"github.com/abhisek/financelab/internal/content"
	"github.com/abhisek/financelab/internal/scoring"
)

// mergeSkillProgress folds one session score into existing progress.
func mergeSkillProgress(existing SkillProgress, score float64) SkillProgress {
	return SkillProgress{
		BestScore:         max(existing.BestScore, score),
		Stars:             max(existing.Stars, scoring.ComputeStars(score)),
		SessionsCompleted: existing.SessionsCompleted + 1,
	}
}

// UpdateSkillProgress records a session score for (module, skill, mode).
// Missing module and skill entries start from zeroed progress in both modes.
// The input state is not modified and shares no changed map with the result.
func UpdateSkillProgress(state AppState, moduleID, skillID string, mode content.Mode, score float64) AppState {
	modules := make(map[string]ModuleProgress, len(state.Modules)+1)
	maps.Copy(modules, state.Modules)

	mod := make(ModuleProgress, len(state.Modules[moduleID])+1)
	maps.Copy(mod, state.Modules[moduleID])

	skill := mod[skillID]
	mod[skillID] = skill.with(mode, mergeSkillProgress(skill.For(mode), score))
	modules[moduleID] = mod

	state.Modules = modules
	return state
}

// mergeWeakIDs adds wrong ids, then removes correct ids, then keeps the first
// MaxWeakQuestions in insertion order. Ids already present keep their place.
func mergeWeakIDs(existing, wrongIDs, correctIDs []string) []string {
	out := make([]string, 0, len(existing)+len(wrongIDs))
	seen := make(map[string]bool, len(existing)+len(wrongIDs))
	add := func(id string) {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	for _, id := range existing {
		add(id)
	}
	for _, id := range wrongIDs {
		add(id)
	}

	if len(correctIDs) > 0 {
		remove := make(map[string]bool, len(correctIDs))
		for _, id := range correctIDs {
			remove[id] = true
		}
		kept := out[:0]
		for _, id := range out {
			if !remove[id] {
				kept = append(kept, id)
			}
		}
		out = kept
	}

	if len(out) > MaxWeakQuestions {
		out = out[:MaxWeakQuestions]
	}
	return out
}

// UpdateWeakQuestions merges a session's wrong and correct question ids into
// the weak-question set. An id that is both wrong and correct in the same call
// ends up removed.
func UpdateWeakQuestions(state AppState, wrongIDs, correctIDs []string) AppState {
	state.WeakQuestionIDs = mergeWeakIDs(state.WeakQuestionIDs, wrongIDs, correctIDs)
	return state
}

// Completion describes a finished session.
type Completion struct {
	SessionID   string
	Mode        content.Mode
	ModuleID    string
	SkillID     string
	StartedAt   time.Time
	CompletedAt time.Time
	Results     []content.QuestionResult
}

// Outcome summarizes what a completion changed, for display.
type Outcome struct {
	Correct  int
	Total    int
	Score    float64
	Stars    scoring.Stars
	XPGained int
	Streak   scoring.Streak

	// Before and After are the (module, skill, mode) progress around the update.
	Before SkillProgress
	After  SkillProgress
}

// NewBest reports whether the session beat the previous best score.
func (o Outcome) NewBest() bool {
	return o.After.BestScore > o.Before.BestScore
}

// CompleteSession folds a finished session into state: skill progress, the
// weak-question set, XP, the day streak and the last-session record.
func CompleteSession(state AppState, c Completion) (AppState, Outcome) {
	correct, _ := scoring.Counts(c.Results)
	score := scoring.Score(c.Results)
	xp := scoring.ComputeXP(c.Results)
	streak := scoring.ComputeStreak(state.StreakCount, state.LastCompletedDate, c.CompletedAt)

	var wrongIDs, correctIDs []string
	for _, r := range c.Results {
		if r.Correct {
			correctIDs = append(correctIDs, r.QuestionID)
		} else {
			wrongIDs = append(wrongIDs, r.QuestionID)
		}
	}

	before, _ := SkillProgressFor(state, c.ModuleID, c.SkillID, c.Mode)

	next := UpdateSkillProgress(state, c.ModuleID, c.SkillID, c.Mode, score)
	next = UpdateWeakQuestions(next, wrongIDs, correctIDs)
	next.XPTotal += xp
	next.StreakCount = streak.Count
	next.LastCompletedDate = streak.LastCompletedDate
	next.LastSession = &LastSession{
		SessionID:       c.SessionID,
		Mode:            c.Mode,
		ModuleID:        c.ModuleID,
		SkillID:         c.SkillID,
		StartedAt:       c.StartedAt.UTC(),
		CompletedAt:     c.CompletedAt.UTC(),
		QuestionResults: append([]content.QuestionResult{}, c.Results...),
	}

	after, _ := SkillProgressFor(next, c.ModuleID, c.SkillID, c.Mode)

	return next, Outcome{
		Correct:  correct,
		Total:    len(c.Results),
		Score:    score,
		Stars:    scoring.ComputeStars(score),
		XPGained: xp,
		Streak:   streak,
		Before:   before,
		After:    after,
	}
}
