// Package progress holds the persisted learner state and the pure reducers
// that fold a completed session into it.
package progress

import (
	"time"

	"github.com/abhisek/financelab/internal/content"
	"github.com/abhisek/financelab/internal/scoring"
)

// MaxWeakQuestions caps the weak-question working set.
const MaxWeakQuestions = 50

// SkillProgress is the durable progress of one skill in one mode.
// BestScore and Stars never decrease.
type SkillProgress struct {
	BestScore         float64       `json:"bestScore"`
	Stars             scoring.Stars `json:"stars"`
	SessionsCompleted int           `json:"sessionsCompleted"`
}

// SkillModes holds a skill's progress for both session modes.
type SkillModes struct {
	Learn    SkillProgress `json:"learn"`
	Practice SkillProgress `json:"practice"`
}

// For returns the progress for mode.
func (s SkillModes) For(mode content.Mode) SkillProgress {
	if mode == content.ModePractice {
		return s.Practice
	}
	return s.Learn
}

// with returns a copy of s with mode's progress replaced.
func (s SkillModes) with(mode content.Mode, p SkillProgress) SkillModes {
	if mode == content.ModePractice {
		s.Practice = p
	} else {
		s.Learn = p
	}
	return s
}

// ModuleProgress maps skill id to that skill's progress.
type ModuleProgress map[string]SkillModes

// LastSession summarizes the most recently completed session.
type LastSession struct {
	SessionID       string
	Mode            content.Mode
	ModuleID        string
	SkillID         string
	StartedAt       time.Time
	CompletedAt     time.Time
	QuestionResults []content.QuestionResult
}

// Missed returns the results answered incorrectly, in session order.
func (ls *LastSession) Missed() []content.QuestionResult {
	var out []content.QuestionResult
	for _, r := range ls.QuestionResults {
		if !r.Correct {
			out = append(out, r)
		}
	}
	return out
}

// AppState is the persisted root of all learner state.
type AppState struct {
	XPTotal     int
	StreakCount int

	// LastCompletedDate is a YYYY-MM-DD calendar date, or "" if no session
	// has been completed.
	LastCompletedDate string

	// Modules maps module id to per-skill progress.
	Modules map[string]ModuleProgress

	// WeakQuestionIDs is an insertion-ordered set of at most
	// MaxWeakQuestions ids.
	WeakQuestionIDs []string

	// LastSession is nil until the first session completes.
	LastSession *LastSession
}

// DefaultState returns the zero learner state.
func DefaultState() AppState {
	return AppState{
		Modules:         make(map[string]ModuleProgress),
		WeakQuestionIDs: []string{},
	}
}

// SkillProgressFor looks up the progress for (module, skill, mode). The
// second result is false when the skill has never been practiced in any mode.
func SkillProgressFor(state AppState, moduleID, skillID string, mode content.Mode) (SkillProgress, bool) {
	mod, ok := state.Modules[moduleID]
	if !ok {
		return SkillProgress{}, false
	}
	skill, ok := mod[skillID]
	if !ok {
		return SkillProgress{}, false
	}
	return skill.For(mode), true
}
