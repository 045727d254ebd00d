package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/abhisek/financelab/internal/content"
)

var (
	// ErrEmptyPool means the skill has no questions for the requested mode.
	ErrEmptyPool = errors.New("no questions available for this skill and mode")

	// ErrSessionIncomplete means Finish was called before every question was answered.
	ErrSessionIncomplete = errors.New("session has unanswered questions")

	// ErrSessionComplete means the session has no more questions or was already finished.
	ErrSessionComplete = errors.New("session already complete")
)

// Session tracks one run of selected questions for a (mode, module, skill).
type Session struct {
	// ID is the UUID for this session.
	ID string

	Mode     content.Mode
	ModuleID string
	SkillID  string

	// Questions is the ordered question list chosen at start.
	Questions []content.Question

	// Results holds one result per answered question, in order.
	Results []content.QuestionResult

	StartedAt time.Time

	// shown is the option display order per question (nil for numeric).
	shown    [][]content.Option
	finished bool
}

// Current returns the question awaiting an answer and its option display
// order. ok is false once every question has been answered.
func (s *Session) Current() (q content.Question, options []content.Option, ok bool) {
	i := len(s.Results)
	if i >= len(s.Questions) {
		return content.Question{}, nil, false
	}
	return s.Questions[i], s.shown[i], true
}

// Answer grades learner input for the current question and records the
// result. Input that cannot be read as an answer returns
// content.ErrInvalidAnswer and records nothing, so the caller can re-prompt.
func (s *Session) Answer(input string) (content.QuestionResult, error) {
	q, shown, ok := s.Current()
	if !ok || s.finished {
		return content.QuestionResult{}, ErrSessionComplete
	}
	r, err := content.Grade(q, input, shown)
	if err != nil {
		return content.QuestionResult{}, fmt.Errorf("question %s: %w", q.ID, err)
	}
	s.Results = append(s.Results, r)
	return r, nil
}

// Done reports whether every question has an answer.
func (s *Session) Done() bool {
	return len(s.Results) >= len(s.Questions)
}

// Position returns the 1-based number of the current question and the total.
func (s *Session) Position() (current, total int) {
	return min(len(s.Results)+1, len(s.Questions)), len(s.Questions)
}
