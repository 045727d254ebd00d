package session

import (
	"time"

	"github.com/abhisek/financelab/internal/content"
	"github.com/abhisek/financelab/internal/progress"
)

// Missed pairs a wrongly answered question with the learner's result.
type Missed struct {
	Question content.Question
	Result   content.QuestionResult
}

// Summary holds the data displayed when a session completes.
type Summary struct {
	SessionID string
	Duration  time.Duration
	Outcome   progress.Outcome
	Missed    []Missed
}

// BuildSummary creates a Summary from a finished session.
func BuildSummary(sess *Session, completedAt time.Time, outcome progress.Outcome) *Summary {
	var missed []Missed
	for i, r := range sess.Results {
		if !r.Correct && i < len(sess.Questions) {
			missed = append(missed, Missed{Question: sess.Questions[i], Result: r})
		}
	}
	return &Summary{
		SessionID: sess.ID,
		Duration:  completedAt.Sub(sess.StartedAt),
		Outcome:   outcome,
		Missed:    missed,
	}
}

// Perfect reports whether every answer was correct.
func (s *Summary) Perfect() bool {
	return s.Outcome.Total > 0 && len(s.Missed) == 0
}
