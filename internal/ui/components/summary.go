package components

import (
	"fmt"
	"strings"
	"time"

	"github.com/abhisek/financelab/internal/scoring"
	"github.com/abhisek/financelab/internal/session"
	"github.com/abhisek/financelab/internal/ui/theme"
)

// Summary renders the end-of-session results card.
func Summary(s *session.Summary) string {
	o := s.Outcome
	var b strings.Builder

	b.WriteString(theme.Title.Render("Session complete"))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "%s  %d/%d correct (%d%%)\n", theme.Stars(int(o.Stars), int(scoring.MaxStars)), o.Correct, o.Total, int(o.Score*100+0.5))
	fmt.Fprintf(&b, "+%d XP   streak %d day(s)   %s\n", o.XPGained, o.Streak.Count, s.Duration.Round(time.Second))

	if o.NewBest() {
		b.WriteString(theme.Correct.Render("New best score!"))
		b.WriteString("\n")
	}

	if len(s.Missed) > 0 {
		b.WriteString("\n")
		b.WriteString(theme.Label.Render("Review"))
		for _, m := range s.Missed {
			fmt.Fprintf(&b, "\n  %s\n    %s %s   %s %s",
				theme.Body.Render(m.Question.Prompt),
				theme.Subtitle.Render("you:"), theme.Incorrect.Render(userAnswerText(m)),
				theme.Subtitle.Render("answer:"), theme.Correct.Render(m.Question.AnswerText()))
		}
	} else if s.Perfect() {
		b.WriteString(theme.Correct.Render("Perfect run."))
	}

	return theme.Card.Render(b.String())
}

func userAnswerText(m session.Missed) string {
	if text, ok := m.Question.OptionText(m.Result.UserAnswer.Text()); ok {
		return text
	}
	return m.Result.UserAnswer.String()
}
