package components

import (
	"fmt"
	"strings"

	"github.com/abhisek/financelab/internal/content"
	"github.com/abhisek/financelab/internal/ui/theme"
)

// Question renders a question card with its options in shown order.
func Question(q content.Question, shown []content.Option) string {
	var b strings.Builder

	if q.ScenarioContext != "" {
		b.WriteString(theme.Hint.Render(q.ScenarioContext))
		b.WriteString("\n\n")
	}
	b.WriteString(theme.Body.Bold(true).Render(q.Prompt))

	switch q.Type {
	case content.TypeMCQ:
		b.WriteString("\n")
		for i, o := range shown {
			fmt.Fprintf(&b, "\n  %s %s", theme.Label.Render(fmt.Sprintf("%d.", i+1)), theme.Body.Render(o.Text))
		}
	case content.TypeNumeric:
		b.WriteString("\n\n")
		b.WriteString(theme.Hint.Render("Enter a number. $, commas and % are ignored."))
	}

	return theme.Card.Render(b.String())
}

// Feedback renders the verdict and explanation for an answered question.
func Feedback(q content.Question, r content.QuestionResult) string {
	var b strings.Builder

	if r.Correct {
		b.WriteString(theme.Correct.Render("Correct!"))
	} else {
		b.WriteString(theme.Incorrect.Render("Not quite."))
		b.WriteString(" ")
		b.WriteString(theme.Body.Render("Answer: " + q.AnswerText()))
	}

	b.WriteString("\n")
	b.WriteString(theme.Body.Render(q.Explanation))

	if q.InPractice != "" {
		b.WriteString("\n")
		b.WriteString(theme.Label.Render("In practice: "))
		b.WriteString(theme.Body.Render(q.InPractice))
	}
	if q.ExamTip != "" {
		b.WriteString("\n")
		b.WriteString(theme.Label.Render("Exam tip: "))
		b.WriteString(theme.Body.Render(q.ExamTip))
	}
	return b.String()
}
