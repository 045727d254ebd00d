package content

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Mode is the learning posture a question or session belongs to.
type Mode string

const (
	ModeLearn    Mode = "learn"
	ModePractice Mode = "practice"

	// ModeBoth is only valid on questions: the question serves either session mode.
	ModeBoth Mode = "both"
)

// SessionModes returns the modes a session can run in, in display order.
func SessionModes() []Mode {
	return []Mode{ModeLearn, ModePractice}
}

// ParseSessionMode accepts "learn" or "practice".
func ParseSessionMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeLearn, ModePractice:
		return Mode(s), nil
	default:
		return "", fmt.Errorf("unknown mode %q (want learn or practice)", s)
	}
}

// Serves reports whether a question tagged with m belongs in a session run in
// the given session mode.
func (m Mode) Serves(session Mode) bool {
	return m == session || m == ModeBoth
}

// DisplayName returns a human-readable name for a session mode.
func (m Mode) DisplayName() string {
	switch m {
	case ModeLearn:
		return "Learn"
	case ModePractice:
		return "In Practice"
	default:
		return string(m)
	}
}

// QuestionType describes how the learner answers a question.
type QuestionType string

const (
	TypeMCQ     QuestionType = "mcq"
	TypeNumeric QuestionType = "numeric"
)

// Option is a single multiple choice option.
type Option struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// Answer holds either a text value (an option id) or a number. The JSON form
// is a bare string or a bare number.
type Answer struct {
	text    string
	number  float64
	numeric bool
}

// TextAnswer returns a text answer.
func TextAnswer(s string) Answer {
	return Answer{text: s}
}

// NumberAnswer returns a numeric answer.
func NumberAnswer(f float64) Answer {
	return Answer{number: f, numeric: true}
}

// IsNumber reports whether the answer is numeric.
func (a Answer) IsNumber() bool { return a.numeric }

// Number returns the numeric value, or 0 for text answers.
func (a Answer) Number() float64 { return a.number }

// Text returns the text value, or "" for numeric answers.
func (a Answer) Text() string { return a.text }

// IsZero reports whether the answer was never set.
func (a Answer) IsZero() bool { return !a.numeric && a.text == "" }

func (a Answer) String() string {
	if a.numeric {
		return strconv.FormatFloat(a.number, 'f', -1, 64)
	}
	return a.text
}

func (a Answer) MarshalJSON() ([]byte, error) {
	if a.numeric {
		return json.Marshal(a.number)
	}
	return json.Marshal(a.text)
}

func (a *Answer) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if string(b) == "null" {
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*a = TextAnswer(s)
		return nil
	}
	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return fmt.Errorf("answer must be a string or a number: %w", err)
	}
	*a = NumberAnswer(f)
	return nil
}

// Question is a single immutable catalog question.
type Question struct {
	ID         string       `json:"id"`
	Mode       Mode         `json:"mode"`
	Type       QuestionType `json:"type"`
	Difficulty int          `json:"difficulty"`
	Prompt     string       `json:"prompt"`

	// ScenarioContext is an optional framing line shown above the prompt.
	ScenarioContext string `json:"scenarioContext,omitempty"`

	// Options is populated only for mcq questions.
	Options []Option `json:"options,omitempty"`

	// Answer is an option id for mcq and a number for numeric questions.
	Answer Answer `json:"answer"`

	// NumericTolerance is the allowed absolute error for numeric answers.
	// Nil means the answer must match exactly.
	NumericTolerance *float64 `json:"numericTolerance,omitempty"`

	Explanation string   `json:"explanation"`
	InPractice  string   `json:"inPractice,omitempty"`
	ExamTip     string   `json:"examTip,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

// OptionText returns the display text for the option with the given id.
func (q Question) OptionText(id string) (string, bool) {
	for _, o := range q.Options {
		if o.ID == id {
			return o.Text, true
		}
	}
	return "", false
}

// AnswerText returns a human-readable rendering of the correct answer.
func (q Question) AnswerText() string {
	if q.Type == TypeMCQ {
		if text, ok := q.OptionText(q.Answer.Text()); ok {
			return text
		}
	}
	return q.Answer.String()
}

// Skill is the smallest gradeable unit with its own question bank.
type Skill struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Questions   []Question `json:"questions"`
}

// Module is a named grouping of skills.
type Module struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Skills      []Skill `json:"skills"`
}

// Document is the top-level shape of a content file.
type Document struct {
	Modules []Module `json:"modules"`
}

// QuestionResult is the outcome of one answered question within a session.
// It is created once and never mutated.
type QuestionResult struct {
	QuestionID    string `json:"questionId"`
	Correct       bool   `json:"correct"`
	UserAnswer    Answer `json:"userAnswer"`
	CorrectAnswer Answer `json:"correctAnswer"`
}
