package content

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidAnswer is returned when learner input cannot be interpreted as an
// answer for the question type. The caller should re-prompt.
var ErrInvalidAnswer = errors.New("invalid answer")

// ParseNumeric parses a learner's numeric input.
//
// Normalization rules:
// - Whitespace is trimmed
// - A single leading currency sign ($) and thousands separators (,) are ignored
// - A trailing percent sign is ignored (the number is taken as written)
func ParseNumeric(input string) (float64, error) {
	s := strings.TrimSpace(input)
	s = strings.TrimPrefix(s, "$")
	s = strings.TrimSuffix(s, "%")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidAnswer
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, ErrInvalidAnswer
	}
	return f, nil
}

// NumericCorrect compares a well-formed learner number against the answer.
// With a tolerance the absolute difference may be at most tol; without one
// the values must be equal.
func NumericCorrect(user, answer float64, tol *float64) bool {
	diff := math.Abs(user - answer)
	if tol != nil {
		return diff <= *tol
	}
	return diff == 0
}

// ResolveOption maps learner input for an mcq question to an option id.
// Input may be the 1-based position in options (the order the options were
// shown in) or the option id itself. A position wins over an id that happens
// to look like a number.
func ResolveOption(input string, options []Option) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", ErrInvalidAnswer
	}
	if idx, err := strconv.Atoi(input); err == nil && idx >= 1 && idx <= len(options) {
		return options[idx-1].ID, nil
	}
	for _, o := range options {
		if strings.EqualFold(o.ID, input) {
			return o.ID, nil
		}
	}
	return "", ErrInvalidAnswer
}

// Check grades learner input against q. shown is the option order presented
// to the learner for mcq questions (nil means catalog order). It returns the
// normalized user answer and whether it is correct, or ErrInvalidAnswer.
func Check(q Question, input string, shown []Option) (Answer, bool, error) {
	switch q.Type {
	case TypeMCQ:
		if shown == nil {
			shown = q.Options
		}
		id, err := ResolveOption(input, shown)
		if err != nil {
			return Answer{}, false, err
		}
		return TextAnswer(id), id == q.Answer.Text(), nil
	default:
		n, err := ParseNumeric(input)
		if err != nil {
			return Answer{}, false, err
		}
		return NumberAnswer(n), NumericCorrect(n, q.Answer.Number(), q.NumericTolerance), nil
	}
}

// Grade checks learner input and builds the immutable result for q.
func Grade(q Question, input string, shown []Option) (QuestionResult, error) {
	user, correct, err := Check(q, input, shown)
	if err != nil {
		return QuestionResult{}, err
	}
	return QuestionResult{
		QuestionID:    q.ID,
		Correct:       correct,
		UserAnswer:    user,
		CorrectAnswer: q.Answer,
	}, nil
}
