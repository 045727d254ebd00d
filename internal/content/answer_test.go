package content

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNumeric(t *testing.T) {
	tests := []struct {
		input   string
		want    float64
		wantErr bool
	}{
		{"42", 42, false},
		{"  3.5 ", 3.5, false},
		{"$1,210", 1210, false},
		{"12.68%", 12.68, false},
		{"-7", -7, false},
		{"", 0, true},
		{"abc", 0, true},
		{"NaN", 0, true},
		{"Inf", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseNumeric(tt.input)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidAnswer) {
				t.Errorf("ParseNumeric(%q) error = %v, want ErrInvalidAnswer", tt.input, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseNumeric(%q) unexpected error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseNumeric(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestNumericCorrect(t *testing.T) {
	tol := 0.5
	tests := []struct {
		name   string
		user   float64
		answer float64
		tol    *float64
		want   bool
	}{
		{"exact without tolerance", 1210, 1210, nil, true},
		{"off by a cent without tolerance", 1210.01, 1210, nil, false},
		{"inside tolerance", 1210.4, 1210, &tol, true},
		{"on tolerance boundary", 1209.5, 1210, &tol, true},
		{"outside tolerance", 1210.6, 1210, &tol, false},
	}

	for _, tt := range tests {
		if got := NumericCorrect(tt.user, tt.answer, tt.tol); got != tt.want {
			t.Errorf("%s: NumericCorrect = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestResolveOption(t *testing.T) {
	options := []Option{{ID: "c", Text: "C"}, {ID: "a", Text: "A"}, {ID: "b", Text: "B"}}

	id, err := ResolveOption("A", options)
	require.NoError(t, err)
	assert.Equal(t, "a", id)

	id, err = ResolveOption("1", options)
	require.NoError(t, err)
	assert.Equal(t, "c", id, "index follows the shown order")

	numbered := []Option{{ID: "3", Text: "three"}, {ID: "1", Text: "one"}, {ID: "2", Text: "two"}}
	id, err = ResolveOption("1", numbered)
	require.NoError(t, err)
	assert.Equal(t, "3", id, "position wins over a numeric id")

	_, err = ResolveOption("4", options)
	assert.ErrorIs(t, err, ErrInvalidAnswer)

	_, err = ResolveOption(" ", options)
	assert.ErrorIs(t, err, ErrInvalidAnswer)
}

func TestCheck(t *testing.T) {
	tol := 0.01
	mcq := Question{
		ID: "q1", Type: TypeMCQ,
		Options: []Option{{ID: "a", Text: "A"}, {ID: "b", Text: "B"}},
		Answer:  TextAnswer("b"),
	}
	num := Question{ID: "q2", Type: TypeNumeric, Answer: NumberAnswer(907.03), NumericTolerance: &tol}

	ans, ok, err := Check(mcq, "b", nil)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, TextAnswer("b"), ans)

	_, ok, err = Check(mcq, "1", nil)
	require.NoError(t, err)
	assert.False(t, ok)

	numbered := Question{
		ID: "q3", Type: TypeMCQ,
		Options: []Option{{ID: "1", Text: "one"}, {ID: "2", Text: "two"}, {ID: "3", Text: "three"}},
		Answer:  TextAnswer("3"),
	}
	shown := []Option{numbered.Options[2], numbered.Options[0], numbered.Options[1]}
	ans, ok, err = Check(numbered, "1", shown)
	require.NoError(t, err)
	assert.True(t, ok, "first shown option is the answer")
	assert.Equal(t, TextAnswer("3"), ans)

	ans, ok, err = Check(num, "907.035", nil)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, NumberAnswer(907.035), ans)

	_, _, err = Check(num, "nine hundred", nil)
	assert.ErrorIs(t, err, ErrInvalidAnswer)
}

func TestAnswerJSON(t *testing.T) {
	var answers []Answer
	require.NoError(t, json.Unmarshal([]byte(`["b", 12.5, 3]`), &answers))
	require.Len(t, answers, 3)

	assert.False(t, answers[0].IsNumber())
	assert.Equal(t, "b", answers[0].Text())
	assert.True(t, answers[1].IsNumber())
	assert.Equal(t, 12.5, answers[1].Number())
	assert.Equal(t, "3", answers[2].String())

	out, err := json.Marshal(answers)
	require.NoError(t, err)
	assert.JSONEq(t, `["b", 12.5, 3]`, string(out))

	var bad Answer
	assert.Error(t, json.Unmarshal([]byte(`{"x":1}`), &bad))
}
