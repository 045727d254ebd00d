package progress

import (
	"testing"
	"time"

	"github.com/abhisek/financelab/internal/content"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reducedState() AppState {
	t0 := time.Date(2026, 5, 3, 20, 15, 30, 123456789, time.UTC)
	state := DefaultState()
	state, _ = CompleteSession(state, Completion{
		SessionID: "s-1", Mode: content.ModeLearn, ModuleID: "time-value", SkillID: "compounding",
		StartedAt: t0.Add(-3 * time.Minute), CompletedAt: t0,
		Results: []content.QuestionResult{
			{QuestionID: "tv-c1", Correct: true, UserAnswer: content.TextAnswer("b"), CorrectAnswer: content.TextAnswer("b")},
			{QuestionID: "tv-c2", Correct: false, UserAnswer: content.NumberAnswer(1200), CorrectAnswer: content.NumberAnswer(1210)},
		},
	})
	state, _ = CompleteSession(state, Completion{
		SessionID: "s-2", Mode: content.ModePractice, ModuleID: "ratios", SkillID: "liquidity",
		StartedAt: t0.Add(24 * time.Hour), CompletedAt: t0.Add(25 * time.Hour),
		Results: []content.QuestionResult{
			{QuestionID: "r-l3", Correct: false, UserAnswer: content.NumberAnswer(0.6), CorrectAnswer: content.NumberAnswer(1.2)},
			{QuestionID: "r-l4", Correct: true, UserAnswer: content.TextAnswer("c"), CorrectAnswer: content.TextAnswer("c")},
			{QuestionID: "r-l4", Correct: true, UserAnswer: content.TextAnswer("c"), CorrectAnswer: content.TextAnswer("c")},
		},
	})
	return UpdateWeakQuestions(state, []string{"extra"}, nil)
}

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		state AppState
	}{
		{"default", DefaultState()},
		{"reduced", reducedState()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := Encode(tt.state)
			require.NoError(t, err)

			got, notes := Decode(raw)
			assert.Empty(t, notes)
			assert.Equal(t, tt.state, got)
		})
	}
}

func TestEncodeSchema(t *testing.T) {
	raw, err := Encode(DefaultState())
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"xpTotal": 0,
		"streakCount": 0,
		"lastCompletedDate": null,
		"modules": {},
		"weakQuestionIds": [],
		"lastSession": null
	}`, string(raw))

	raw, err = Encode(reducedState())
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"lastCompletedDate":"2026-05-04"`)
	assert.Contains(t, string(raw), `"modules":{"ratios":{"liquidity":{"learn":`)
	assert.Contains(t, string(raw), `"startedAtISO":"2026-05-04T20:15:30.123456789Z"`)
}

func TestDecodeUnreadable(t *testing.T) {
	for _, raw := range []string{"", "   ", "{", "[]", "null", `"state"`, "42"} {
		got, _ := Decode([]byte(raw))
		assert.Equal(t, DefaultState(), got, "input %q", raw)
	}
}

func TestDecodeDefaultsPerField(t *testing.T) {
	raw := `{
		"xpTotal": "lots",
		"streakCount": 4,
		"lastCompletedDate": 20260101,
		"modules": {
			"m1": {
				"s1": {"learn": {"bestScore": 0.8, "stars": 2, "sessionsCompleted": 3}, "practice": "bad"},
				"s2": {"learn": {"bestScore": 7, "stars": 2.5, "sessionsCompleted": -1}},
				"s3": 5
			},
			"m2": []
		},
		"weakQuestionIds": ["a", 1, "b", "a", null],
		"lastSession": {"mode": "exam", "moduleId": "m1"}
	}`

	got, notes := Decode([]byte(raw))

	assert.Equal(t, 0, got.XPTotal)
	assert.Equal(t, 4, got.StreakCount)
	assert.Equal(t, "", got.LastCompletedDate)
	assert.Equal(t, SkillProgress{BestScore: 0.8, Stars: 2, SessionsCompleted: 3}, got.Modules["m1"]["s1"].Learn)
	assert.Equal(t, SkillProgress{}, got.Modules["m1"]["s1"].Practice)
	assert.Equal(t, SkillProgress{}, got.Modules["m1"]["s2"].Learn)
	assert.NotContains(t, got.Modules["m1"], "s3")
	assert.NotContains(t, got.Modules, "m2")
	assert.Equal(t, []string{"a", "b"}, got.WeakQuestionIDs)
	assert.Nil(t, got.LastSession)

	assert.NotEmpty(t, notes)
	assert.Contains(t, notes, "xpTotal: expected non-negative number")
}

func TestDecodeMissingFields(t *testing.T) {
	got, notes := Decode([]byte(`{"xpTotal": 120}`))
	assert.Empty(t, notes)
	want := DefaultState()
	want.XPTotal = 120
	assert.Equal(t, want, got)
}

func TestDecodeLegacyModuleShape(t *testing.T) {
	raw := `{"modules": {
		"m1": {"skills": {"s1": {"learn": {"bestScore": 1, "stars": 3, "sessionsCompleted": 1},
		                         "practice": {"bestScore": 0, "stars": 0, "sessionsCompleted": 0}}}},
		"m2": {"skills": {"learn": {"bestScore": 0.5, "stars": 0, "sessionsCompleted": 1}}}
	}}`

	got, _ := Decode([]byte(raw))
	assert.Equal(t, 3, int(got.Modules["m1"]["s1"].Learn.Stars))
	// A skill literally named "skills" is not a wrapper.
	assert.Equal(t, 0.5, got.Modules["m2"]["skills"].Learn.BestScore)
}

func TestDecodeLegacySkillNamedLikeAMode(t *testing.T) {
	raw := `{"modules": {
		"m1": {"skills": {"learn": {"learn": {"bestScore": 0.8, "stars": 2, "sessionsCompleted": 4}}}}
	}}`

	got, notes := Decode([]byte(raw))
	assert.Empty(t, notes)
	p := got.Modules["m1"]["learn"].Learn
	assert.Equal(t, 0.8, p.BestScore)
	assert.Equal(t, 2, int(p.Stars))
	assert.Equal(t, 4, p.SessionsCompleted)
	assert.NotContains(t, got.Modules["m1"], "skills")
}

func TestLargeCountsRoundTrip(t *testing.T) {
	state := DefaultState()
	state.XPTotal = 1 << 31
	state.StreakCount = 1<<40 + 7

	raw, err := Encode(state)
	require.NoError(t, err)
	got, notes := Decode(raw)
	assert.Empty(t, notes)
	assert.Equal(t, state, got)

	got, notes = Decode([]byte(`{"xpTotal": 1e300}`))
	assert.Equal(t, 0, got.XPTotal)
	assert.NotEmpty(t, notes)
}

func TestDecodeLastSessionModeNotes(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"missing", `{"lastSession": {"moduleId": "m"}}`, "lastSession.mode: missing"},
		{"not a string", `{"lastSession": {"mode": 3}}`, "lastSession.mode: expected string"},
		{"unknown", `{"lastSession": {"mode": "exam"}}`, `got "exam"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, notes := Decode([]byte(tt.raw))
			assert.Nil(t, got.LastSession)
			require.Len(t, notes, 1)
			assert.Contains(t, notes[0], tt.want)
		})
	}
}

func TestDecodeCapsWeakIDs(t *testing.T) {
	raw := `{"weakQuestionIds": [`
	for i := 0; i < 60; i++ {
		if i > 0 {
			raw += ","
		}
		raw += `"q` + string(rune('A'+i%26)) + string(rune('a'+i/26)) + `"`
	}
	raw += `]}`

	got, _ := Decode([]byte(raw))
	assert.Len(t, got.WeakQuestionIDs, MaxWeakQuestions)
}

func TestDecodeLastSessionPartial(t *testing.T) {
	raw := `{"lastSession": {
		"mode": "practice",
		"moduleId": "m1",
		"skillId": 9,
		"startedAtISO": "yesterday",
		"completedAtISO": "2026-05-03T20:15:30.5Z",
		"questionResults": [
			{"questionId": "q1", "correct": true, "userAnswer": 3, "correctAnswer": 3},
			"junk",
			{"questionId": "q2", "correct": "no", "userAnswer": {"x": 1}, "correctAnswer": "b"}
		]
	}}`

	got, notes := Decode([]byte(raw))
	require.NotNil(t, got.LastSession)
	ls := got.LastSession
	assert.Equal(t, content.ModePractice, ls.Mode)
	assert.Equal(t, "m1", ls.ModuleID)
	assert.Equal(t, "", ls.SkillID)
	assert.True(t, ls.StartedAt.IsZero())
	assert.Equal(t, time.Date(2026, 5, 3, 20, 15, 30, 5e8, time.UTC), ls.CompletedAt)
	require.Len(t, ls.QuestionResults, 2)
	assert.Equal(t, content.NumberAnswer(3), ls.QuestionResults[0].UserAnswer)
	assert.False(t, ls.QuestionResults[1].Correct)
	assert.True(t, ls.QuestionResults[1].UserAnswer.IsZero())
	assert.Equal(t, content.TextAnswer("b"), ls.QuestionResults[1].CorrectAnswer)
	assert.NotEmpty(t, notes)
}
