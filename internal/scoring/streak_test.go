package scoring

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestComputeStreak(t *testing.T) {
	loc := time.FixedZone("test", -5*60*60)
	now := time.Date(2026, 3, 1, 9, 30, 0, 0, loc)
	today := "2026-03-01"

	tests := []struct {
		name     string
		prev     int
		lastDate string
		want     Streak
	}{
		{"first session ever", 0, "", Streak{1, today}},
		{"same day is idempotent", 5, today, Streak{5, today}},
		{"consecutive day", 5, "2026-02-28", Streak{6, today}},
		{"three day gap resets", 5, "2026-02-26", Streak{0, today}},
		{"future date resets", 5, "2026-03-02", Streak{0, today}},
		{"unreadable date resets", 5, "yesterday", Streak{0, today}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeStreak(tt.prev, tt.lastDate, now))
		})
	}
}

func TestComputeStreakUsesCalendarDays(t *testing.T) {
	// 23:59 yesterday to 00:01 today is one calendar day apart.
	last := time.Date(2026, 1, 31, 23, 59, 0, 0, time.UTC)
	now := time.Date(2026, 2, 1, 0, 1, 0, 0, time.UTC)

	got := ComputeStreak(2, last.Format(DateLayout), now)
	assert.Equal(t, Streak{3, "2026-02-01"}, got)

	// The date is taken in completedAt's own location.
	tokyo := time.FixedZone("JST", 9*60*60)
	got = ComputeStreak(2, "2026-01-31", now.In(tokyo).Add(-2*time.Minute))
	assert.Equal(t, Streak{3, "2026-02-01"}, got)
}

func TestComputeStreakRepeatedSameDay(t *testing.T) {
	now := time.Date(2026, 6, 10, 8, 0, 0, 0, time.UTC)
	s := ComputeStreak(0, "", now)
	for i := 0; i < 3; i++ {
		s = ComputeStreak(s.Count, s.LastCompletedDate, now.Add(time.Duration(i)*time.Hour))
	}
	assert.Equal(t, Streak{1, "2026-06-10"}, s)
}

func TestValidDate(t *testing.T) {
	assert.True(t, ValidDate("2026-02-28"))
	assert.False(t, ValidDate("2026-02-30"))
	assert.False(t, ValidDate(""))
}
