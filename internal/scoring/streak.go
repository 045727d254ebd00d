package scoring

import "time"

// DateLayout is the calendar-date format used for lastCompletedDate.
const DateLayout = "2006-01-02"

// Streak is the day-streak after a session completion.
type Streak struct {
	Count             int
	LastCompletedDate string
}

// ComputeStreak updates a day streak for a session completed at completedAt.
// Days are compared on the calendar in completedAt's location, so callers pass
// local time. lastDate is "" when no session has been completed before.
//
//   - no prior date: streak starts at 1
//   - same day: unchanged
//   - exactly the previous day: streak + 1
//   - anything else (gaps, future dates, unreadable dates): reset to 0
func ComputeStreak(prev int, lastDate string, completedAt time.Time) Streak {
	today := completedAt.Format(DateLayout)
	if lastDate == "" {
		return Streak{Count: 1, LastCompletedDate: today}
	}
	if lastDate == today {
		return Streak{Count: prev, LastCompletedDate: today}
	}

	last, err := time.ParseInLocation(DateLayout, lastDate, completedAt.Location())
	if err == nil && last.AddDate(0, 0, 1).Format(DateLayout) == today {
		return Streak{Count: prev + 1, LastCompletedDate: today}
	}
	return Streak{Count: 0, LastCompletedDate: today}
}

// ValidDate reports whether s is a well-formed calendar date.
func ValidDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}
