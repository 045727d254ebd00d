// Package scoring turns a session's answered questions into a star rating,
// an XP award and a day-streak update. Every function is pure.
package scoring

import "github.com/abhisek/financelab/internal/content"

// Stars is a 0–3 rating derived from a session's correctness ratio.
type Stars int

// MaxStars is the highest rating a session can earn.
const MaxStars Stars = 3

// Star band lower bounds (inclusive).
const (
	ThreeStarThreshold = 0.90
	TwoStarThreshold   = 0.75
	OneStarThreshold   = 0.60
)

// XP awards.
const (
	XPPerCorrect   = 10
	XPPerWrong     = 2
	PerfectBonusXP = 10
)

// ComputeStars maps a score in [0,1] to a star rating. The highest matching
// band wins.
func ComputeStars(score float64) Stars {
	switch {
	case score >= ThreeStarThreshold:
		return 3
	case score >= TwoStarThreshold:
		return 2
	case score >= OneStarThreshold:
		return 1
	default:
		return 0
	}
}

// Counts returns the number of correct and wrong results.
func Counts(results []content.QuestionResult) (correct, wrong int) {
	for _, r := range results {
		if r.Correct {
			correct++
		}
	}
	return correct, len(results) - correct
}

// Score returns the fraction of correct results, or 0 for an empty session.
func Score(results []content.QuestionResult) float64 {
	if len(results) == 0 {
		return 0
	}
	correct, _ := Counts(results)
	return float64(correct) / float64(len(results))
}

// ComputeXP returns the XP earned by a session: 10 per correct answer, 2 per
// wrong answer, plus a flat bonus when every answer is correct. An empty
// session earns nothing.
func ComputeXP(results []content.QuestionResult) int {
	if len(results) == 0 {
		return 0
	}
	correct, wrong := Counts(results)
	xp := correct*XPPerCorrect + wrong*XPPerWrong
	if wrong == 0 {
		xp += PerfectBonusXP
	}
	return xp
}
