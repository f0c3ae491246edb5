// Package metrics holds the derived-metric computations: habit scores,
// streak arithmetic, goal progress, and business profit aggregation.
// Every function here is a pure fold over already-fetched rows; the
// package does no I/O of its own.
package metrics

import (
	"math"

	"github.com/bodhi-os/bodhi/internal/constants"
	"github.com/bodhi-os/bodhi/internal/models"
)

// WeeklyScore summarises habit completion over a window of tracker rows.
type WeeklyScore struct {
	Score      int `json:"score"`
	Total      int `json:"total"`
	Percentage int `json:"percentage"`
}

// DailyScore counts the completed habits that contribute to the daily
// score. The denominator is constants.HabitsPerDay; the wake-5:30 flag
// is tracked but does not count (see the constant's doc).
func DailyScore(t models.DailyTracker) int {
	score := 0
	for _, flag := range []bool{
		t.DeepWorkDone,
		t.GymDone,
		t.ContentDone,
		t.EcommerceDone,
		t.PrinterDone,
		t.SleepBefore11,
	} {
		if flag {
			score++
		}
	}
	return score
}

// ScoreWeek sums daily scores over the given tracker rows, typically the
// most recent seven days.
func ScoreWeek(trackers []models.DailyTracker) WeeklyScore {
	ws := WeeklyScore{}
	for _, t := range trackers {
		ws.Score += DailyScore(t)
	}
	ws.Total = len(trackers) * constants.HabitsPerDay
	if ws.Total > 0 {
		ws.Percentage = int(math.Round(float64(ws.Score) / float64(ws.Total) * 100))
	}
	return ws
}

// CompletionRate returns the percentage of days since start on which the
// habit was completed, rounded to the nearest whole percent.
func CompletionRate(totalCompletions, daysSinceStart int) int {
	if daysSinceStart <= 0 {
		return 0
	}
	return int(math.Round(float64(totalCompletions) / float64(daysSinceStart) * 100))
}
