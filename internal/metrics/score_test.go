package metrics

import (
	"testing"

	"github.com/bodhi-os/bodhi/internal/constants"
	"github.com/bodhi-os/bodhi/internal/models"
)

func TestDailyScore(t *testing.T) {
	tests := []struct {
		name    string
		tracker models.DailyTracker
		want    int
	}{
		{"empty day", models.DailyTracker{}, 0},
		{
			"all six scoring habits",
			models.DailyTracker{
				DeepWorkDone: true, GymDone: true, ContentDone: true,
				EcommerceDone: true, PrinterDone: true, SleepBefore11: true,
			},
			6,
		},
		{
			"wake 5:30 does not count",
			models.DailyTracker{Wake530: true},
			0,
		},
		{
			"partial day",
			models.DailyTracker{DeepWorkDone: true, GymDone: true, Wake530: true},
			2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DailyScore(tt.tracker); got != tt.want {
				t.Errorf("DailyScore() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestDailyScoreNeverExceedsDenominator(t *testing.T) {
	full := models.DailyTracker{
		DeepWorkDone: true, GymDone: true, ContentDone: true,
		EcommerceDone: true, PrinterDone: true, SleepBefore11: true,
		Wake530: true,
	}
	if got := DailyScore(full); got > constants.HabitsPerDay {
		t.Errorf("DailyScore() = %d exceeds HabitsPerDay = %d", got, constants.HabitsPerDay)
	}
}

func TestScoreWeek(t *testing.T) {
	week := []models.DailyTracker{
		{DeepWorkDone: true, GymDone: true, SleepBefore11: true}, // 3
		{DeepWorkDone: true},                                     // 1
		{},                                                       // 0
	}

	got := ScoreWeek(week)
	if got.Score != 4 {
		t.Errorf("Score = %d, want 4", got.Score)
	}
	if got.Total != 3*constants.HabitsPerDay {
		t.Errorf("Total = %d, want %d", got.Total, 3*constants.HabitsPerDay)
	}
	if got.Percentage != 22 { // 4/18 = 22.2%
		t.Errorf("Percentage = %d, want 22", got.Percentage)
	}
}

func TestScoreWeekEmpty(t *testing.T) {
	got := ScoreWeek(nil)
	if got.Score != 0 || got.Total != 0 || got.Percentage != 0 {
		t.Errorf("ScoreWeek(nil) = %+v, want zeroes", got)
	}
}

func TestCompletionRate(t *testing.T) {
	tests := []struct {
		completions, days, want int
	}{
		{0, 0, 0},
		{5, 0, 0},
		{5, 10, 50},
		{1, 3, 33},
		{10, 10, 100},
	}

	for _, tt := range tests {
		if got := CompletionRate(tt.completions, tt.days); got != tt.want {
			t.Errorf("CompletionRate(%d, %d) = %d, want %d",
				tt.completions, tt.days, got, tt.want)
		}
	}
}
