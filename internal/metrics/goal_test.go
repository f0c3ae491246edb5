package metrics

import (
	"testing"

	"github.com/bodhi-os/bodhi/internal/models"
)

func TestGoalProgress(t *testing.T) {
	tests := []struct {
		name            string
		current, target float64
		want            int
	}{
		{"zero target", 50, 0, 0},
		{"halfway", 50, 100, 50},
		{"overachieved clamps to 100", 150, 100, 100},
		{"rounding", 1, 3, 33},
		{"zero current", 0, 100, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GoalProgress(tt.current, tt.target); got != tt.want {
				t.Errorf("GoalProgress(%v, %v) = %d, want %d",
					tt.current, tt.target, got, tt.want)
			}
		})
	}
}

func TestDaysRemaining(t *testing.T) {
	got, err := DaysRemaining("2026-03-20", "2026-03-10")
	if err != nil {
		t.Fatalf("DaysRemaining failed: %v", err)
	}
	if got != 10 {
		t.Errorf("DaysRemaining = %d, want 10", got)
	}

	got, err = DaysRemaining("2026-03-05", "2026-03-10")
	if err != nil {
		t.Fatalf("DaysRemaining failed: %v", err)
	}
	if got != -5 {
		t.Errorf("DaysRemaining past deadline = %d, want -5", got)
	}
}

func TestClassifyUrgency(t *testing.T) {
	tests := []struct {
		name          string
		daysRemaining int
		progress      int
		want          UrgencyLevel
	}{
		{"overdue", -1, 90, UrgencyCritical},
		{"3 days and behind", 3, 70, UrgencyCritical},
		{"3 days but nearly done", 3, 85, UrgencyComfortable},
		{"7 days and under half", 7, 40, UrgencyUrgent},
		{"7 days and over half", 7, 60, UrgencyComfortable},
		{"14 days and barely started", 14, 20, UrgencyUrgent},
		{"14 days and a third done", 14, 35, UrgencyComfortable},
		{"plenty of runway", 60, 5, UrgencyComfortable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyUrgency(tt.daysRemaining, tt.progress)
			if got.Level != tt.want {
				t.Errorf("ClassifyUrgency(%d, %d) = %q, want %q",
					tt.daysRemaining, tt.progress, got.Level, tt.want)
			}
			if got.Message == "" {
				t.Error("urgency message should not be empty")
			}
		})
	}
}

func TestRequiredDailyProgress(t *testing.T) {
	g := models.Goal{TargetValue: 100, CurrentValue: 40}

	if got := RequiredDailyProgress(g, 10); got != 6 {
		t.Errorf("RequiredDailyProgress over 10 days = %v, want 6", got)
	}
	// 60 remaining over 7 days rounds up.
	if got := RequiredDailyProgress(g, 7); got != 9 {
		t.Errorf("RequiredDailyProgress over 7 days = %v, want 9", got)
	}
	// No days left: the whole remainder is due.
	if got := RequiredDailyProgress(g, 0); got != 60 {
		t.Errorf("RequiredDailyProgress with no runway = %v, want 60", got)
	}
}
