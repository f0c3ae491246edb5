package metrics

import (
	"testing"
	"time"

	"github.com/bodhi-os/bodhi/internal/models"
)

// stamp builds a local-time RFC3339 timestamp; streak arithmetic works
// on local calendar days, so tests must not hardcode UTC.
func stamp(day string, hour, min int) string {
	d, err := time.ParseInLocation("2006-01-02", day, time.Local)
	if err != nil {
		panic(err)
	}
	return time.Date(d.Year(), d.Month(), d.Day(), hour, min, 0, 0, time.Local).Format(time.RFC3339)
}

func TestAdvanceStreakSameDayIsNoOp(t *testing.T) {
	s := models.HabitStreak{
		UserID: "u1", HabitName: "gym",
		CurrentStreak: 3, LongestStreak: 5, TotalCompletions: 10,
		LastCompletedAt: stamp("2026-03-10", 7, 30),
	}

	got, changed := AdvanceStreak(s, "2026-03-10", stamp("2026-03-10", 21, 0))
	if changed {
		t.Error("expected second completion on the same day to be a no-op")
	}
	if got.CurrentStreak != 3 || got.TotalCompletions != 10 {
		t.Errorf("counters changed on same-day completion: %+v", got)
	}
}

func TestAdvanceStreakConsecutiveDay(t *testing.T) {
	s := models.HabitStreak{
		CurrentStreak: 3, LongestStreak: 3, TotalCompletions: 3,
		LastCompletedAt: stamp("2026-03-10", 7, 30),
	}

	got, changed := AdvanceStreak(s, "2026-03-11", stamp("2026-03-11", 8, 0))
	if !changed {
		t.Fatal("expected next-day completion to change the record")
	}
	if got.CurrentStreak != 4 {
		t.Errorf("CurrentStreak = %d, want 4", got.CurrentStreak)
	}
	if got.LongestStreak != 4 {
		t.Errorf("LongestStreak = %d, want 4", got.LongestStreak)
	}
	if got.TotalCompletions != 4 {
		t.Errorf("TotalCompletions = %d, want 4", got.TotalCompletions)
	}
}

func TestAdvanceStreakGapResets(t *testing.T) {
	s := models.HabitStreak{
		CurrentStreak: 7, LongestStreak: 7, TotalCompletions: 7,
		LastCompletedAt: stamp("2026-03-10", 7, 30),
	}

	got, changed := AdvanceStreak(s, "2026-03-13", stamp("2026-03-13", 8, 0))
	if !changed {
		t.Fatal("expected completion after a gap to change the record")
	}
	if got.CurrentStreak != 1 {
		t.Errorf("CurrentStreak = %d, want 1 after gap", got.CurrentStreak)
	}
	if got.LongestStreak != 7 {
		t.Errorf("LongestStreak = %d, want 7 preserved", got.LongestStreak)
	}
	if got.TotalCompletions != 8 {
		t.Errorf("TotalCompletions = %d, want 8", got.TotalCompletions)
	}
}

// Walks a streak through its whole lifecycle: first completion, a
// same-day duplicate, a consecutive day, then a break and recovery.
func TestStreakLifecycle(t *testing.T) {
	s := NewStreak("u1", "deepWork", true, stamp("2026-03-01", 9, 0))
	if s.CurrentStreak != 1 || s.LongestStreak != 1 || s.TotalCompletions != 1 {
		t.Fatalf("initial streak = %+v, want 1/1/1", s)
	}

	// Duplicate completion the same day.
	s, changed := AdvanceStreak(s, "2026-03-01", stamp("2026-03-01", 22, 0))
	if changed {
		t.Fatal("same-day duplicate should not change the streak")
	}

	// Next day extends.
	s, _ = AdvanceStreak(s, "2026-03-02", stamp("2026-03-02", 9, 0))
	if s.CurrentStreak != 2 || s.LongestStreak != 2 || s.TotalCompletions != 2 {
		t.Fatalf("after day 2: %+v, want 2/2/2", s)
	}

	// Two-day gap resets the current streak but not the records.
	s, _ = AdvanceStreak(s, "2026-03-05", stamp("2026-03-05", 9, 0))
	if s.CurrentStreak != 1 {
		t.Errorf("CurrentStreak = %d, want 1 after break", s.CurrentStreak)
	}
	if s.LongestStreak != 2 {
		t.Errorf("LongestStreak = %d, want 2", s.LongestStreak)
	}
	if s.TotalCompletions != 3 {
		t.Errorf("TotalCompletions = %d, want 3", s.TotalCompletions)
	}
}

func TestNewStreakUncompleted(t *testing.T) {
	s := NewStreak("u1", "gym", false, stamp("2026-03-01", 9, 0))
	if s.CurrentStreak != 0 || s.LongestStreak != 0 || s.TotalCompletions != 0 {
		t.Errorf("uncompleted first event should yield zero counters, got %+v", s)
	}
	if s.LastCompletedAt != "" {
		t.Errorf("LastCompletedAt = %q, want empty", s.LastCompletedAt)
	}
}

// A completion late at night followed by one just after midnight still
// counts as consecutive calendar days.
func TestAdvanceStreakMidnightBoundary(t *testing.T) {
	s := models.HabitStreak{
		CurrentStreak: 1, LongestStreak: 1, TotalCompletions: 1,
		LastCompletedAt: stamp("2026-03-10", 23, 55),
	}

	got, changed := AdvanceStreak(s, "2026-03-11", stamp("2026-03-11", 0, 5))
	if !changed || got.CurrentStreak != 2 {
		t.Errorf("midnight-straddling completions should extend the streak, got %+v", got)
	}
}

// The spring-forward day is only 23 hours long; completing on the day
// after it must still extend the streak, not reset it.
func TestAdvanceStreakAcrossSpringForward(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("timezone database unavailable: %v", err)
	}
	orig := time.Local
	time.Local = loc
	defer func() { time.Local = orig }()

	s := models.HabitStreak{
		CurrentStreak: 5, LongestStreak: 5, TotalCompletions: 5,
		LastCompletedAt: stamp("2026-03-08", 9, 0),
	}

	got, changed := AdvanceStreak(s, "2026-03-09", stamp("2026-03-09", 9, 0))
	if !changed {
		t.Fatal("expected next-day completion to change the record")
	}
	if got.CurrentStreak != 6 {
		t.Errorf("CurrentStreak = %d, want 6 across the DST boundary", got.CurrentStreak)
	}
}

func TestClassifyStreak(t *testing.T) {
	tests := []struct {
		name            string
		lastCompletedAt string
		today           string
		want            StreakState
	}{
		{"never completed", "", "2026-03-10", StreakNew},
		{"completed today", stamp("2026-03-10", 8, 0), "2026-03-10", StreakActive},
		{"completed yesterday", stamp("2026-03-09", 8, 0), "2026-03-10", StreakActive},
		{"two day gap", stamp("2026-03-08", 8, 0), "2026-03-10", StreakBroken},
		{"garbage timestamp", "not-a-time", "2026-03-10", StreakNew},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyStreak(tt.lastCompletedAt, tt.today)
			if got.State != tt.want {
				t.Errorf("ClassifyStreak(%q, %q).State = %q, want %q",
					tt.lastCompletedAt, tt.today, got.State, tt.want)
			}
		})
	}
}
