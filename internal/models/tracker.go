package models

import "github.com/bodhi-os/bodhi/internal/constants"

// Mood captures how the day felt.
type Mood string

const (
	MoodGreat Mood = "GREAT"
	MoodGood  Mood = "GOOD"
	MoodOK    Mood = "OK"
	MoodLow   Mood = "LOW"
)

// DailyTracker is the per-day habit checklist. At most one row exists
// per (user, date); the row is created lazily on first visit and
// mutated in place by habit toggles.
type DailyTracker struct {
	ID            string `json:"id"`
	UserID        string `json:"user_id"`
	Date          string `json:"date"` // YYYY-MM-DD, local calendar day
	Day           string `json:"day"`  // weekday label, e.g. MONDAY
	DeepWorkDone  bool   `json:"deep_work_done"`
	GymDone       bool   `json:"gym_done"`
	ContentDone   bool   `json:"content_done"`
	EcommerceDone bool   `json:"ecommerce_done"`
	PrinterDone   bool   `json:"printer_done"`
	SleepBefore11 bool   `json:"sleep_before_11"`
	Wake530       bool   `json:"wake_530"`
	Mood          Mood   `json:"mood"`
	Notes         string `json:"notes,omitempty"`
	CreatedAt     string `json:"created_at"`
	UpdatedAt     string `json:"updated_at"`
}

// Habit returns the flag for the given habit key. Unknown keys must be
// rejected by validation before reaching this dispatch.
func (t *DailyTracker) Habit(key constants.HabitKey) bool {
	switch key {
	case constants.HabitDeepWork:
		return t.DeepWorkDone
	case constants.HabitGym:
		return t.GymDone
	case constants.HabitContent:
		return t.ContentDone
	case constants.HabitEcommerce:
		return t.EcommerceDone
	case constants.HabitPrinter:
		return t.PrinterDone
	case constants.HabitSleepBefore11:
		return t.SleepBefore11
	case constants.HabitWake530:
		return t.Wake530
	}
	return false
}

// SetHabit sets the flag for the given habit key and reports whether the
// key named a tracked habit.
func (t *DailyTracker) SetHabit(key constants.HabitKey, done bool) bool {
	switch key {
	case constants.HabitDeepWork:
		t.DeepWorkDone = done
	case constants.HabitGym:
		t.GymDone = done
	case constants.HabitContent:
		t.ContentDone = done
	case constants.HabitEcommerce:
		t.EcommerceDone = done
	case constants.HabitPrinter:
		t.PrinterDone = done
	case constants.HabitSleepBefore11:
		t.SleepBefore11 = done
	case constants.HabitWake530:
		t.Wake530 = done
	default:
		return false
	}
	return true
}
