package metrics

import (
	"github.com/bodhi-os/bodhi/internal/models"
	"github.com/bodhi-os/bodhi/internal/utils"
)

// StreakState classifies a streak relative to today.
type StreakState string

const (
	StreakNew    StreakState = "new"    // never completed
	StreakActive StreakState = "active" // completed today or yesterday
	StreakBroken StreakState = "broken" // gap of more than one day
)

// StreakStatus is the classification of a streak plus how many days ago
// it was last completed.
type StreakStatus struct {
	State   StreakState `json:"state"`
	DaysAgo int         `json:"days_ago"`
}

// ClassifyStreak determines whether a streak is still alive given the
// RFC3339 timestamp of the last completion. Gaps are measured in local
// calendar days, so a completion at 23:55 followed by one at 00:05 still
// counts as consecutive days.
func ClassifyStreak(lastCompletedAt, today string) StreakStatus {
	if lastCompletedAt == "" {
		return StreakStatus{State: StreakNew}
	}
	lastDay, err := utils.LocalDay(lastCompletedAt)
	if err != nil {
		return StreakStatus{State: StreakNew}
	}
	gap, err := utils.DaysBetween(lastDay, today)
	if err != nil {
		return StreakStatus{State: StreakNew}
	}
	switch {
	case gap <= 1:
		return StreakStatus{State: StreakActive, DaysAgo: gap}
	default:
		return StreakStatus{State: StreakBroken, DaysAgo: gap}
	}
}

// AdvanceStreak applies one completion event to a streak record and
// reports whether the record changed.
//
// Rules: a second completion on the same local day is a no-op; a
// completion on the day after the last one extends the streak by one;
// any larger gap resets it to one. The longest streak only ever grows,
// and total completions count every distinct completed day.
func AdvanceStreak(s models.HabitStreak, today, now string) (models.HabitStreak, bool) {
	lastDay := ""
	if s.LastCompletedAt != "" {
		if d, err := utils.LocalDay(s.LastCompletedAt); err == nil {
			lastDay = d
		}
	}

	if lastDay == today {
		return s, false
	}

	if lastDay != "" {
		gap, err := utils.DaysBetween(lastDay, today)
		if err == nil && gap == 1 {
			s.CurrentStreak++
		} else {
			s.CurrentStreak = 1
		}
	} else {
		s.CurrentStreak = 1
	}

	s.TotalCompletions++
	if s.CurrentStreak > s.LongestStreak {
		s.LongestStreak = s.CurrentStreak
	}
	s.LastCompletedAt = now
	return s, true
}

// NewStreak builds the initial streak record for a first completion
// event. An uncompleted first event yields an all-zero record.
func NewStreak(userID, habitName string, completed bool, now string) models.HabitStreak {
	s := models.HabitStreak{
		UserID:    userID,
		HabitName: habitName,
	}
	if completed {
		s.CurrentStreak = 1
		s.LongestStreak = 1
		s.TotalCompletions = 1
		s.LastCompletedAt = now
	}
	return s
}
