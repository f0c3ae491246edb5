package models

// HabitStreak tracks consecutive-day completion counters for one habit.
// One row exists per (user, habit name).
type HabitStreak struct {
	ID               string `json:"id"`
	UserID           string `json:"user_id"`
	HabitName        string `json:"habit_name"`
	CurrentStreak    int    `json:"current_streak"`
	LongestStreak    int    `json:"longest_streak"`
	TotalCompletions int    `json:"total_completions"`
	LastCompletedAt  string `json:"last_completed_at,omitempty"` // RFC3339
	CreatedAt        string `json:"created_at"`
	UpdatedAt        string `json:"updated_at"`
}
