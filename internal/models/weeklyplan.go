package models

// WeeklyPlanDay is the 60-day execution-plan checklist for one calendar
// day. Its non-negotiable flags are distinct from the daily tracker's
// habit flags. At most one row exists per (user, date).
type WeeklyPlanDay struct {
	ID              string `json:"id"`
	UserID          string `json:"user_id"`
	Date            string `json:"date"` // YYYY-MM-DD
	DayOfWeek       string `json:"day_of_week"`
	DeepWorkDone    bool   `json:"deep_work_done"`
	ContentWorkDone bool   `json:"content_work_done"`
	GymWalkDone     bool   `json:"gym_walk_done"`
	SleepBefore11   bool   `json:"sleep_before_11"`
	Wake530         bool   `json:"wake_530"`
	Notes           string `json:"notes,omitempty"`
	CreatedAt       string `json:"created_at"`
	UpdatedAt       string `json:"updated_at"`
}
