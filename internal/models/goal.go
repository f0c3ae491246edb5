package models

type GoalCategory string

const (
	GoalContent  GoalCategory = "CONTENT"
	GoalBusiness GoalCategory = "BUSINESS"
	GoalHealth   GoalCategory = "HEALTH"
	GoalPersonal GoalCategory = "PERSONAL"
	GoalLearning GoalCategory = "LEARNING"
)

type GoalStatus string

const (
	GoalInProgress GoalStatus = "IN_PROGRESS"
	GoalCompleted  GoalStatus = "COMPLETED"
	GoalPaused     GoalStatus = "PAUSED"
	GoalCancelled  GoalStatus = "CANCELLED"
)

type Goal struct {
	ID           string       `json:"id"`
	UserID       string       `json:"user_id"`
	Title        string       `json:"title"`
	Description  string       `json:"description,omitempty"`
	Category     GoalCategory `json:"category"`
	TargetValue  float64      `json:"target_value"`
	CurrentValue float64      `json:"current_value"`
	Unit         string       `json:"unit"`
	Deadline     string       `json:"deadline"` // YYYY-MM-DD
	Status       GoalStatus   `json:"status"`
	Priority     Priority     `json:"priority"`
	SharedWith   Role         `json:"shared_with,omitempty"`
	CreatedAt    string       `json:"created_at"`
	UpdatedAt    string       `json:"updated_at"`
}
