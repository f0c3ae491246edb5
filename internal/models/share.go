package models

// ShareType names the kind of item an accountability share points at.
type ShareType string

const (
	ShareGoal    ShareType = "GOAL"
	ShareTask    ShareType = "TASK"
	ShareTracker ShareType = "TRACKER"
	ShareContent ShareType = "CONTENT"
)

// AccountabilityShare is a message from one user to the other
// referencing a shared item, with an optional single-emoji reaction
// from the recipient.
type AccountabilityShare struct {
	ID         string    `json:"id"`
	FromUserID string    `json:"from_user_id"`
	ToUserID   string    `json:"to_user_id"`
	ShareType  ShareType `json:"share_type"`
	ItemID     string    `json:"item_id"`
	Message    string    `json:"message"`
	Reaction   string    `json:"reaction,omitempty"`
	CreatedAt  string    `json:"created_at"`
	UpdatedAt  string    `json:"updated_at"`
}
