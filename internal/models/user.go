package models

// Role identifies which of the two account holders a user is.
type Role string

const (
	RoleMe   Role = "ME"
	RoleWife Role = "WIFE"
)

type User struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Role         Role   `json:"role"`
	CreatedAt    string `json:"created_at"` // RFC3339 timestamp
	UpdatedAt    string `json:"updated_at"` // RFC3339 timestamp
}
