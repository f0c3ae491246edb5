package models

// TaskCategory groups tasks by the area of life they belong to.
type TaskCategory string

const (
	CategoryYouTube    TaskCategory = "YOUTUBE"
	CategoryBodhiLearn TaskCategory = "BODHI_LEARN"
	CategoryEcommerce  TaskCategory = "ECOMMERCE"
	CategoryPrinter    TaskCategory = "PRINTER"
	CategoryWork       TaskCategory = "WORK"
	CategoryPersonal   TaskCategory = "PERSONAL"
)

type Priority string

const (
	PriorityHigh   Priority = "HIGH"
	PriorityMedium Priority = "MEDIUM"
	PriorityLow    Priority = "LOW"
)

// TaskStatus is the kanban column a task sits in.
type TaskStatus string

const (
	StatusBacklog    TaskStatus = "BACKLOG"
	StatusToday      TaskStatus = "TODAY"
	StatusInProgress TaskStatus = "IN_PROGRESS"
	StatusWaiting    TaskStatus = "WAITING"
	StatusDone       TaskStatus = "DONE"
)

// EstimatedTime is a coarse effort bucket, not a precise duration.
type EstimatedTime string

const (
	Est15Min  EstimatedTime = "MIN15"
	Est30Min  EstimatedTime = "MIN30"
	Est1Hour  EstimatedTime = "HOUR1"
	Est2Hours EstimatedTime = "HOUR2"
	Est4Hours EstimatedTime = "HOUR4"
)

// Frequency is how often a recurring task regenerates.
type Frequency string

const (
	FrequencyDaily   Frequency = "DAILY"
	FrequencyWeekly  Frequency = "WEEKLY"
	FrequencyMonthly Frequency = "MONTHLY"
)

type Task struct {
	ID                 string        `json:"id"`
	UserID             string        `json:"user_id"`
	Title              string        `json:"title"`
	Description        string        `json:"description,omitempty"`
	Category           TaskCategory  `json:"category"`
	Priority           Priority      `json:"priority"`
	Status             TaskStatus    `json:"status"`
	DueDate            string        `json:"due_date,omitempty"` // YYYY-MM-DD
	EstimatedTime      EstimatedTime `json:"estimated_time"`
	Owner              Role          `json:"owner"`
	IsRecurring        bool          `json:"is_recurring"`
	RecurringFrequency Frequency     `json:"recurring_frequency,omitempty"`
	LastRecurredAt     string        `json:"last_recurred_at,omitempty"` // RFC3339
	ParentTaskID       string        `json:"parent_task_id,omitempty"`
	CreatedAt          string        `json:"created_at"`
	UpdatedAt          string        `json:"updated_at"`
}
