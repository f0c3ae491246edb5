package storage

import "github.com/bodhi-os/bodhi/internal/models"

// DateRange narrows a listing to one day or an inclusive day span.
// Empty fields mean "no bound".
type DateRange struct {
	Date      string
	StartDate string
	EndDate   string
}

// Provider is the persistence boundary. Implementations exist for
// PostgreSQL and SQLite; both enforce the natural uniqueness keys
// (user+date for trackers and weekly plans, user+habit for streaks,
// email for users) at the schema level.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error
	Ping() error

	// Users
	CreateUser(models.User) error
	GetUser(id string) (models.User, error)
	GetUserByEmail(email string) (models.User, error)

	// Daily trackers
	ListTrackers(userID string, r DateRange) ([]models.DailyTracker, error)
	GetTrackerByDate(userID, date string) (models.DailyTracker, error)
	UpsertTracker(models.DailyTracker) (models.DailyTracker, error)
	UpdateTracker(models.DailyTracker) error
	DeleteTracker(id string) error
	GetTracker(id string) (models.DailyTracker, error)

	// Tasks
	ListTasks(userID string) ([]models.Task, error)
	GetTask(id string) (models.Task, error)
	AddTask(models.Task) error
	UpdateTask(models.Task) error
	DeleteTask(id string) error

	// Content
	ListContent(userID string) ([]models.Content, error)
	GetContent(id string) (models.Content, error)
	AddContent(models.Content) error
	UpdateContent(models.Content) error
	DeleteContent(id string) error

	// Business orders
	ListOrders(userID string) ([]models.BusinessOrder, error)
	GetOrder(id string) (models.BusinessOrder, error)
	AddOrder(models.BusinessOrder) error
	UpdateOrder(models.BusinessOrder) error
	DeleteOrder(id string) error

	// Goals
	ListGoals(userID string) ([]models.Goal, error)
	GetGoal(id string) (models.Goal, error)
	AddGoal(models.Goal) error
	UpdateGoal(models.Goal) error
	DeleteGoal(id string) error

	// Habit streaks
	ListStreaks(userID, habitName string) ([]models.HabitStreak, error)
	GetStreak(userID, habitName string) (models.HabitStreak, error)
	UpsertStreak(models.HabitStreak) (models.HabitStreak, error)
	DeleteStreak(id string) error

	// Weekly plan days
	ListWeeklyPlans(userID string, r DateRange) ([]models.WeeklyPlanDay, error)
	UpsertWeeklyPlan(models.WeeklyPlanDay) (models.WeeklyPlanDay, error)
	GetWeeklyPlan(id string) (models.WeeklyPlanDay, error)
	DeleteWeeklyPlan(id string) error

	// Accountability shares; listing matches either side of the share.
	ListShares(userID, shareType string) ([]models.AccountabilityShare, error)
	GetShare(id string) (models.AccountabilityShare, error)
	AddShare(models.AccountabilityShare) error
	UpdateShare(models.AccountabilityShare) error
	DeleteShare(id string) error

	// Utils
	GetConfigPath() string
}

// NotFoundError is returned when a referenced row does not exist.
type NotFoundError struct {
	Entity string
	Key    string
}

func (e *NotFoundError) Error() string {
	return e.Entity + " " + e.Key + " not found"
}

// NotFound builds a NotFoundError for the given entity and lookup key.
func NotFound(entity, key string) error {
	return &NotFoundError{Entity: entity, Key: key}
}
