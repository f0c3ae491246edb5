// Package seed loads a small demo dataset: both account holders plus a
// few rows of every entity, enough to exercise the whole API from a
// fresh database.
package seed

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/bodhi-os/bodhi/internal/auth"
	"github.com/bodhi-os/bodhi/internal/models"
	"github.com/bodhi-os/bodhi/internal/storage"
	"github.com/bodhi-os/bodhi/internal/utils"
)

const (
	meEmail   = "me@bodhi.local"
	wifeEmail = "wife@bodhi.local"

	// Demo credentials, printed by the seed command.
	demoPassword = "bodhi-demo"
)

// Run populates the store with the demo dataset. Seeding a database
// that already has the demo users is an error; wipe the data directory
// first.
func Run(store storage.Provider) (string, error) {
	if _, err := store.GetUserByEmail(meEmail); err == nil {
		return "", fmt.Errorf("demo user %s already exists; refusing to seed twice", meEmail)
	}

	hash, err := auth.HashPassword(demoPassword)
	if err != nil {
		return "", err
	}

	now := utils.NowStamp()
	me := models.User{
		ID: uuid.NewString(), Name: "Bodhi", Email: meEmail,
		PasswordHash: hash, Role: models.RoleMe, CreatedAt: now, UpdatedAt: now,
	}
	wife := models.User{
		ID: uuid.NewString(), Name: "Priya", Email: wifeEmail,
		PasswordHash: hash, Role: models.RoleWife, CreatedAt: now, UpdatedAt: now,
	}
	for _, u := range []models.User{me, wife} {
		if err := store.CreateUser(u); err != nil {
			return "", err
		}
	}

	count := 2
	n, err := seedTrackers(store, me.ID)
	if err != nil {
		return "", err
	}
	count += n

	n, err = seedTasks(store, me.ID)
	if err != nil {
		return "", err
	}
	count += n

	n, err = seedContent(store, me.ID)
	if err != nil {
		return "", err
	}
	count += n

	n, err = seedBusiness(store, me.ID, wife.ID)
	if err != nil {
		return "", err
	}
	count += n

	goalIDs, err := seedGoals(store, me.ID)
	if err != nil {
		return "", err
	}
	count += len(goalIDs)

	n, err = seedShares(store, me.ID, wife.ID, goalIDs[0])
	if err != nil {
		return "", err
	}
	count += n

	return fmt.Sprintf("Seeded %d rows (login: %s / %s, password %q)",
		count, meEmail, wifeEmail, demoPassword), nil
}

func seedTrackers(store storage.Provider, userID string) (int, error) {
	now := utils.NowStamp()
	dates := []string{utils.DaysAgo(2), utils.DaysAgo(1), utils.Today()}
	for i, date := range dates {
		day, err := utils.ParseDate(date)
		if err != nil {
			return i, err
		}
		t := models.DailyTracker{
			ID: uuid.NewString(), UserID: userID, Date: date,
			Day:          utils.WeekdayLabel(day),
			DeepWorkDone: true, GymDone: i%2 == 0, ContentDone: i == 2,
			SleepBefore11: true, Mood: models.MoodGood,
			CreatedAt: now, UpdatedAt: now,
		}
		if _, err := store.UpsertTracker(t); err != nil {
			return i, err
		}
	}
	return len(dates), nil
}

func seedTasks(store storage.Provider, userID string) (int, error) {
	now := utils.NowStamp()
	tasks := []models.Task{
		{
			Title: "Script next long-form video", Category: models.CategoryYouTube,
			Priority: models.PriorityHigh, Status: models.StatusToday,
			EstimatedTime: models.Est2Hours, Owner: models.RoleMe,
			DueDate: utils.Today(),
		},
		{
			Title: "Restock filament", Category: models.CategoryPrinter,
			Priority: models.PriorityMedium, Status: models.StatusBacklog,
			EstimatedTime: models.Est30Min, Owner: models.RoleWife,
			DueDate: utils.DaysFromNow(3),
		},
		{
			Title: "Weekly finance review", Category: models.CategoryPersonal,
			Priority: models.PriorityMedium, Status: models.StatusDone,
			EstimatedTime: models.Est1Hour, Owner: models.RoleMe,
			DueDate: utils.DaysAgo(7), IsRecurring: true,
			RecurringFrequency: models.FrequencyWeekly,
		},
	}
	for i := range tasks {
		tasks[i].ID = uuid.NewString()
		tasks[i].UserID = userID
		tasks[i].CreatedAt = now
		tasks[i].UpdatedAt = now
		if err := store.AddTask(tasks[i]); err != nil {
			return i, err
		}
	}
	return len(tasks), nil
}

func seedContent(store storage.Provider, userID string) (int, error) {
	now := utils.NowStamp()
	items := []models.Content{
		{
			Title:     "Goroutines explained in 10 minutes",
			Platforms: []models.Platform{models.PlatformTechTalks},
			Type:      models.ContentLongVideo, Status: models.ContentEditing,
			ShootDate: utils.DaysAgo(4), Owner: models.RoleMe,
		},
		{
			Title:     "Morning routine reel",
			Platforms: []models.Platform{models.PlatformInstagram, models.PlatformShorts},
			Type:      models.ContentReel, Status: models.ContentIdea,
			Owner: models.RoleWife,
		},
	}
	for i := range items {
		items[i].ID = uuid.NewString()
		items[i].UserID = userID
		items[i].CreatedAt = now
		items[i].UpdatedAt = now
		if err := store.AddContent(items[i]); err != nil {
			return i, err
		}
	}
	return len(items), nil
}

func seedBusiness(store storage.Provider, meID, wifeID string) (int, error) {
	now := utils.NowStamp()
	orders := []models.BusinessOrder{
		{
			UserID: meID, CustomerName: "Arjun", BusinessType: models.BusinessPrinting3D,
			OrderStatus: models.OrderPrinting, PaymentStatus: models.PaymentPartial,
			OrderDate: utils.DaysAgo(2), Amount: 800, Cost: 200, Profit: 600,
			HandledBy: models.RoleMe,
		},
		{
			UserID: wifeID, CustomerName: "Meera", BusinessType: models.BusinessClothing,
			OrderStatus: models.OrderDelivered, PaymentStatus: models.PaymentPaid,
			OrderDate: utils.DaysAgo(10), DeliveryDate: utils.DaysAgo(3),
			Amount: 1500, Cost: 900, Profit: 600,
			HandledBy: models.RoleWife,
		},
	}
	for i := range orders {
		orders[i].ID = uuid.NewString()
		orders[i].CreatedAt = now
		orders[i].UpdatedAt = now
		if err := store.AddOrder(orders[i]); err != nil {
			return i, err
		}
	}
	return len(orders), nil
}

func seedGoals(store storage.Provider, userID string) ([]string, error) {
	now := utils.NowStamp()
	goals := []models.Goal{
		{
			Title: "Reach 10k subscribers", Category: models.GoalContent,
			TargetValue: 10000, CurrentValue: 4200, Unit: "subscribers",
			Deadline: utils.DaysFromNow(90), Status: models.GoalInProgress,
			Priority: models.PriorityHigh, SharedWith: models.RoleWife,
		},
		{
			Title: "Run 100 km this quarter", Category: models.GoalHealth,
			TargetValue: 100, CurrentValue: 35, Unit: "km",
			Deadline: utils.DaysFromNow(45), Status: models.GoalInProgress,
			Priority: models.PriorityMedium,
		},
	}
	ids := make([]string, 0, len(goals))
	for i := range goals {
		goals[i].ID = uuid.NewString()
		goals[i].UserID = userID
		goals[i].CreatedAt = now
		goals[i].UpdatedAt = now
		if err := store.AddGoal(goals[i]); err != nil {
			return ids, err
		}
		ids = append(ids, goals[i].ID)
	}
	return ids, nil
}

func seedShares(store storage.Provider, meID, wifeID, goalID string) (int, error) {
	now := utils.NowStamp()
	share := models.AccountabilityShare{
		ID: uuid.NewString(), FromUserID: meID, ToUserID: wifeID,
		ShareType: models.ShareGoal, ItemID: goalID,
		Message:   "Keeping me honest on the subscriber goal!",
		CreatedAt: now, UpdatedAt: now,
	}
	if err := store.AddShare(share); err != nil {
		return 0, err
	}
	return 1, nil
}
