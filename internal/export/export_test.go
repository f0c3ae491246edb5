package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/bodhi-os/bodhi/internal/models"
	"github.com/bodhi-os/bodhi/internal/storage/sqlite"
	"github.com/bodhi-os/bodhi/internal/utils"
)

func TestWriteCSV(t *testing.T) {
	tasks := []models.Task{
		{ID: "t1", UserID: "u1", Title: "First", Category: models.CategoryWork,
			Priority: models.PriorityHigh, Status: models.StatusBacklog,
			EstimatedTime: models.Est1Hour, Owner: models.RoleMe,
			CreatedAt: "2026-03-10T08:00:00Z", UpdatedAt: "2026-03-10T08:00:00Z"},
		{ID: "t2", UserID: "u1", Title: "Second", Category: models.CategoryWork,
			Priority: models.PriorityLow, Status: models.StatusDone,
			EstimatedTime: models.Est15Min, Owner: models.RoleWife,
			IsRecurring: true, RecurringFrequency: models.FrequencyWeekly,
			CreatedAt: "2026-03-11T08:00:00Z", UpdatedAt: "2026-03-11T08:00:00Z"},
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, tasks); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("got %d records, want header + 2 rows", len(records))
	}

	header := records[0]
	col := map[string]int{}
	for i, name := range header {
		col[name] = i
	}
	// Header is the sorted union of JSON keys.
	if _, ok := col["title"]; !ok {
		t.Fatalf("header %v missing title column", header)
	}
	for i := 1; i < len(header); i++ {
		if header[i-1] >= header[i] {
			t.Errorf("header not sorted: %q before %q", header[i-1], header[i])
		}
	}

	if got := records[1][col["title"]]; got != "First" {
		t.Errorf("row 1 title = %q, want First", got)
	}
	if got := records[2][col["is_recurring"]]; got != "true" {
		t.Errorf("row 2 is_recurring = %q, want true", got)
	}
	// The first row omits recurring_frequency; its cell must be empty,
	// not garbage.
	if got := records[1][col["recurring_frequency"]]; got != "" {
		t.Errorf("row 1 recurring_frequency = %q, want empty", got)
	}
}

func TestWriteCSVRendersNumbersAndLists(t *testing.T) {
	items := []models.Content{
		{ID: "c1", UserID: "u1", Title: "Video",
			Platforms: []models.Platform{models.PlatformTechTalks, models.PlatformShorts},
			Type:      models.ContentLongVideo, Status: models.ContentIdea, Owner: models.RoleMe,
			CreatedAt: "2026-03-10T08:00:00Z", UpdatedAt: "2026-03-10T08:00:00Z"},
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, items); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}
	out := buf.String()
	// Nested list values are JSON-encoded inline.
	if !strings.Contains(out, `BODHI_TECH_TALKS`) || !strings.Contains(out, `SHORTS`) {
		t.Errorf("platforms missing from output:\n%s", out)
	}

	orders := []models.BusinessOrder{
		{ID: "o1", UserID: "u1", CustomerName: "Arjun",
			BusinessType: models.BusinessPrinting3D, OrderStatus: models.OrderNew,
			PaymentStatus: models.PaymentPending, HandledBy: models.RoleMe,
			Amount: 800, Cost: 200.5, Profit: 599.5,
			CreatedAt: "2026-03-10T08:00:00Z", UpdatedAt: "2026-03-10T08:00:00Z"},
	}
	buf.Reset()
	if err := WriteCSV(&buf, orders); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}
	out = buf.String()
	// Whole numbers render without a trailing .0; fractions keep theirs.
	if strings.Contains(out, "800.0") || !strings.Contains(out, "800") {
		t.Errorf("whole amount not rendered as 800:\n%s", out)
	}
	if !strings.Contains(out, "200.5") {
		t.Errorf("fractional cost missing:\n%s", out)
	}
}

func TestWriteCSVRejectsNonSlice(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, models.Task{}); err == nil {
		t.Error("expected error for non-slice input")
	}
}

func TestFetchUnknownEntity(t *testing.T) {
	if _, err := Fetch(nil, "passwords", "u1"); err == nil {
		t.Error("expected error for unknown entity")
	}
}

func TestWriteBackup(t *testing.T) {
	store := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	defer store.Close()

	now := utils.NowStamp()
	user := models.User{
		ID: uuid.NewString(), Name: "Test", Email: "test@example.com",
		PasswordHash: "hash", Role: models.RoleMe, CreatedAt: now, UpdatedAt: now,
	}
	if err := store.CreateUser(user); err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	task := models.Task{
		ID: uuid.NewString(), UserID: user.ID, Title: "Backed up",
		Category: models.CategoryWork, Priority: models.PriorityLow,
		Status: models.StatusBacklog, EstimatedTime: models.Est15Min,
		Owner: models.RoleMe, CreatedAt: now, UpdatedAt: now,
	}
	if err := store.AddTask(task); err != nil {
		t.Fatalf("failed to add task: %v", err)
	}

	var buf bytes.Buffer
	if err := WriteBackup(&buf, store, user.ID); err != nil {
		t.Fatalf("WriteBackup failed: %v", err)
	}

	var backup Backup
	if err := json.Unmarshal(buf.Bytes(), &backup); err != nil {
		t.Fatalf("backup is not valid JSON: %v", err)
	}
	if backup.UserID != user.ID {
		t.Errorf("backup user = %s, want %s", backup.UserID, user.ID)
	}
	for _, entity := range EntityNames {
		if _, ok := backup.Data[entity]; !ok {
			t.Errorf("backup missing entity %q", entity)
		}
	}

	tasks, ok := backup.Data["tasks"].([]interface{})
	if !ok || len(tasks) != 1 {
		t.Errorf("backup tasks = %v, want one task", backup.Data["tasks"])
	}
}

func TestFilenames(t *testing.T) {
	if got := Filename("tasks", "2026-03-10"); got != "bodhi_tasks_2026-03-10.csv" {
		t.Errorf("Filename = %q", got)
	}
	if got := BackupFilename("2026-03-10"); got != "bodhi_full_backup_2026-03-10.json" {
		t.Errorf("BackupFilename = %q", got)
	}
}
