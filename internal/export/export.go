// Package export renders entity collections as CSV files and a single
// JSON backup bundle.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"sort"
	"time"

	"github.com/bodhi-os/bodhi/internal/storage"
)

// Backup is the full JSON export of one user's data.
type Backup struct {
	ExportDate string                 `json:"export_date"`
	UserID     string                 `json:"user_id"`
	Data       map[string]interface{} `json:"data"`
}

// EntityNames lists the exportable entity collections.
var EntityNames = []string{
	"tasks", "daily_trackers", "content", "business", "goals",
	"habit_streaks", "weekly_plans", "accountability",
}

// Fetch loads one named entity collection for the user.
func Fetch(store storage.Provider, entity, userID string) (interface{}, error) {
	switch entity {
	case "tasks":
		return store.ListTasks(userID)
	case "daily_trackers":
		return store.ListTrackers(userID, storage.DateRange{})
	case "content":
		return store.ListContent(userID)
	case "business":
		return store.ListOrders(userID)
	case "goals":
		return store.ListGoals(userID)
	case "habit_streaks":
		return store.ListStreaks(userID, "")
	case "weekly_plans":
		return store.ListWeeklyPlans(userID, storage.DateRange{})
	case "accountability":
		return store.ListShares(userID, "")
	default:
		return nil, fmt.Errorf("unknown export entity %q", entity)
	}
}

// WriteCSV writes rows as RFC4180 CSV. The header is the union of keys
// across all rows (sorted for a stable layout); nested values are
// JSON-encoded inline. Rows are marshalled through their JSON form so
// column names match the API field names.
func WriteCSV(w io.Writer, rows interface{}) error {
	maps, err := toMaps(rows)
	if err != nil {
		return err
	}

	keySet := map[string]bool{}
	for _, m := range maps {
		for k := range m {
			keySet[k] = true
		}
	}
	keys := make([]string, 0, len(keySet))
	for k := range keySet {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	cw := csv.NewWriter(w)
	if err := cw.Write(keys); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	record := make([]string, len(keys))
	for _, m := range maps {
		for i, k := range keys {
			record[i] = stringify(m[k])
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteBackup writes the full JSON backup bundle for a user.
func WriteBackup(w io.Writer, store storage.Provider, userID string) error {
	backup := Backup{
		ExportDate: time.Now().Format(time.RFC3339),
		UserID:     userID,
		Data:       map[string]interface{}{},
	}
	for _, entity := range EntityNames {
		rows, err := Fetch(store, entity, userID)
		if err != nil {
			return fmt.Errorf("failed to fetch %s for backup: %w", entity, err)
		}
		backup.Data[entity] = rows
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(backup)
}

func toMaps(rows interface{}) ([]map[string]interface{}, error) {
	v := reflect.ValueOf(rows)
	if v.Kind() != reflect.Slice {
		return nil, fmt.Errorf("CSV export expects a slice, got %T", rows)
	}

	maps := make([]map[string]interface{}, 0, v.Len())
	for i := 0; i < v.Len(); i++ {
		b, err := json.Marshal(v.Index(i).Interface())
		if err != nil {
			return nil, fmt.Errorf("failed to marshal row %d: %w", i, err)
		}
		var m map[string]interface{}
		if err := json.Unmarshal(b, &m); err != nil {
			return nil, fmt.Errorf("failed to unmarshal row %d: %w", i, err)
		}
		maps = append(maps, m)
	}
	return maps, nil
}

func stringify(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		if val {
			return "true"
		}
		return "false"
	case float64:
		// JSON numbers decode as float64; render integers without a
		// trailing .0
		if val == float64(int64(val)) {
			return fmt.Sprintf("%d", int64(val))
		}
		return fmt.Sprintf("%g", val)
	default:
		b, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprintf("%v", val)
		}
		return string(b)
	}
}

// Filename builds the conventional export filename for an entity.
func Filename(entity, date string) string {
	return fmt.Sprintf("bodhi_%s_%s.csv", entity, date)
}

// BackupFilename builds the conventional backup filename.
func BackupFilename(date string) string {
	return fmt.Sprintf("bodhi_full_backup_%s.json", date)
}
