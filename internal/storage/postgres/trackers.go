package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/bodhi-os/bodhi/internal/models"
	"github.com/bodhi-os/bodhi/internal/storage"
)

const trackerCols = `id, user_id, date, day, deep_work_done, gym_done, content_done,
ecommerce_done, printer_done, sleep_before_11, wake_530, mood, notes, created_at, updated_at`

func scanTracker(row interface{ Scan(...any) error }) (models.DailyTracker, error) {
	var t models.DailyTracker
	var mood string
	err := row.Scan(&t.ID, &t.UserID, &t.Date, &t.Day, &t.DeepWorkDone, &t.GymDone,
		&t.ContentDone, &t.EcommerceDone, &t.PrinterDone, &t.SleepBefore11, &t.Wake530,
		&mood, &t.Notes, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return models.DailyTracker{}, err
	}
	t.Mood = models.Mood(mood)
	return t, nil
}

func (s *Store) ListTrackers(userID string, r storage.DateRange) ([]models.DailyTracker, error) {
	query := `SELECT ` + trackerCols + ` FROM daily_trackers WHERE user_id = $1`
	args := []any{userID}
	switch {
	case r.Date != "":
		query += ` AND date = $2`
		args = append(args, r.Date)
	case r.StartDate != "" && r.EndDate != "":
		query += ` AND date >= $2 AND date <= $3`
		args = append(args, r.StartDate, r.EndDate)
	}
	query += ` ORDER BY date DESC`

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var trackers []models.DailyTracker
	for rows.Next() {
		t, err := scanTracker(rows)
		if err != nil {
			return nil, err
		}
		trackers = append(trackers, t)
	}
	return trackers, rows.Err()
}

func (s *Store) GetTracker(id string) (models.DailyTracker, error) {
	t, err := scanTracker(s.db.QueryRow(
		`SELECT `+trackerCols+` FROM daily_trackers WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.DailyTracker{}, storage.NotFound("daily tracker", id)
	}
	return t, err
}

func (s *Store) GetTrackerByDate(userID, date string) (models.DailyTracker, error) {
	t, err := scanTracker(s.db.QueryRow(
		`SELECT `+trackerCols+` FROM daily_trackers WHERE user_id = $1 AND date = $2`, userID, date))
	if errors.Is(err, sql.ErrNoRows) {
		return models.DailyTracker{}, storage.NotFound("daily tracker", userID+"/"+date)
	}
	return t, err
}

// UpsertTracker inserts the tracker row or, when a row for (user, date)
// already exists, updates it in place. The unique index makes concurrent
// ensures converge on a single row.
func (s *Store) UpsertTracker(t models.DailyTracker) (models.DailyTracker, error) {
	_, err := s.db.Exec(`
INSERT INTO daily_trackers (`+trackerCols+`)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
ON CONFLICT (user_id, date) DO UPDATE SET
day = EXCLUDED.day,
deep_work_done = EXCLUDED.deep_work_done,
gym_done = EXCLUDED.gym_done,
content_done = EXCLUDED.content_done,
ecommerce_done = EXCLUDED.ecommerce_done,
printer_done = EXCLUDED.printer_done,
sleep_before_11 = EXCLUDED.sleep_before_11,
wake_530 = EXCLUDED.wake_530,
mood = EXCLUDED.mood,
notes = EXCLUDED.notes,
updated_at = EXCLUDED.updated_at`,
		t.ID, t.UserID, t.Date, t.Day, t.DeepWorkDone, t.GymDone, t.ContentDone,
		t.EcommerceDone, t.PrinterDone, t.SleepBefore11, t.Wake530, t.Mood, t.Notes,
		t.CreatedAt, t.UpdatedAt)
	if err != nil {
		return models.DailyTracker{}, err
	}
	return s.GetTrackerByDate(t.UserID, t.Date)
}

func (s *Store) UpdateTracker(t models.DailyTracker) error {
	res, err := s.db.Exec(`
UPDATE daily_trackers SET
day = $1, deep_work_done = $2, gym_done = $3, content_done = $4, ecommerce_done = $5,
printer_done = $6, sleep_before_11 = $7, wake_530 = $8, mood = $9, notes = $10, updated_at = $11
WHERE id = $12`,
		t.Day, t.DeepWorkDone, t.GymDone, t.ContentDone, t.EcommerceDone,
		t.PrinterDone, t.SleepBefore11, t.Wake530, t.Mood, t.Notes, t.UpdatedAt, t.ID)
	if err != nil {
		return err
	}
	return requireRow(res, "daily tracker", t.ID)
}

func (s *Store) DeleteTracker(id string) error {
	res, err := s.db.Exec(`DELETE FROM daily_trackers WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRow(res, "daily tracker", id)
}

// requireRow converts a zero-row write into a NotFoundError.
func requireRow(res sql.Result, entity, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows: %w", err)
	}
	if n == 0 {
		return storage.NotFound(entity, id)
	}
	return nil
}
