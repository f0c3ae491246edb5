package sqlite

import (
	"database/sql"
	"errors"

	"github.com/bodhi-os/bodhi/internal/models"
	"github.com/bodhi-os/bodhi/internal/storage"
)

const weeklyPlanCols = `id, user_id, date, day_of_week, deep_work_done, content_work_done,
gym_walk_done, sleep_before_11, wake_530, notes, created_at, updated_at`

func scanWeeklyPlan(row interface{ Scan(...any) error }) (models.WeeklyPlanDay, error) {
	var p models.WeeklyPlanDay
	err := row.Scan(&p.ID, &p.UserID, &p.Date, &p.DayOfWeek, &p.DeepWorkDone,
		&p.ContentWorkDone, &p.GymWalkDone, &p.SleepBefore11, &p.Wake530,
		&p.Notes, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

func (s *Store) ListWeeklyPlans(userID string, r storage.DateRange) ([]models.WeeklyPlanDay, error) {
	query := `SELECT ` + weeklyPlanCols + ` FROM weekly_plans WHERE user_id = ?`
	args := []any{userID}
	switch {
	case r.Date != "":
		query += ` AND date = ?`
		args = append(args, r.Date)
	case r.StartDate != "" && r.EndDate != "":
		query += ` AND date >= ? AND date <= ?`
		args = append(args, r.StartDate, r.EndDate)
	}
	query += ` ORDER BY date DESC`

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var plans []models.WeeklyPlanDay
	for rows.Next() {
		p, err := scanWeeklyPlan(rows)
		if err != nil {
			return nil, err
		}
		plans = append(plans, p)
	}
	return plans, rows.Err()
}

func (s *Store) GetWeeklyPlan(id string) (models.WeeklyPlanDay, error) {
	p, err := scanWeeklyPlan(s.db.QueryRow(
		`SELECT `+weeklyPlanCols+` FROM weekly_plans WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.WeeklyPlanDay{}, storage.NotFound("weekly plan day", id)
	}
	return p, err
}

// UpsertWeeklyPlan writes the checklist row, keyed on (user, date).
func (s *Store) UpsertWeeklyPlan(p models.WeeklyPlanDay) (models.WeeklyPlanDay, error) {
	_, err := s.db.Exec(`
INSERT INTO weekly_plans (`+weeklyPlanCols+`)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT (user_id, date) DO UPDATE SET
day_of_week = EXCLUDED.day_of_week,
deep_work_done = EXCLUDED.deep_work_done,
content_work_done = EXCLUDED.content_work_done,
gym_walk_done = EXCLUDED.gym_walk_done,
sleep_before_11 = EXCLUDED.sleep_before_11,
wake_530 = EXCLUDED.wake_530,
notes = EXCLUDED.notes,
updated_at = EXCLUDED.updated_at`,
		p.ID, p.UserID, p.Date, p.DayOfWeek, p.DeepWorkDone, p.ContentWorkDone,
		p.GymWalkDone, p.SleepBefore11, p.Wake530, p.Notes, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return models.WeeklyPlanDay{}, err
	}

	row := s.db.QueryRow(
		`SELECT `+weeklyPlanCols+` FROM weekly_plans WHERE user_id = ? AND date = ?`,
		p.UserID, p.Date)
	return scanWeeklyPlan(row)
}

func (s *Store) DeleteWeeklyPlan(id string) error {
	res, err := s.db.Exec(`DELETE FROM weekly_plans WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRow(res, "weekly plan day", id)
}
