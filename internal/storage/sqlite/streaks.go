package sqlite

import (
	"database/sql"
	"errors"

	"github.com/bodhi-os/bodhi/internal/models"
	"github.com/bodhi-os/bodhi/internal/storage"
)

const streakCols = `id, user_id, habit_name, current_streak, longest_streak,
total_completions, last_completed_at, created_at, updated_at`

func scanStreak(row interface{ Scan(...any) error }) (models.HabitStreak, error) {
	var st models.HabitStreak
	err := row.Scan(&st.ID, &st.UserID, &st.HabitName, &st.CurrentStreak,
		&st.LongestStreak, &st.TotalCompletions, &st.LastCompletedAt,
		&st.CreatedAt, &st.UpdatedAt)
	return st, err
}

func (s *Store) ListStreaks(userID, habitName string) ([]models.HabitStreak, error) {
	query := `SELECT ` + streakCols + ` FROM habit_streaks WHERE user_id = ?`
	args := []any{userID}
	if habitName != "" {
		query += ` AND habit_name = ?`
		args = append(args, habitName)
	}
	query += ` ORDER BY current_streak DESC`

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var streaks []models.HabitStreak
	for rows.Next() {
		st, err := scanStreak(rows)
		if err != nil {
			return nil, err
		}
		streaks = append(streaks, st)
	}
	return streaks, rows.Err()
}

func (s *Store) GetStreak(userID, habitName string) (models.HabitStreak, error) {
	st, err := scanStreak(s.db.QueryRow(
		`SELECT `+streakCols+` FROM habit_streaks WHERE user_id = ? AND habit_name = ?`,
		userID, habitName))
	if errors.Is(err, sql.ErrNoRows) {
		return models.HabitStreak{}, storage.NotFound("habit streak", userID+"/"+habitName)
	}
	return st, err
}

// UpsertStreak writes the streak counters, keyed on (user, habit name).
func (s *Store) UpsertStreak(st models.HabitStreak) (models.HabitStreak, error) {
	_, err := s.db.Exec(`
INSERT INTO habit_streaks (`+streakCols+`)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT (user_id, habit_name) DO UPDATE SET
current_streak = EXCLUDED.current_streak,
longest_streak = EXCLUDED.longest_streak,
total_completions = EXCLUDED.total_completions,
last_completed_at = EXCLUDED.last_completed_at,
updated_at = EXCLUDED.updated_at`,
		st.ID, st.UserID, st.HabitName, st.CurrentStreak, st.LongestStreak,
		st.TotalCompletions, st.LastCompletedAt, st.CreatedAt, st.UpdatedAt)
	if err != nil {
		return models.HabitStreak{}, err
	}
	return s.GetStreak(st.UserID, st.HabitName)
}

func (s *Store) DeleteStreak(id string) error {
	res, err := s.db.Exec(`DELETE FROM habit_streaks WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRow(res, "habit streak", id)
}
