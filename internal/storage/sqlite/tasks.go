package sqlite

import (
	"database/sql"
	"errors"

	"github.com/bodhi-os/bodhi/internal/models"
	"github.com/bodhi-os/bodhi/internal/storage"
)

const taskCols = `id, user_id, title, description, category, priority, status, due_date,
estimated_time, owner, is_recurring, recurring_frequency, last_recurred_at, parent_task_id,
created_at, updated_at`

func scanTask(row interface{ Scan(...any) error }) (models.Task, error) {
	var t models.Task
	var category, priority, status, estimated, owner, freq string
	err := row.Scan(&t.ID, &t.UserID, &t.Title, &t.Description, &category, &priority,
		&status, &t.DueDate, &estimated, &owner, &t.IsRecurring, &freq,
		&t.LastRecurredAt, &t.ParentTaskID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return models.Task{}, err
	}
	t.Category = models.TaskCategory(category)
	t.Priority = models.Priority(priority)
	t.Status = models.TaskStatus(status)
	t.EstimatedTime = models.EstimatedTime(estimated)
	t.Owner = models.Role(owner)
	t.RecurringFrequency = models.Frequency(freq)
	return t, nil
}

func (s *Store) ListTasks(userID string) ([]models.Task, error) {
	rows, err := s.db.Query(`SELECT `+taskCols+` FROM tasks WHERE user_id = ? ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []models.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func (s *Store) GetTask(id string) (models.Task, error) {
	t, err := scanTask(s.db.QueryRow(`SELECT `+taskCols+` FROM tasks WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Task{}, storage.NotFound("task", id)
	}
	return t, err
}

func (s *Store) AddTask(t models.Task) error {
	_, err := s.db.Exec(`
INSERT INTO tasks (`+taskCols+`)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.UserID, t.Title, t.Description, t.Category, t.Priority, t.Status,
		t.DueDate, t.EstimatedTime, t.Owner, t.IsRecurring, t.RecurringFrequency,
		t.LastRecurredAt, t.ParentTaskID, t.CreatedAt, t.UpdatedAt)
	return err
}

func (s *Store) UpdateTask(t models.Task) error {
	res, err := s.db.Exec(`
UPDATE tasks SET
title = ?, description = ?, category = ?, priority = ?, status = ?, due_date = ?,
estimated_time = ?, owner = ?, is_recurring = ?, recurring_frequency = ?,
last_recurred_at = ?, parent_task_id = ?, updated_at = ?
WHERE id = ?`,
		t.Title, t.Description, t.Category, t.Priority, t.Status, t.DueDate,
		t.EstimatedTime, t.Owner, t.IsRecurring, t.RecurringFrequency,
		t.LastRecurredAt, t.ParentTaskID, t.UpdatedAt, t.ID)
	if err != nil {
		return err
	}
	return requireRow(res, "task", t.ID)
}

func (s *Store) DeleteTask(id string) error {
	res, err := s.db.Exec(`DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRow(res, "task", id)
}
