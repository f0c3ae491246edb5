package postgres

import (
	"database/sql"
	"errors"

	"github.com/bodhi-os/bodhi/internal/models"
	"github.com/bodhi-os/bodhi/internal/storage"
)

const goalCols = `id, user_id, title, description, category, target_value, current_value,
unit, deadline, status, priority, shared_with, created_at, updated_at`

func scanGoal(row interface{ Scan(...any) error }) (models.Goal, error) {
	var g models.Goal
	var category, status, priority, sharedWith string
	err := row.Scan(&g.ID, &g.UserID, &g.Title, &g.Description, &category,
		&g.TargetValue, &g.CurrentValue, &g.Unit, &g.Deadline, &status, &priority,
		&sharedWith, &g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		return models.Goal{}, err
	}
	g.Category = models.GoalCategory(category)
	g.Status = models.GoalStatus(status)
	g.Priority = models.Priority(priority)
	g.SharedWith = models.Role(sharedWith)
	return g, nil
}

func (s *Store) ListGoals(userID string) ([]models.Goal, error) {
	rows, err := s.db.Query(`SELECT `+goalCols+` FROM goals WHERE user_id = $1 ORDER BY deadline`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var goals []models.Goal
	for rows.Next() {
		g, err := scanGoal(rows)
		if err != nil {
			return nil, err
		}
		goals = append(goals, g)
	}
	return goals, rows.Err()
}

func (s *Store) GetGoal(id string) (models.Goal, error) {
	g, err := scanGoal(s.db.QueryRow(`SELECT `+goalCols+` FROM goals WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Goal{}, storage.NotFound("goal", id)
	}
	return g, err
}

func (s *Store) AddGoal(g models.Goal) error {
	_, err := s.db.Exec(`
INSERT INTO goals (`+goalCols+`)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
		g.ID, g.UserID, g.Title, g.Description, g.Category, g.TargetValue,
		g.CurrentValue, g.Unit, g.Deadline, g.Status, g.Priority, g.SharedWith,
		g.CreatedAt, g.UpdatedAt)
	return err
}

func (s *Store) UpdateGoal(g models.Goal) error {
	res, err := s.db.Exec(`
UPDATE goals SET
title = $1, description = $2, category = $3, target_value = $4, current_value = $5,
unit = $6, deadline = $7, status = $8, priority = $9, shared_with = $10, updated_at = $11
WHERE id = $12`,
		g.Title, g.Description, g.Category, g.TargetValue, g.CurrentValue, g.Unit,
		g.Deadline, g.Status, g.Priority, g.SharedWith, g.UpdatedAt, g.ID)
	if err != nil {
		return err
	}
	return requireRow(res, "goal", g.ID)
}

func (s *Store) DeleteGoal(id string) error {
	res, err := s.db.Exec(`DELETE FROM goals WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRow(res, "goal", id)
}
