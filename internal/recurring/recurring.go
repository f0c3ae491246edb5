// Package recurring regenerates completed recurring tasks. Instead of a
// background scheduler, an explicit catch-up pass runs on login (and on
// demand) and spawns any instances that have come due since the last
// pass. The pass is idempotent: a parent spawns at most one child per
// computed due date.
package recurring

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/bodhi-os/bodhi/internal/constants"
	"github.com/bodhi-os/bodhi/internal/logger"
	"github.com/bodhi-os/bodhi/internal/models"
	"github.com/bodhi-os/bodhi/internal/storage"
	"github.com/bodhi-os/bodhi/internal/utils"
)

// NextDueDate computes when the next instance of a recurring task is
// due, given the current due date. Monthly recurrence uses AddDate month
// arithmetic, so Jan 31 + 1 month normalizes into March.
func NextDueDate(due time.Time, freq models.Frequency) time.Time {
	switch freq {
	case models.FrequencyWeekly:
		return due.AddDate(0, 0, 7)
	case models.FrequencyMonthly:
		return due.AddDate(0, 1, 0)
	default:
		return due.AddDate(0, 0, 1)
	}
}

// SpawnInstance builds the next instance of a completed recurring task:
// a fresh BACKLOG task with the recomputed due date and a back-reference
// to its parent.
func SpawnInstance(parent models.Task, now time.Time) models.Task {
	due := now
	if parent.DueDate != "" {
		if d, err := utils.ParseDate(parent.DueDate); err == nil {
			due = d
		}
	}
	next := NextDueDate(due, parent.RecurringFrequency)

	return models.Task{
		ID:                 uuid.NewString(),
		UserID:             parent.UserID,
		Title:              parent.Title,
		Description:        parent.Description,
		Category:           parent.Category,
		Priority:           parent.Priority,
		Status:             models.StatusBacklog,
		DueDate:            next.Format(constants.DateFormat),
		EstimatedTime:      parent.EstimatedTime,
		Owner:              parent.Owner,
		IsRecurring:        true,
		RecurringFrequency: parent.RecurringFrequency,
		ParentTaskID:       parent.ID,
		CreatedAt:          now.Format(time.RFC3339),
		UpdatedAt:          now.Format(time.RFC3339),
	}
}

// CatchUp scans the user's completed recurring tasks and spawns any
// instances that have come due. It returns the spawned tasks. Duplicate
// spawns are prevented two ways: the parent's LastRecurredAt advances
// with every spawn, and an existing child with the same parent and due
// date short-circuits the spawn even if the stamp update was lost.
func CatchUp(store storage.Provider, userID string, now time.Time) ([]models.Task, error) {
	tasks, err := store.ListTasks(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks for catch-up: %w", err)
	}

	childByParentDue := make(map[string]bool)
	for _, t := range tasks {
		if t.ParentTaskID != "" {
			childByParentDue[t.ParentTaskID+"|"+t.DueDate] = true
		}
	}

	var spawned []models.Task
	for _, t := range tasks {
		if !t.IsRecurring || t.Status != models.StatusDone {
			continue
		}

		last := t.CreatedAt
		if t.LastRecurredAt != "" {
			last = t.LastRecurredAt
		}
		lastTime, err := time.Parse(time.RFC3339, last)
		if err != nil {
			logger.Warn("Skipping recurring task with bad timestamp", "task", t.ID, "error", err)
			continue
		}

		if NextDueDate(lastTime, t.RecurringFrequency).After(now) {
			continue
		}

		child := SpawnInstance(t, now)
		if childByParentDue[t.ID+"|"+child.DueDate] {
			continue
		}

		if err := store.AddTask(child); err != nil {
			return spawned, fmt.Errorf("failed to spawn recurring instance of %s: %w", t.ID, err)
		}

		t.LastRecurredAt = now.Format(time.RFC3339)
		t.UpdatedAt = t.LastRecurredAt
		if err := store.UpdateTask(t); err != nil {
			return spawned, fmt.Errorf("failed to stamp recurring parent %s: %w", t.ID, err)
		}

		childByParentDue[t.ID+"|"+child.DueDate] = true
		spawned = append(spawned, child)
	}

	return spawned, nil
}
