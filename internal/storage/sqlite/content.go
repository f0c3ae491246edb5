package sqlite

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/bodhi-os/bodhi/internal/models"
	"github.com/bodhi-os/bodhi/internal/storage"
)

const contentCols = `id, user_id, title, platforms, type, status, shoot_date, publish_date,
video_link, script_link, owner, remarks, created_at, updated_at`

func scanContent(row interface{ Scan(...any) error }) (models.Content, error) {
	var c models.Content
	var platforms, ctype, status, owner string
	err := row.Scan(&c.ID, &c.UserID, &c.Title, &platforms, &ctype, &status,
		&c.ShootDate, &c.PublishDate, &c.VideoLink, &c.ScriptLink, &owner,
		&c.Remarks, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return models.Content{}, err
	}
	c.Type = models.ContentType(ctype)
	c.Status = models.ContentStatus(status)
	c.Owner = models.Role(owner)
	if platforms != "" {
		if err := json.Unmarshal([]byte(platforms), &c.Platforms); err != nil {
			return models.Content{}, fmt.Errorf("failed to unmarshal platforms: %w", err)
		}
	}
	return c, nil
}

func marshalPlatforms(platforms []models.Platform) (string, error) {
	if platforms == nil {
		platforms = []models.Platform{}
	}
	b, err := json.Marshal(platforms)
	if err != nil {
		return "", fmt.Errorf("failed to marshal platforms: %w", err)
	}
	return string(b), nil
}

func (s *Store) ListContent(userID string) ([]models.Content, error) {
	rows, err := s.db.Query(`SELECT `+contentCols+` FROM content_items WHERE user_id = ? ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.Content
	for rows.Next() {
		c, err := scanContent(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, c)
	}
	return items, rows.Err()
}

func (s *Store) GetContent(id string) (models.Content, error) {
	c, err := scanContent(s.db.QueryRow(`SELECT `+contentCols+` FROM content_items WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Content{}, storage.NotFound("content item", id)
	}
	return c, err
}

func (s *Store) AddContent(c models.Content) error {
	platforms, err := marshalPlatforms(c.Platforms)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(`
INSERT INTO content_items (`+contentCols+`)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.UserID, c.Title, platforms, c.Type, c.Status, c.ShootDate,
		c.PublishDate, c.VideoLink, c.ScriptLink, c.Owner, c.Remarks,
		c.CreatedAt, c.UpdatedAt)
	return err
}

func (s *Store) UpdateContent(c models.Content) error {
	platforms, err := marshalPlatforms(c.Platforms)
	if err != nil {
		return err
	}
	res, err := s.db.Exec(`
UPDATE content_items SET
title = ?, platforms = ?, type = ?, status = ?, shoot_date = ?, publish_date = ?,
video_link = ?, script_link = ?, owner = ?, remarks = ?, updated_at = ?
WHERE id = ?`,
		c.Title, platforms, c.Type, c.Status, c.ShootDate, c.PublishDate,
		c.VideoLink, c.ScriptLink, c.Owner, c.Remarks, c.UpdatedAt, c.ID)
	if err != nil {
		return err
	}
	return requireRow(res, "content item", c.ID)
}

func (s *Store) DeleteContent(id string) error {
	res, err := s.db.Exec(`DELETE FROM content_items WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRow(res, "content item", id)
}
