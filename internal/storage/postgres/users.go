package postgres

import (
	"database/sql"
	"errors"

	"github.com/bodhi-os/bodhi/internal/models"
	"github.com/bodhi-os/bodhi/internal/storage"
)

func (s *Store) CreateUser(u models.User) error {
	_, err := s.db.Exec(`
INSERT INTO users (id, name, email, password_hash, role, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		u.ID, u.Name, u.Email, u.PasswordHash, u.Role, u.CreatedAt, u.UpdatedAt)
	return err
}

func (s *Store) GetUser(id string) (models.User, error) {
	return s.scanUser(s.db.QueryRow(`
SELECT id, name, email, password_hash, role, created_at, updated_at
FROM users WHERE id = $1`, id), id)
}

func (s *Store) GetUserByEmail(email string) (models.User, error) {
	return s.scanUser(s.db.QueryRow(`
SELECT id, name, email, password_hash, role, created_at, updated_at
FROM users WHERE email = $1`, email), email)
}

func (s *Store) scanUser(row *sql.Row, key string) (models.User, error) {
	var u models.User
	var role string
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &role, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, storage.NotFound("user", key)
		}
		return models.User{}, err
	}
	u.Role = models.Role(role)
	return u, nil
}
