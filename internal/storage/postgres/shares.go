package postgres

import (
	"database/sql"
	"errors"

	"github.com/bodhi-os/bodhi/internal/models"
	"github.com/bodhi-os/bodhi/internal/storage"
)

const shareCols = `id, from_user_id, to_user_id, share_type, item_id, message, reaction,
created_at, updated_at`

func scanShare(row interface{ Scan(...any) error }) (models.AccountabilityShare, error) {
	var sh models.AccountabilityShare
	var shareType string
	err := row.Scan(&sh.ID, &sh.FromUserID, &sh.ToUserID, &shareType, &sh.ItemID,
		&sh.Message, &sh.Reaction, &sh.CreatedAt, &sh.UpdatedAt)
	if err != nil {
		return models.AccountabilityShare{}, err
	}
	sh.ShareType = models.ShareType(shareType)
	return sh, nil
}

// ListShares returns shares the user sent or received, newest first.
func (s *Store) ListShares(userID, shareType string) ([]models.AccountabilityShare, error) {
	query := `SELECT ` + shareCols + ` FROM accountability_shares WHERE (from_user_id = $1 OR to_user_id = $1)`
	args := []any{userID}
	if shareType != "" {
		query += ` AND share_type = $2`
		args = append(args, shareType)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var shares []models.AccountabilityShare
	for rows.Next() {
		sh, err := scanShare(rows)
		if err != nil {
			return nil, err
		}
		shares = append(shares, sh)
	}
	return shares, rows.Err()
}

func (s *Store) GetShare(id string) (models.AccountabilityShare, error) {
	sh, err := scanShare(s.db.QueryRow(`SELECT `+shareCols+` FROM accountability_shares WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.AccountabilityShare{}, storage.NotFound("accountability share", id)
	}
	return sh, err
}

func (s *Store) AddShare(sh models.AccountabilityShare) error {
	_, err := s.db.Exec(`
INSERT INTO accountability_shares (`+shareCols+`)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		sh.ID, sh.FromUserID, sh.ToUserID, sh.ShareType, sh.ItemID, sh.Message,
		sh.Reaction, sh.CreatedAt, sh.UpdatedAt)
	return err
}

func (s *Store) UpdateShare(sh models.AccountabilityShare) error {
	res, err := s.db.Exec(`
UPDATE accountability_shares SET
message = $1, reaction = $2, updated_at = $3
WHERE id = $4`,
		sh.Message, sh.Reaction, sh.UpdatedAt, sh.ID)
	if err != nil {
		return err
	}
	return requireRow(res, "accountability share", sh.ID)
}

func (s *Store) DeleteShare(id string) error {
	res, err := s.db.Exec(`DELETE FROM accountability_shares WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRow(res, "accountability share", id)
}
