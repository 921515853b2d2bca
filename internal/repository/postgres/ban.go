package postgres

import (
	"database/sql"
)

// BanRepo implements repository.BanRepository
type BanRepo struct {
	db *sql.DB
}

// NewBanRepo creates a new ban repository
func NewBanRepo(db *sql.DB) *BanRepo {
	return &BanRepo{db: db}
}

// Ban records a ban for the user, replacing any earlier one
func (r *BanRepo) Ban(userID int64, reason string) error {
	query := `
		INSERT INTO bans (user_id, reason)
		VALUES ($1, $2)
		ON CONFLICT (user_id)
		DO UPDATE SET reason = EXCLUDED.reason, banned_at = NOW()
	`
	_, err := r.db.Exec(query, userID, reason)
	return err
}

// Unban removes the user's ban if present
func (r *BanRepo) Unban(userID int64) error {
	_, err := r.db.Exec(`DELETE FROM bans WHERE user_id = $1`, userID)
	return err
}

// IsBanned reports whether a ban row exists for the user
func (r *BanRepo) IsBanned(userID int64) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM bans WHERE user_id = $1)`
	err := r.db.QueryRow(query, userID).Scan(&exists)
	return exists, err
}
