package postgres

import (
	"database/sql"
)

// SettingsRepo implements repository.SettingsRepository
type SettingsRepo struct {
	db *sql.DB
}

// NewSettingsRepo creates a new settings repository
func NewSettingsRepo(db *sql.DB) *SettingsRepo {
	return &SettingsRepo{db: db}
}

// Get returns the value for a key and whether it was present
func (r *SettingsRepo) Get(key string) (string, bool, error) {
	var value string
	err := r.db.QueryRow(`SELECT value FROM settings WHERE key = $1`, key).Scan(&value)

	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}

	return value, true, nil
}

// Put stores the value for a key, replacing any previous one
func (r *SettingsRepo) Put(key, value string) error {
	query := `
		INSERT INTO settings (key, value)
		VALUES ($1, $2)
		ON CONFLICT (key)
		DO UPDATE SET value = EXCLUDED.value
	`
	_, err := r.db.Exec(query, key, value)
	return err
}
