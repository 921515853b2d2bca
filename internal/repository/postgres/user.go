package postgres

import (
	"database/sql"

	"github.com/habbdfhfxxsjhk/Xmaxstro-telegram/internal/domain"
)

// UserRepo implements repository.UserRepository
type UserRepo struct {
	db *sql.DB
}

// NewUserRepo creates a new user repository
func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{db: db}
}

// EnsureUser creates the user row if it does not exist yet
func (r *UserRepo) EnsureUser(userID int64, username string) error {
	query := `
		INSERT INTO users (id, username)
		VALUES ($1, $2)
		ON CONFLICT (id) DO NOTHING
	`
	_, err := r.db.Exec(query, userID, username)
	return err
}

// GetUser returns the user or nil if the row does not exist
func (r *UserRepo) GetUser(userID int64) (*domain.User, error) {
	var u domain.User
	query := `SELECT id, username, balance, vip_tier, created_at FROM users WHERE id = $1`
	err := r.db.QueryRow(query, userID).Scan(&u.ID, &u.Username, &u.Balance, &u.VIPTier, &u.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &u, nil
}

// ListUsers returns all users, newest first
func (r *UserRepo) ListUsers() ([]domain.User, error) {
	query := `SELECT id, username, balance, vip_tier, created_at FROM users ORDER BY created_at DESC`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Balance, &u.VIPTier, &u.CreatedAt); err != nil {
			return nil, err
		}
		users = append(users, u)
	}

	return users, rows.Err()
}

// ListUserIDs returns every known user id
func (r *UserRepo) ListUserIDs() ([]int64, error) {
	rows, err := r.db.Query(`SELECT id FROM users`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}

// SetBalance sets the balance, creating the user row if missing
func (r *UserRepo) SetBalance(userID int64, amount int64) error {
	query := `
		INSERT INTO users (id, balance)
		VALUES ($1, $2)
		ON CONFLICT (id)
		DO UPDATE SET balance = EXCLUDED.balance
	`
	_, err := r.db.Exec(query, userID, amount)
	return err
}

// AdjustBalance adds delta to the balance, creating the user row if
// missing. Negative results are allowed.
func (r *UserRepo) AdjustBalance(userID int64, delta int64) error {
	query := `
		INSERT INTO users (id, balance)
		VALUES ($1, $2)
		ON CONFLICT (id)
		DO UPDATE SET balance = users.balance + EXCLUDED.balance
	`
	_, err := r.db.Exec(query, userID, delta)
	return err
}
