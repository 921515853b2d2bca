package postgres

import (
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestUserRepo_EnsureUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewUserRepo(db)

	// Repeat registration hits ON CONFLICT DO NOTHING, zero rows affected
	mock.ExpectExec("INSERT INTO users").
		WithArgs(int64(123), "alice").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = repo.EnsureUser(123, "alice")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_GetUser(t *testing.T) {
	tests := []struct {
		name        string
		userID      int64
		mockRows    *sqlmock.Rows
		mockError   error
		expectUser  bool
		expectError bool
	}{
		{
			name:   "existing user",
			userID: 123,
			mockRows: sqlmock.NewRows([]string{"id", "username", "balance", "vip_tier", "created_at"}).
				AddRow(int64(123), "alice", int64(500), "Silver", time.Now()),
			expectUser: true,
		},
		{
			name:      "missing user is nil, not an error",
			userID:    404,
			mockError: sql.ErrNoRows,
		},
		{
			name:        "db failure",
			userID:      123,
			mockError:   sql.ErrConnDone,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			assert.NoError(t, err)
			defer db.Close()

			repo := NewUserRepo(db)

			query := "SELECT id, username, balance, vip_tier, created_at FROM users WHERE id = \\$1"

			if tt.mockError != nil {
				mock.ExpectQuery(query).WithArgs(tt.userID).WillReturnError(tt.mockError)
			} else {
				mock.ExpectQuery(query).WithArgs(tt.userID).WillReturnRows(tt.mockRows)
			}

			user, err := repo.GetUser(tt.userID)

			if tt.expectError {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			if tt.expectUser {
				assert.Equal(t, "alice", user.Username)
				assert.Equal(t, int64(500), user.Balance)
			} else {
				assert.Nil(t, user)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserRepo_ListUserIDs(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewUserRepo(db)

	rows := sqlmock.NewRows([]string{"id"}).
		AddRow(int64(1)).
		AddRow(int64(2)).
		AddRow(int64(3))
	mock.ExpectQuery("SELECT id FROM users").WillReturnRows(rows)

	ids, err := repo.ListUserIDs()

	assert.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3}, ids)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_SetBalance(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewUserRepo(db)

	mock.ExpectExec("INSERT INTO users").
		WithArgs(int64(123), int64(0)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.SetBalance(123, 0)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_AdjustBalance(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewUserRepo(db)

	// Negative deltas are passed through unchanged
	mock.ExpectExec("INSERT INTO users").
		WithArgs(int64(123), int64(-250)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.AdjustBalance(123, -250)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
