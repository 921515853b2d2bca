package postgres

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestBanRepo_Ban(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewBanRepo(db)

	// Re-banning replaces the earlier row via ON CONFLICT
	mock.ExpectExec("INSERT INTO bans").
		WithArgs(int64(123), "banned by admin").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.Ban(123, "banned by admin")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBanRepo_Unban(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewBanRepo(db)

	// Unbanning an unbanned user is a no-op, not an error
	mock.ExpectExec("DELETE FROM bans WHERE user_id = \\$1").
		WithArgs(int64(123)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = repo.Unban(123)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBanRepo_IsBanned(t *testing.T) {
	tests := []struct {
		name     string
		exists   bool
		expected bool
	}{
		{name: "banned user", exists: true, expected: true},
		{name: "clean user", exists: false, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			assert.NoError(t, err)
			defer db.Close()

			repo := NewBanRepo(db)

			mock.ExpectQuery("SELECT EXISTS").
				WithArgs(int64(123)).
				WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(tt.exists))

			banned, err := repo.IsBanned(123)

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, banned)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
