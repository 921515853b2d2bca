package postgres

import (
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestSettingsRepo_Get(t *testing.T) {
	tests := []struct {
		name          string
		key           string
		mockRows      *sqlmock.Rows
		mockError     error
		expectedValue string
		expectedFound bool
		expectError   bool
	}{
		{
			name:          "present key",
			key:           "currency",
			mockRows:      sqlmock.NewRows([]string{"value"}).AddRow("USD"),
			expectedValue: "USD",
			expectedFound: true,
		},
		{
			name:      "absent key",
			key:       "welcome_msg",
			mockError: sql.ErrNoRows,
		},
		{
			name:        "db failure",
			key:         "currency",
			mockError:   sql.ErrConnDone,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			assert.NoError(t, err)
			defer db.Close()

			repo := NewSettingsRepo(db)

			query := "SELECT value FROM settings WHERE key = \\$1"

			if tt.mockError != nil {
				mock.ExpectQuery(query).WithArgs(tt.key).WillReturnError(tt.mockError)
			} else {
				mock.ExpectQuery(query).WithArgs(tt.key).WillReturnRows(tt.mockRows)
			}

			value, found, err := repo.Get(tt.key)

			if tt.expectError {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.expectedFound, found)
			assert.Equal(t, tt.expectedValue, value)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSettingsRepo_Put(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewSettingsRepo(db)

	mock.ExpectExec("INSERT INTO settings").
		WithArgs("currency", "EUR").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.Put("currency", "EUR")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
