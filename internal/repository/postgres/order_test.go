package postgres

import (
	"database/sql"
	"testing"
	"time"

	"github.com/habbdfhfxxsjhk/Xmaxstro-telegram/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestOrderRepo_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewOrderRepo(db)

	mock.ExpectQuery("INSERT INTO orders").
		WithArgs(int64(123), int64(9), 1, int64(490), domain.OrderPending).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))

	id, err := repo.Create(domain.Order{
		UserID:    123,
		ProductID: 9,
		Qty:       1,
		Total:     490,
		Status:    domain.OrderPending,
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(7), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepo_Get(t *testing.T) {
	t.Run("existing order", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		repo := NewOrderRepo(db)

		rows := sqlmock.NewRows([]string{"id", "user_id", "product_id", "qty", "total", "status", "created_at"}).
			AddRow(int64(7), int64(123), int64(9), 1, int64(490), "pending", time.Now())
		mock.ExpectQuery("SELECT id, user_id, product_id, qty, total, status, created_at FROM orders WHERE id = \\$1").
			WithArgs(int64(7)).
			WillReturnRows(rows)

		order, err := repo.Get(7)

		assert.NoError(t, err)
		assert.Equal(t, domain.OrderPending, order.Status)
		assert.Equal(t, int64(490), order.Total)
	})

	t.Run("missing order is nil, not an error", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		repo := NewOrderRepo(db)

		mock.ExpectQuery("SELECT id, user_id, product_id, qty, total, status, created_at FROM orders WHERE id = \\$1").
			WithArgs(int64(404)).
			WillReturnError(sql.ErrNoRows)

		order, err := repo.Get(404)

		assert.NoError(t, err)
		assert.Nil(t, order)
	})
}

func TestOrderRepo_SetStatus(t *testing.T) {
	tests := []struct {
		name          string
		rowsAffected  int64
		expectChanged bool
	}{
		{
			name:          "pending order transitions",
			rowsAffected:  1,
			expectChanged: true,
		},
		{
			name:          "already decided order does not",
			rowsAffected:  0,
			expectChanged: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			assert.NoError(t, err)
			defer db.Close()

			repo := NewOrderRepo(db)

			mock.ExpectExec("UPDATE orders SET status = \\$1 WHERE id = \\$2 AND status = \\$3").
				WithArgs(domain.OrderAccepted, int64(7), domain.OrderPending).
				WillReturnResult(sqlmock.NewResult(0, tt.rowsAffected))

			changed, err := repo.SetStatus(7, domain.OrderPending, domain.OrderAccepted)

			assert.NoError(t, err)
			assert.Equal(t, tt.expectChanged, changed)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestOrderRepo_ListByUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewOrderRepo(db)

	rows := sqlmock.NewRows([]string{"id", "user_id", "product_id", "qty", "total", "status", "created_at"}).
		AddRow(int64(8), int64(123), int64(9), 1, int64(490), "accepted", time.Now()).
		AddRow(int64(7), int64(123), int64(9), 1, int64(490), "rejected", time.Now())
	mock.ExpectQuery("SELECT id, user_id, product_id, qty, total, status, created_at").
		WithArgs(int64(123)).
		WillReturnRows(rows)

	orders, err := repo.ListByUser(123)

	assert.NoError(t, err)
	assert.Len(t, orders, 2)
	assert.Equal(t, domain.OrderAccepted, orders[0].Status)
	assert.Equal(t, domain.OrderRejected, orders[1].Status)
}
