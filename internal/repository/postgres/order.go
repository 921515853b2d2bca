package postgres

import (
	"database/sql"

	"github.com/habbdfhfxxsjhk/Xmaxstro-telegram/internal/domain"
)

// OrderRepo implements repository.OrderRepository
type OrderRepo struct {
	db *sql.DB
}

// NewOrderRepo creates a new order repository
func NewOrderRepo(db *sql.DB) *OrderRepo {
	return &OrderRepo{db: db}
}

// Create inserts a new order and returns its id
func (r *OrderRepo) Create(order domain.Order) (int64, error) {
	var id int64
	query := `
		INSERT INTO orders (user_id, product_id, qty, total, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err := r.db.QueryRow(query, order.UserID, order.ProductID, order.Qty, order.Total, order.Status).Scan(&id)
	return id, err
}

// Get returns the order or nil if the row does not exist
func (r *OrderRepo) Get(orderID int64) (*domain.Order, error) {
	var o domain.Order
	query := `SELECT id, user_id, product_id, qty, total, status, created_at FROM orders WHERE id = $1`
	err := r.db.QueryRow(query, orderID).Scan(&o.ID, &o.UserID, &o.ProductID, &o.Qty, &o.Total, &o.Status, &o.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &o, nil
}

// SetStatus updates the status only while it still equals from. The
// returned bool reports whether a row changed, which serializes
// concurrent decisions on the same order.
func (r *OrderRepo) SetStatus(orderID int64, from, to domain.OrderStatus) (bool, error) {
	query := `UPDATE orders SET status = $1 WHERE id = $2 AND status = $3`
	res, err := r.db.Exec(query, to, orderID, from)
	if err != nil {
		return false, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}

// ListByUser returns the user's orders, newest first
func (r *OrderRepo) ListByUser(userID int64) ([]domain.Order, error) {
	query := `
		SELECT id, user_id, product_id, qty, total, status, created_at
		FROM orders
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var o domain.Order
		if err := rows.Scan(&o.ID, &o.UserID, &o.ProductID, &o.Qty, &o.Total, &o.Status, &o.CreatedAt); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, rows.Err()
}
