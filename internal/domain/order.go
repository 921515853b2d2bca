package domain

import "time"

// OrderStatus is the lifecycle state of an order
type OrderStatus string

const (
	OrderPending  OrderStatus = "pending"
	OrderAccepted OrderStatus = "accepted"
	OrderRejected OrderStatus = "rejected"
)

// Terminal reports whether no further transition is permitted
func (s OrderStatus) Terminal() bool {
	return s == OrderAccepted || s == OrderRejected
}

// Order is a purchase awaiting or past the administrator's decision
type Order struct {
	ID        int64
	UserID    int64
	ProductID int64
	Qty       int
	Total     int64
	Status    OrderStatus
	CreatedAt time.Time
}
