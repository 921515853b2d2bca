package testutil

import (
	"time"

	"github.com/habbdfhfxxsjhk/Xmaxstro-telegram/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestUser creates a test user
func NewTestUser(userID int64, balance int64, tier domain.VIPTier) *domain.User {
	return &domain.User{
		ID:        userID,
		Username:  "tester",
		Balance:   balance,
		VIPTier:   tier,
		CreatedAt: time.Now(),
	}
}

// NewTestProduct creates a test product
func NewTestProduct(id, sectionID int64, name string, price int64) *domain.Product {
	return &domain.Product{
		ID:          id,
		SectionID:   sectionID,
		Name:        name,
		Price:       price,
		ButtonsJSON: "[]",
		Visible:     true,
	}
}

// NewTestOrder creates a test order
func NewTestOrder(id, userID, productID int64, total int64, status domain.OrderStatus) *domain.Order {
	return &domain.Order{
		ID:        id,
		UserID:    userID,
		ProductID: productID,
		Qty:       1,
		Total:     total,
		Status:    status,
		CreatedAt: time.Now(),
	}
}
