package repository

import (
	"github.com/habbdfhfxxsjhk/Xmaxstro-telegram/internal/domain"
)

// UserRepository defines user data operations. Balance writes are
// upserts: the user row is created on the fly if missing, so callers
// never need a separate existence check.
type UserRepository interface {
	EnsureUser(userID int64, username string) error
	GetUser(userID int64) (*domain.User, error)
	ListUsers() ([]domain.User, error)
	ListUserIDs() ([]int64, error)
	SetBalance(userID int64, amount int64) error
	AdjustBalance(userID int64, delta int64) error
}

// BanRepository defines ban data operations; a present row means banned
type BanRepository interface {
	Ban(userID int64, reason string) error
	Unban(userID int64) error
	IsBanned(userID int64) (bool, error)
}

// CatalogRepository defines section and product data operations.
// DeleteSection cascades to the section's products.
type CatalogRepository interface {
	CreateSection(name string) (int64, error)
	ListSections(onlyVisible bool) ([]domain.Section, error)
	GetSection(sectionID int64) (*domain.Section, error)
	DeleteSection(sectionID int64) error
	CreateProduct(p domain.Product) (int64, error)
	ListProducts(sectionID int64, onlyVisible bool) ([]domain.Product, error)
	GetProduct(productID int64) (*domain.Product, error)
	DeleteProduct(productID int64) error
	UpdateProductName(productID int64, name string) error
	UpdateProductPrice(productID int64, price int64) error
}

// OrderRepository defines order data operations. SetStatus is a
// compare-and-set: the status only changes while it still equals from,
// and the bool reports whether a row was updated.
type OrderRepository interface {
	Create(order domain.Order) (int64, error)
	Get(orderID int64) (*domain.Order, error)
	SetStatus(orderID int64, from, to domain.OrderStatus) (bool, error)
	ListByUser(userID int64) ([]domain.Order, error)
}

// SettingsRepository defines key/value settings access
type SettingsRepository interface {
	Get(key string) (string, bool, error)
	Put(key, value string) error
}
