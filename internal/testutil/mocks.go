package testutil

import (
	"github.com/habbdfhfxxsjhk/Xmaxstro-telegram/internal/domain"
	"github.com/habbdfhfxxsjhk/Xmaxstro-telegram/internal/service"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock for UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) EnsureUser(userID int64, username string) error {
	args := m.Called(userID, username)
	return args.Error(0)
}

func (m *MockUserRepository) GetUser(userID int64) (*domain.User, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) ListUsers() ([]domain.User, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepository) ListUserIDs() ([]int64, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

func (m *MockUserRepository) SetBalance(userID int64, amount int64) error {
	args := m.Called(userID, amount)
	return args.Error(0)
}

func (m *MockUserRepository) AdjustBalance(userID int64, delta int64) error {
	args := m.Called(userID, delta)
	return args.Error(0)
}

// MockBanRepository is a mock for BanRepository
type MockBanRepository struct {
	mock.Mock
}

func (m *MockBanRepository) Ban(userID int64, reason string) error {
	args := m.Called(userID, reason)
	return args.Error(0)
}

func (m *MockBanRepository) Unban(userID int64) error {
	args := m.Called(userID)
	return args.Error(0)
}

func (m *MockBanRepository) IsBanned(userID int64) (bool, error) {
	args := m.Called(userID)
	return args.Bool(0), args.Error(1)
}

// MockCatalogRepository is a mock for CatalogRepository
type MockCatalogRepository struct {
	mock.Mock
}

func (m *MockCatalogRepository) CreateSection(name string) (int64, error) {
	args := m.Called(name)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCatalogRepository) ListSections(onlyVisible bool) ([]domain.Section, error) {
	args := m.Called(onlyVisible)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Section), args.Error(1)
}

func (m *MockCatalogRepository) GetSection(sectionID int64) (*domain.Section, error) {
	args := m.Called(sectionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Section), args.Error(1)
}

func (m *MockCatalogRepository) DeleteSection(sectionID int64) error {
	args := m.Called(sectionID)
	return args.Error(0)
}

func (m *MockCatalogRepository) CreateProduct(p domain.Product) (int64, error) {
	args := m.Called(p)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCatalogRepository) ListProducts(sectionID int64, onlyVisible bool) ([]domain.Product, error) {
	args := m.Called(sectionID, onlyVisible)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockCatalogRepository) GetProduct(productID int64) (*domain.Product, error) {
	args := m.Called(productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockCatalogRepository) DeleteProduct(productID int64) error {
	args := m.Called(productID)
	return args.Error(0)
}

func (m *MockCatalogRepository) UpdateProductName(productID int64, name string) error {
	args := m.Called(productID, name)
	return args.Error(0)
}

func (m *MockCatalogRepository) UpdateProductPrice(productID int64, price int64) error {
	args := m.Called(productID, price)
	return args.Error(0)
}

// MockOrderRepository is a mock for OrderRepository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Create(order domain.Order) (int64, error) {
	args := m.Called(order)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) Get(orderID int64) (*domain.Order, error) {
	args := m.Called(orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderRepository) SetStatus(orderID int64, from, to domain.OrderStatus) (bool, error) {
	args := m.Called(orderID, from, to)
	return args.Bool(0), args.Error(1)
}

func (m *MockOrderRepository) ListByUser(userID int64) ([]domain.Order, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Order), args.Error(1)
}

// MockSettingsRepository is a mock for SettingsRepository
type MockSettingsRepository struct {
	mock.Mock
}

func (m *MockSettingsRepository) Get(key string) (string, bool, error) {
	args := m.Called(key)
	return args.String(0), args.Bool(1), args.Error(2)
}

func (m *MockSettingsRepository) Put(key, value string) error {
	args := m.Called(key, value)
	return args.Error(0)
}

// FakeNotifier records notifications and can fail for chosen recipients
type FakeNotifier struct {
	Sent    []Notification
	FailFor map[int64]error
}

// Notification is one recorded delivery attempt
type Notification struct {
	RecipientID int64
	Text        string
	Buttons     []service.Button
}

// NewFakeNotifier creates an empty fake notifier
func NewFakeNotifier() *FakeNotifier {
	return &FakeNotifier{FailFor: make(map[int64]error)}
}

func (f *FakeNotifier) Notify(recipientID int64, text string, buttons ...service.Button) error {
	if err, ok := f.FailFor[recipientID]; ok {
		return err
	}
	f.Sent = append(f.Sent, Notification{RecipientID: recipientID, Text: text, Buttons: buttons})
	return nil
}

// SentTo returns the notifications delivered to one recipient
func (f *FakeNotifier) SentTo(recipientID int64) []Notification {
	var out []Notification
	for _, n := range f.Sent {
		if n.RecipientID == recipientID {
			out = append(out, n)
		}
	}
	return out
}
