package service

import (
	"fmt"

	"github.com/habbdfhfxxsjhk/Xmaxstro-telegram/internal/action"
	"github.com/habbdfhfxxsjhk/Xmaxstro-telegram/internal/domain"
	"github.com/habbdfhfxxsjhk/Xmaxstro-telegram/internal/repository"

	"go.uber.org/zap"
)

// Outcome is the administrator's decision on a pending order
type Outcome string

const (
	OutcomeAccept Outcome = "accept"
	OutcomeReject Outcome = "reject"
)

// OrderService drives the pending → accepted/rejected order lifecycle
type OrderService struct {
	orderRepo   repository.OrderRepository
	userRepo    repository.UserRepository
	catalogRepo repository.CatalogRepository
	settings    *SettingsService
	notifier    Notifier
	adminID     int64
	logger      *zap.Logger
}

// NewOrderService creates a new order service
func NewOrderService(
	orderRepo repository.OrderRepository,
	userRepo repository.UserRepository,
	catalogRepo repository.CatalogRepository,
	settings *SettingsService,
	notifier Notifier,
	adminID int64,
	logger *zap.Logger,
) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		userRepo:    userRepo,
		catalogRepo: catalogRepo,
		settings:    settings,
		notifier:    notifier,
		adminID:     adminID,
		logger:      logger,
	}
}

// Place creates a pending order for the product with the purchaser's
// tier discount applied, then notifies the administrator best-effort.
func (s *OrderService) Place(userID int64, productID int64) (*domain.Order, error) {
	product, err := s.catalogRepo.GetProduct(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, fmt.Errorf("product %d: %w", productID, domain.ErrNotFound)
	}

	tier := domain.TierNone
	user, err := s.userRepo.GetUser(userID)
	if err != nil {
		return nil, err
	}
	if user != nil {
		tier = user.VIPTier
	}

	order := domain.Order{
		UserID:    userID,
		ProductID: productID,
		Qty:       1,
		Total:     product.Price - tier.Discount(product.Price),
		Status:    domain.OrderPending,
	}

	orderID, err := s.orderRepo.Create(order)
	if err != nil {
		return nil, err
	}
	order.ID = orderID

	s.notifyAdmin(order, product.Name)

	return &order, nil
}

// notifyAdmin sends the new-order notification with accept/reject
// buttons. Delivery failures are logged and discarded.
func (s *OrderService) notifyAdmin(order domain.Order, productName string) {
	currency, err := s.settings.Currency()
	if err != nil {
		s.logger.Warn("Failed to load currency for admin notification", zap.Error(err))
		currency = domain.DefaultCurrency
	}

	text := fmt.Sprintf("New order #%d\nProduct: %s\nPrice: %d %s\nUser: %d",
		order.ID, productName, order.Total, currency, order.UserID)

	err = s.notifier.Notify(s.adminID, text,
		Button{Label: "Accept", Data: action.Encode(action.VerbAdminOrderAccept, order.ID)},
		Button{Label: "Reject", Data: action.Encode(action.VerbAdminOrderReject, order.ID)},
	)
	if err != nil {
		s.logger.Warn("Failed to notify admin about new order",
			zap.Int64("order_id", order.ID),
			zap.Error(err),
		)
	}
}

// Decide moves a pending order to its terminal status. The transition
// happens at most once: deciding an already-decided order reports the
// existing status without mutating it or re-notifying the purchaser.
// Returns the order in its final state and whether this call changed it.
func (s *OrderService) Decide(orderID int64, outcome Outcome, actingAdmin int64) (*domain.Order, bool, error) {
	if actingAdmin != s.adminID {
		return nil, false, fmt.Errorf("user %d cannot decide orders: %w", actingAdmin, domain.ErrUnauthorized)
	}

	var target domain.OrderStatus
	switch outcome {
	case OutcomeAccept:
		target = domain.OrderAccepted
	case OutcomeReject:
		target = domain.OrderRejected
	default:
		return nil, false, fmt.Errorf("%w: unknown outcome %q", domain.ErrValidation, outcome)
	}

	order, err := s.orderRepo.Get(orderID)
	if err != nil {
		return nil, false, err
	}
	if order == nil {
		return nil, false, fmt.Errorf("order %d: %w", orderID, domain.ErrNotFound)
	}

	changed, err := s.orderRepo.SetStatus(orderID, domain.OrderPending, target)
	if err != nil {
		return nil, false, err
	}
	if !changed {
		// Already decided; keep the stored status and stay quiet.
		return order, false, nil
	}

	order.Status = target
	s.notifyPurchaser(order)

	return order, true, nil
}

// notifyPurchaser tells the buyer the outcome, best-effort
func (s *OrderService) notifyPurchaser(order *domain.Order) {
	var text string
	if order.Status == domain.OrderAccepted {
		text = fmt.Sprintf("✅ Your order #%d was accepted. Thank you.", order.ID)
	} else {
		text = fmt.Sprintf("❌ Your order #%d was rejected.", order.ID)
	}

	if err := s.notifier.Notify(order.UserID, text); err != nil {
		s.logger.Warn("Failed to notify purchaser about decision",
			zap.Int64("order_id", order.ID),
			zap.Int64("user_id", order.UserID),
			zap.Error(err),
		)
	}
}

// Orders returns the user's order history, newest first
func (s *OrderService) Orders(userID int64) ([]domain.Order, error) {
	return s.orderRepo.ListByUser(userID)
}

// ProductName resolves a product name for display, with a fallback for
// products deleted after the order was placed.
func (s *OrderService) ProductName(productID int64) string {
	product, err := s.catalogRepo.GetProduct(productID)
	if err != nil || product == nil {
		return "deleted product"
	}
	return product.Name
}
