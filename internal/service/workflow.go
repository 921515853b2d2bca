package service

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/habbdfhfxxsjhk/Xmaxstro-telegram/internal/domain"
	"github.com/habbdfhfxxsjhk/Xmaxstro-telegram/internal/repository"

	"go.uber.org/zap"
)

// WorkflowStore keeps the pending-input conversation state per
// administrator identity. State depth is one: a new Begin overwrites
// whatever was pending before.
type WorkflowStore struct {
	mu      sync.RWMutex
	pending map[int64]domain.PendingInput
}

// NewWorkflowStore creates an empty in-memory store
func NewWorkflowStore() *WorkflowStore {
	return &WorkflowStore{pending: make(map[int64]domain.PendingInput)}
}

// Get returns the pending input for an identity, zero value when idle
func (s *WorkflowStore) Get(adminID int64) domain.PendingInput {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pending[adminID]
}

// Set replaces the pending input for an identity
func (s *WorkflowStore) Set(adminID int64, input domain.PendingInput) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending[adminID] = input
}

// Clear resets the identity back to idle
func (s *WorkflowStore) Clear(adminID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.pending, adminID)
}

// WorkflowService is the administrator's conversational state machine.
// A menu selection arms exactly one pending action; the next text
// message is interpreted against it and the state is cleared whatever
// the outcome.
type WorkflowService struct {
	store    *WorkflowStore
	catalog  *CatalogService
	balance  *BalanceService
	settings *SettingsService
	userRepo repository.UserRepository
	notifier Notifier
	adminID  int64
	logger   *zap.Logger
}

// NewWorkflowService creates a new workflow service
func NewWorkflowService(
	store *WorkflowStore,
	catalog *CatalogService,
	balance *BalanceService,
	settings *SettingsService,
	userRepo repository.UserRepository,
	notifier Notifier,
	adminID int64,
	logger *zap.Logger,
) *WorkflowService {
	return &WorkflowService{
		store:    store,
		catalog:  catalog,
		balance:  balance,
		settings: settings,
		userRepo: userRepo,
		notifier: notifier,
		adminID:  adminID,
		logger:   logger,
	}
}

// Pending reports whether the identity has an armed action
func (s *WorkflowService) Pending(adminID int64) bool {
	return s.store.Get(adminID).Pending()
}

// Begin arms a pending action and returns the prompt describing the
// expected input.
func (s *WorkflowService) Begin(adminID int64, input domain.PendingInput) string {
	s.store.Set(adminID, input)

	switch input.Action {
	case domain.ActionAddSection:
		return "Send the new section name now."
	case domain.ActionAddProduct:
		return "Send the product details as:\nname | price | description (optional)."
	case domain.ActionEditWelcome:
		return "Send the new welcome message now."
	case domain.ActionSetCurrency:
		return "Send the new currency code (e.g. SYP)."
	case domain.ActionBroadcast:
		return "Send the broadcast message now. It will go to every registered user."
	case domain.ActionUserAddBalance:
		return fmt.Sprintf("Enter the amount to add to user %d:", input.TargetUserID)
	case domain.ActionUserSubBalance:
		return fmt.Sprintf("Enter the amount to subtract from user %d:", input.TargetUserID)
	case domain.ActionSendMsgToUser:
		return fmt.Sprintf("Write the message to send to user %d:", input.TargetUserID)
	case domain.ActionEditProductName:
		return fmt.Sprintf("Send the new name for product %d:", input.ProductID)
	case domain.ActionEditProductPrice:
		return fmt.Sprintf("Send the new price for product %d:", input.ProductID)
	default:
		return "Unknown action."
	}
}

// HandleText consumes one text message against the pending action and
// returns the reply for the administrator. The pending state is
// cleared unconditionally, success or failure; retrying means
// re-invoking the menu action. Text from any other identity is
// rejected without touching state.
func (s *WorkflowService) HandleText(senderID int64, text string) (string, error) {
	if senderID != s.adminID {
		return "", fmt.Errorf("sender %d is not the administrator: %w", senderID, domain.ErrUnauthorized)
	}

	input := s.store.Get(senderID)
	if !input.Pending() {
		return "Use the admin panel to pick an action first.", nil
	}
	defer s.store.Clear(senderID)

	text = strings.TrimSpace(text)

	switch input.Action {
	case domain.ActionAddSection:
		return s.handleAddSection(text)
	case domain.ActionAddProduct:
		return s.handleAddProduct(input.SectionID, text)
	case domain.ActionEditWelcome:
		if err := s.settings.SetWelcome(text); err != nil {
			return "", err
		}
		return "✅ Welcome message updated.", nil
	case domain.ActionSetCurrency:
		if err := s.settings.SetCurrency(text); err != nil {
			return "", err
		}
		return fmt.Sprintf("✅ Currency set to %s.", strings.ToUpper(text)), nil
	case domain.ActionBroadcast:
		return s.handleBroadcast(text)
	case domain.ActionUserAddBalance:
		return s.handleBalanceChange(input.TargetUserID, text, +1)
	case domain.ActionUserSubBalance:
		return s.handleBalanceChange(input.TargetUserID, text, -1)
	case domain.ActionSendMsgToUser:
		if err := s.notifier.Notify(input.TargetUserID, text); err != nil {
			s.logger.Warn("Failed to relay message to user",
				zap.Int64("target_id", input.TargetUserID),
				zap.Error(err),
			)
			return "Failed to deliver the message to the user.", nil
		}
		return "✅ Message sent.", nil
	case domain.ActionEditProductName:
		if err := s.catalog.RenameProduct(input.ProductID, text); err != nil {
			if errors.Is(err, domain.ErrValidation) {
				return "The name cannot be empty. Re-open the product menu to retry.", nil
			}
			return "", err
		}
		return fmt.Sprintf("✅ Product %d renamed to '%s'.", input.ProductID, text), nil
	case domain.ActionEditProductPrice:
		price, err := strconv.ParseInt(text, 10, 64)
		if err != nil || price < 0 {
			return "The price must be a whole number. Re-open the product menu to retry.", nil
		}
		if err := s.catalog.RepriceProduct(input.ProductID, price); err != nil {
			return "", err
		}
		return fmt.Sprintf("✅ Product %d price set to %d.", input.ProductID, price), nil
	default:
		return "Unknown action.", nil
	}
}

func (s *WorkflowService) handleAddSection(text string) (string, error) {
	sectionID, err := s.catalog.CreateSection(text)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return "The section name cannot be empty. Re-open the store menu to retry.", nil
		}
		return "", err
	}
	return fmt.Sprintf("✅ Section '%s' created with ID %d.", strings.TrimSpace(text), sectionID), nil
}

func (s *WorkflowService) handleAddProduct(sectionID int64, text string) (string, error) {
	parts := strings.Split(text, "|")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	if len(parts) < 2 {
		return "Error. Send: name | price | description (optional).", nil
	}

	name := parts[0]
	price, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return "The price must be a whole number.", nil
	}

	description := ""
	if len(parts) >= 3 {
		description = parts[2]
	}

	productID, err := s.catalog.AddProduct(sectionID, name, price, description)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return "Error. Send: name | price | description (optional).", nil
		}
		return "", err
	}

	return fmt.Sprintf("✅ Product '%s' added (ID: %d).", name, productID), nil
}

// handleBroadcast sends the text to every known user. One failed
// recipient never stops the rest; only the success count is reported.
func (s *WorkflowService) handleBroadcast(text string) (string, error) {
	ids, err := s.userRepo.ListUserIDs()
	if err != nil {
		return "", err
	}

	count := 0
	for _, id := range ids {
		if err := s.notifier.Notify(id, text); err != nil {
			s.logger.Warn("Broadcast delivery failed",
				zap.Int64("user_id", id),
				zap.Error(err),
			)
			continue
		}
		count++
	}

	return fmt.Sprintf("Broadcast delivered to %d user(s).", count), nil
}

func (s *WorkflowService) handleBalanceChange(targetID int64, text string, sign int64) (string, error) {
	amount, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return "Error: send a whole number.", nil
	}

	if err := s.balance.AdjustBalance(targetID, sign*amount); err != nil {
		return "", err
	}

	if sign < 0 {
		return fmt.Sprintf("✅ Subtracted %d from user %d.", amount, targetID), nil
	}
	return fmt.Sprintf("✅ Added %d to user %d.", amount, targetID), nil
}
