package service

import (
	"github.com/habbdfhfxxsjhk/Xmaxstro-telegram/internal/domain"
	"github.com/habbdfhfxxsjhk/Xmaxstro-telegram/internal/repository"
)

// BalanceService is the ledger for prepaid user balances
type BalanceService struct {
	userRepo repository.UserRepository
}

// NewBalanceService creates a new balance service
func NewBalanceService(userRepo repository.UserRepository) *BalanceService {
	return &BalanceService{userRepo: userRepo}
}

// GetBalance returns the user's balance, zero for unknown users
func (s *BalanceService) GetBalance(userID int64) (int64, error) {
	user, err := s.userRepo.GetUser(userID)
	if err != nil {
		return 0, err
	}
	if user == nil {
		return 0, nil
	}
	return user.Balance, nil
}

// SetBalance overwrites the user's balance, creating the row if missing
func (s *BalanceService) SetBalance(userID int64, amount int64) error {
	return s.userRepo.SetBalance(userID, amount)
}

// AdjustBalance adds delta to the user's balance. Delta may be
// negative and the result may go below zero; the administrator is
// allowed to claw back credit.
func (s *BalanceService) AdjustBalance(userID int64, delta int64) error {
	return s.userRepo.AdjustBalance(userID, delta)
}

// Quote returns the price after the tier's discount:
// price - floor(price * rate).
func (s *BalanceService) Quote(price int64, tier domain.VIPTier) int64 {
	return price - tier.Discount(price)
}
