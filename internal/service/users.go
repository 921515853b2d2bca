package service

import (
	"fmt"

	"github.com/habbdfhfxxsjhk/Xmaxstro-telegram/internal/domain"
	"github.com/habbdfhfxxsjhk/Xmaxstro-telegram/internal/repository"
)

// UserService handles user registration and ban management
type UserService struct {
	userRepo repository.UserRepository
	banRepo  repository.BanRepository
}

// NewUserService creates a new user service
func NewUserService(userRepo repository.UserRepository, banRepo repository.BanRepository) *UserService {
	return &UserService{userRepo: userRepo, banRepo: banRepo}
}

// EnsureUser registers the user on first interaction; repeat calls are no-ops
func (s *UserService) EnsureUser(userID int64, username string) error {
	return s.userRepo.EnsureUser(userID, username)
}

// User returns a user or ErrNotFound
func (s *UserService) User(userID int64) (*domain.User, error) {
	user, err := s.userRepo.GetUser(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("user %d: %w", userID, domain.ErrNotFound)
	}
	return user, nil
}

// Users returns all known users, newest first
func (s *UserService) Users() ([]domain.User, error) {
	return s.userRepo.ListUsers()
}

// Ban blocks the user from the storefront
func (s *UserService) Ban(userID int64, reason string) error {
	return s.banRepo.Ban(userID, reason)
}

// Unban lifts the user's ban
func (s *UserService) Unban(userID int64) error {
	return s.banRepo.Unban(userID)
}

// IsBanned reports whether the user is currently banned
func (s *UserService) IsBanned(userID int64) (bool, error) {
	return s.banRepo.IsBanned(userID)
}
