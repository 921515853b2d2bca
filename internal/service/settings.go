package service

import (
	"strings"

	"github.com/habbdfhfxxsjhk/Xmaxstro-telegram/internal/domain"
	"github.com/habbdfhfxxsjhk/Xmaxstro-telegram/internal/repository"
)

// SettingsService reads and writes process-wide settings, applying
// defaults lazily on first read.
type SettingsService struct {
	repo repository.SettingsRepository
}

// NewSettingsService creates a new settings service
func NewSettingsService(repo repository.SettingsRepository) *SettingsService {
	return &SettingsService{repo: repo}
}

func (s *SettingsService) getOrDefault(key, def string) (string, error) {
	value, found, err := s.repo.Get(key)
	if err != nil {
		return "", err
	}
	if found {
		return value, nil
	}
	if err := s.repo.Put(key, def); err != nil {
		return "", err
	}
	return def, nil
}

// Welcome returns the welcome message shown on /start
func (s *SettingsService) Welcome() (string, error) {
	return s.getOrDefault(domain.SettingWelcome, domain.DefaultWelcome)
}

// Currency returns the display currency code
func (s *SettingsService) Currency() (string, error) {
	return s.getOrDefault(domain.SettingCurrency, domain.DefaultCurrency)
}

// SetWelcome replaces the welcome message verbatim
func (s *SettingsService) SetWelcome(text string) error {
	return s.repo.Put(domain.SettingWelcome, text)
}

// SetCurrency replaces the currency code, upper-cased
func (s *SettingsService) SetCurrency(code string) error {
	return s.repo.Put(domain.SettingCurrency, strings.ToUpper(code))
}
