package service_test

import (
	"fmt"
	"testing"

	"github.com/habbdfhfxxsjhk/Xmaxstro-telegram/internal/domain"
	"github.com/habbdfhfxxsjhk/Xmaxstro-telegram/internal/testutil"

	. "github.com/habbdfhfxxsjhk/Xmaxstro-telegram/internal/service"

	"github.com/stretchr/testify/assert"
)

func TestSettingsService_Welcome(t *testing.T) {
	t.Run("stored value wins", func(t *testing.T) {
		repo := new(testutil.MockSettingsRepository)
		repo.On("Get", domain.SettingWelcome).Return("Custom greeting", true, nil)

		svc := NewSettingsService(repo)

		welcome, err := svc.Welcome()
		assert.NoError(t, err)
		assert.Equal(t, "Custom greeting", welcome)
		repo.AssertNotCalled(t, "Put", domain.SettingWelcome, domain.DefaultWelcome)
	})

	t.Run("first read writes the default back", func(t *testing.T) {
		repo := new(testutil.MockSettingsRepository)
		repo.On("Get", domain.SettingWelcome).Return("", false, nil)
		repo.On("Put", domain.SettingWelcome, domain.DefaultWelcome).Return(nil)

		svc := NewSettingsService(repo)

		welcome, err := svc.Welcome()
		assert.NoError(t, err)
		assert.Equal(t, domain.DefaultWelcome, welcome)
		repo.AssertExpectations(t)
	})
}

func TestSettingsService_Currency(t *testing.T) {
	repo := new(testutil.MockSettingsRepository)
	repo.On("Get", domain.SettingCurrency).Return("", false, nil)
	repo.On("Put", domain.SettingCurrency, domain.DefaultCurrency).Return(nil)

	svc := NewSettingsService(repo)

	currency, err := svc.Currency()
	assert.NoError(t, err)
	assert.Equal(t, "SYP", currency)
}

func TestSettingsService_SetCurrency(t *testing.T) {
	repo := new(testutil.MockSettingsRepository)
	repo.On("Put", domain.SettingCurrency, "EUR").Return(nil)

	svc := NewSettingsService(repo)

	assert.NoError(t, svc.SetCurrency("eur"))
	repo.AssertExpectations(t)
}

func TestSettingsService_GetError(t *testing.T) {
	repo := new(testutil.MockSettingsRepository)
	repo.On("Get", domain.SettingWelcome).Return("", false, fmt.Errorf("db down"))

	svc := NewSettingsService(repo)

	_, err := svc.Welcome()
	assert.Error(t, err)
}
