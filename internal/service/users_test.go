package service_test

import (
	"testing"

	"github.com/habbdfhfxxsjhk/Xmaxstro-telegram/internal/domain"
	"github.com/habbdfhfxxsjhk/Xmaxstro-telegram/internal/testutil"

	. "github.com/habbdfhfxxsjhk/Xmaxstro-telegram/internal/service"

	"github.com/stretchr/testify/assert"
)

func TestUserService_User(t *testing.T) {
	userRepo := new(testutil.MockUserRepository)
	banRepo := new(testutil.MockBanRepository)
	userRepo.On("GetUser", int64(123)).Return(testutil.NewTestUser(123, 0, domain.TierNone), nil)
	userRepo.On("GetUser", int64(404)).Return(nil, nil)

	svc := NewUserService(userRepo, banRepo)

	user, err := svc.User(123)
	assert.NoError(t, err)
	assert.Equal(t, int64(123), user.ID)

	_, err = svc.User(404)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUserService_BanLifecycle(t *testing.T) {
	userRepo := new(testutil.MockUserRepository)
	banRepo := new(testutil.MockBanRepository)
	banRepo.On("Ban", int64(123), "banned by admin").Return(nil)
	banRepo.On("IsBanned", int64(123)).Return(true, nil)
	banRepo.On("Unban", int64(123)).Return(nil)

	svc := NewUserService(userRepo, banRepo)

	assert.NoError(t, svc.Ban(123, "banned by admin"))

	banned, err := svc.IsBanned(123)
	assert.NoError(t, err)
	assert.True(t, banned)

	assert.NoError(t, svc.Unban(123))
	banRepo.AssertExpectations(t)
}
