package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"suncrest-hotel-backend/internal/domain"
	"suncrest-hotel-backend/internal/security"
)

func TestLogin(t *testing.T) {
	ctx := context.Background()
	tokenManager := security.NewTokenManager("test-secret-at-least-32-characters!!", 60)

	hash, err := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.MinCost)
	require.NoError(t, err)
	admin := &domain.AdminUser{
		ID:           3,
		Name:         "Front Desk",
		Email:        "desk@suncrest.example.com",
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
	}

	t.Run("valid credentials issue an admin token", func(t *testing.T) {
		userRepo := new(mockAdminUserRepo)
		userRepo.On("GetByEmail", ctx, admin.Email).Return(admin, nil)
		svc := NewAuthService(userRepo, tokenManager)

		token, user, err := svc.Login(ctx, admin.Email, "correct horse")
		require.NoError(t, err)
		assert.Equal(t, admin.Email, user.Email)

		claims, err := tokenManager.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, int32(3), claims.UserID)
		assert.True(t, claims.HasRole(domain.RoleAdmin))
	})

	t.Run("wrong password", func(t *testing.T) {
		userRepo := new(mockAdminUserRepo)
		userRepo.On("GetByEmail", ctx, admin.Email).Return(admin, nil)
		svc := NewAuthService(userRepo, tokenManager)

		_, _, err := svc.Login(ctx, admin.Email, "wrong")
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	t.Run("unknown email reports the same error as wrong password", func(t *testing.T) {
		userRepo := new(mockAdminUserRepo)
		userRepo.On("GetByEmail", ctx, "nobody@example.com").Return(nil, domain.ErrUnauthorized)
		svc := NewAuthService(userRepo, tokenManager)

		_, _, err := svc.Login(ctx, "nobody@example.com", "correct horse")
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})
}
