package service

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"suncrest-hotel-backend/internal/domain"
	"suncrest-hotel-backend/internal/logger"
	"suncrest-hotel-backend/internal/repository"
	"suncrest-hotel-backend/internal/security"
)

type authService struct {
	userRepo     repository.AdminUserRepository
	tokenManager security.TokenManager
}

func NewAuthService(userRepo repository.AdminUserRepository, tokenManager security.TokenManager) AuthService {
	return &authService{
		userRepo:     userRepo,
		tokenManager: tokenManager,
	}
}

// Login checks back-office credentials and issues an access token carrying the
// account's role. Wrong email and wrong password are indistinguishable to the
// caller.
func (s *authService) Login(ctx context.Context, email, password string) (string, *domain.AdminUser, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return "", nil, domain.ErrUnauthorized
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Warn("failed admin login attempt", "email", email)
		return "", nil, domain.ErrUnauthorized
	}

	token, err := s.tokenManager.GenerateAccessToken(user.ID, user.Email, []string{user.Role})
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}
