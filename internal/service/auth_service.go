package service

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"contactbook/internal/auth"
	apperrors "contactbook/internal/errors"
	"contactbook/internal/repository"
)

// AuthService handles credential verification and token issuance.
type AuthService interface {
	Login(ctx context.Context, email, password string) (accessToken string, err error)
}

type authService struct {
	userRepo   repository.UserRepository
	jwtService *auth.JWTService
}

// NewAuthService creates a new authentication service.
func NewAuthService(userRepo repository.UserRepository, jwtService *auth.JWTService) AuthService {
	return &authService{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// Login authenticates a user and returns a signed access token. Unknown email
// and wrong password are indistinguishable to the caller.
func (s *authService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return "", apperrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", apperrors.ErrInvalidCredentials
	}

	accessToken, err := s.jwtService.GenerateAccessToken(user.ID, user.Email)
	if err != nil {
		return "", fmt.Errorf("generate access token: %w", err)
	}

	return accessToken, nil
}
