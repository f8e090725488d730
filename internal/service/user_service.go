package service

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/big"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"contactbook/internal/cache"
	apperrors "contactbook/internal/errors"
	"contactbook/internal/mail"
	"contactbook/internal/media"
	"contactbook/internal/model"
	"contactbook/internal/repository"
)

const (
	bcryptCost   = 10
	userCacheTTL = 5 * time.Minute

	verificationCodeLength  = 6
	verificationCodeCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// UserService handles registration, verification and profile operations.
type UserService interface {
	Register(ctx context.Context, email, password string) (*model.User, error)
	GetUser(ctx context.Context, id uint) (*model.User, error)
	VerifyEmail(ctx context.Context, code string) (*model.User, error)
	UpdateAvatar(ctx context.Context, userID uint, file io.Reader) (*model.User, error)
}

type userService struct {
	repo     repository.UserRepository
	mailer   mail.Sender
	uploader media.Uploader
	cache    *cache.Client
}

// NewUserService builds a UserService with its collaborators.
func NewUserService(repo repository.UserRepository, mailer mail.Sender, uploader media.Uploader, cache *cache.Client) UserService {
	return &userService{
		repo:     repo,
		mailer:   mailer,
		uploader: uploader,
		cache:    cache,
	}
}

func (s *userService) cacheKey(id uint) string {
	return fmt.Sprintf("user:%d", id)
}

// Register creates an unverified user and mails the verification code. The
// email existence check is not atomic with the insert; the unique index backs
// it up and a racing duplicate also surfaces as ErrEmailRegistered.
func (s *userService) Register(ctx context.Context, email, password string) (*model.User, error) {
	existing, err := s.repo.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return nil, apperrors.ErrEmailRegistered
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check user existence: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	code, err := generateVerificationCode(verificationCodeLength)
	if err != nil {
		return nil, fmt.Errorf("generate verification code: %w", err)
	}

	user := &model.User{
		Email:            email,
		PasswordHash:     string(hashedPassword),
		IsActive:         true,
		IsVerified:       false,
		VerificationCode: &code,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	// The row is already committed; a mail failure fails the request without
	// removing the user.
	if err := s.mailer.SendVerificationEmail(email, code); err != nil {
		return nil, err
	}

	return user, nil
}

// GetUser retrieves a user by ID with caching.
func (s *userService) GetUser(ctx context.Context, id uint) (*model.User, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached model.User
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	if payload, err := json.Marshal(user); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, userCacheTTL)
	}
	return user, nil
}

// VerifyEmail marks the user owning the code as verified and clears the code,
// making it single-use.
func (s *userService) VerifyEmail(ctx context.Context, code string) (*model.User, error) {
	user, err := s.repo.FindByVerificationCode(ctx, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find by verification code: %w", err)
	}

	user.IsVerified = true
	user.VerificationCode = nil
	if err := s.repo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("verify email: %w", err)
	}

	_ = s.cache.Delete(ctx, s.cacheKey(user.ID))
	return user, nil
}

// UpdateAvatar uploads the image and stores the hosted URL on the user.
func (s *userService) UpdateAvatar(ctx context.Context, userID uint, file io.Reader) (*model.User, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	url, err := s.uploader.UploadImage(ctx, file)
	if err != nil {
		return nil, err
	}

	user.AvatarURL = url
	if err := s.repo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update avatar: %w", err)
	}

	_ = s.cache.Delete(ctx, s.cacheKey(user.ID))
	return user, nil
}

// generateVerificationCode returns a random uppercase alphanumeric code.
func generateVerificationCode(length int) (string, error) {
	code := make([]byte, length)
	for i := range code {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(verificationCodeCharset))))
		if err != nil {
			return "", err
		}
		code[i] = verificationCodeCharset[n.Int64()]
	}
	return string(code), nil
}
