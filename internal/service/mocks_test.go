package service

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"contactbook/internal/model"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByVerificationCode(ctx context.Context, code string) (*model.User, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

// MockContactRepository is a mock implementation of ContactRepository.
type MockContactRepository struct {
	mock.Mock
}

func (m *MockContactRepository) Create(ctx context.Context, contact *model.Contact) error {
	args := m.Called(ctx, contact)
	return args.Error(0)
}

func (m *MockContactRepository) Update(ctx context.Context, contact *model.Contact) error {
	args := m.Called(ctx, contact)
	return args.Error(0)
}

func (m *MockContactRepository) Delete(ctx context.Context, contact *model.Contact) error {
	args := m.Called(ctx, contact)
	return args.Error(0)
}

func (m *MockContactRepository) FindByID(ctx context.Context, ownerID, id uint) (*model.Contact, error) {
	args := m.Called(ctx, ownerID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Contact), args.Error(1)
}

func (m *MockContactRepository) ListByOwner(ctx context.Context, ownerID uint, offset, limit int) ([]model.Contact, error) {
	args := m.Called(ctx, ownerID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Contact), args.Error(1)
}

func (m *MockContactRepository) FindWithBirthdayBetween(ctx context.Context, ownerID uint, from, to model.Date) ([]model.Contact, error) {
	args := m.Called(ctx, ownerID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Contact), args.Error(1)
}

// MockMailSender is a mock implementation of mail.Sender.
type MockMailSender struct {
	mock.Mock
}

func (m *MockMailSender) SendVerificationEmail(to, code string) error {
	args := m.Called(to, code)
	return args.Error(0)
}

// MockUploader is a mock implementation of media.Uploader.
type MockUploader struct {
	mock.Mock
}

func (m *MockUploader) UploadImage(ctx context.Context, file io.Reader) (string, error) {
	args := m.Called(ctx, file)
	return args.String(0), args.Error(1)
}
