package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	apperrors "contactbook/internal/errors"
	"contactbook/internal/model"
	"contactbook/internal/repository"
)

// DefaultBirthdayWindowDays is the lookahead used by the upcoming-birthdays query.
const DefaultBirthdayWindowDays = 7

// ContactPatch carries a partial update. Only non-nil fields overwrite the
// stored record.
type ContactPatch struct {
	FirstName      *string
	LastName       *string
	Email          *string
	PhoneNumber    *string
	Birthday       *model.Date
	AdditionalInfo *string
}

// ContactService exposes owner-scoped contact operations.
type ContactService interface {
	List(ctx context.Context, ownerID uint, offset, limit int) ([]model.Contact, error)
	Get(ctx context.Context, ownerID, contactID uint) (*model.Contact, error)
	Create(ctx context.Context, ownerID uint, contact *model.Contact) (*model.Contact, error)
	Update(ctx context.Context, ownerID, contactID uint, patch ContactPatch) (*model.Contact, error)
	Delete(ctx context.Context, ownerID, contactID uint) (*model.Contact, error)
	UpcomingBirthdays(ctx context.Context, ownerID uint, windowDays int) ([]model.Contact, error)
}

type contactService struct {
	repo repository.ContactRepository
}

// NewContactService creates a new contact service.
func NewContactService(repo repository.ContactRepository) ContactService {
	return &contactService{repo: repo}
}

func (s *contactService) List(ctx context.Context, ownerID uint, offset, limit int) ([]model.Contact, error) {
	contacts, err := s.repo.ListByOwner(ctx, ownerID, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	return contacts, nil
}

func (s *contactService) Get(ctx context.Context, ownerID, contactID uint) (*model.Contact, error) {
	contact, err := s.repo.FindByID(ctx, ownerID, contactID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrContactNotFound
		}
		return nil, fmt.Errorf("get contact: %w", err)
	}
	return contact, nil
}

func (s *contactService) Create(ctx context.Context, ownerID uint, contact *model.Contact) (*model.Contact, error) {
	contact.OwnerID = ownerID
	if err := s.repo.Create(ctx, contact); err != nil {
		return nil, fmt.Errorf("create contact: %w", err)
	}
	return contact, nil
}

func (s *contactService) Update(ctx context.Context, ownerID, contactID uint, patch ContactPatch) (*model.Contact, error) {
	contact, err := s.Get(ctx, ownerID, contactID)
	if err != nil {
		return nil, err
	}

	if patch.FirstName != nil {
		contact.FirstName = *patch.FirstName
	}
	if patch.LastName != nil {
		contact.LastName = *patch.LastName
	}
	if patch.Email != nil {
		contact.Email = *patch.Email
	}
	if patch.PhoneNumber != nil {
		contact.PhoneNumber = *patch.PhoneNumber
	}
	if patch.Birthday != nil {
		contact.Birthday = *patch.Birthday
	}
	if patch.AdditionalInfo != nil {
		contact.AdditionalInfo = *patch.AdditionalInfo
	}

	if err := s.repo.Update(ctx, contact); err != nil {
		return nil, fmt.Errorf("update contact: %w", err)
	}
	return contact, nil
}

func (s *contactService) Delete(ctx context.Context, ownerID, contactID uint) (*model.Contact, error) {
	contact, err := s.Get(ctx, ownerID, contactID)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Delete(ctx, contact); err != nil {
		return nil, fmt.Errorf("delete contact: %w", err)
	}
	// Pre-deletion snapshot.
	return contact, nil
}

func (s *contactService) UpcomingBirthdays(ctx context.Context, ownerID uint, windowDays int) ([]model.Contact, error) {
	if windowDays <= 0 {
		windowDays = DefaultBirthdayWindowDays
	}
	today := model.Today()
	contacts, err := s.repo.FindWithBirthdayBetween(ctx, ownerID, today, today.AddDays(windowDays))
	if err != nil {
		return nil, fmt.Errorf("upcoming birthdays: %w", err)
	}
	return contacts, nil
}
