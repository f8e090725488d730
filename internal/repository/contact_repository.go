package repository

import (
	"context"

	"gorm.io/gorm"

	"contactbook/internal/model"
)

// ContactRepository defines contact persistence operations. Every query is
// scoped to the owning user; a contact belonging to someone else behaves
// exactly like a missing record.
type ContactRepository interface {
	Create(ctx context.Context, contact *model.Contact) error
	Update(ctx context.Context, contact *model.Contact) error
	Delete(ctx context.Context, contact *model.Contact) error
	FindByID(ctx context.Context, ownerID, id uint) (*model.Contact, error)
	ListByOwner(ctx context.Context, ownerID uint, offset, limit int) ([]model.Contact, error)
	FindWithBirthdayBetween(ctx context.Context, ownerID uint, from, to model.Date) ([]model.Contact, error)
}

type contactRepository struct {
	db *gorm.DB
}

// NewContactRepository builds a GORM-backed repository.
func NewContactRepository(db *gorm.DB) ContactRepository {
	return &contactRepository{db: db}
}

func (r *contactRepository) Create(ctx context.Context, contact *model.Contact) error {
	return r.db.WithContext(ctx).Create(contact).Error
}

func (r *contactRepository) Update(ctx context.Context, contact *model.Contact) error {
	return r.db.WithContext(ctx).Save(contact).Error
}

func (r *contactRepository) Delete(ctx context.Context, contact *model.Contact) error {
	return r.db.WithContext(ctx).Delete(contact).Error
}

func (r *contactRepository) FindByID(ctx context.Context, ownerID, id uint) (*model.Contact, error) {
	var contact model.Contact
	if err := r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		First(&contact).Error; err != nil {
		return nil, err
	}
	return &contact, nil
}

func (r *contactRepository) ListByOwner(ctx context.Context, ownerID uint, offset, limit int) ([]model.Contact, error) {
	var contacts []model.Contact
	if err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Offset(offset).Limit(limit).
		Find(&contacts).Error; err != nil {
		return nil, err
	}
	return contacts, nil
}

// FindWithBirthdayBetween returns contacts whose birthday falls in [from, to]
// inclusive. The comparison includes the year, mirroring the stored column.
func (r *contactRepository) FindWithBirthdayBetween(ctx context.Context, ownerID uint, from, to model.Date) ([]model.Contact, error) {
	var contacts []model.Contact
	if err := r.db.WithContext(ctx).
		Where("owner_id = ? AND birthday >= ? AND birthday <= ?", ownerID, from, to).
		Find(&contacts).Error; err != nil {
		return nil, err
	}
	return contacts, nil
}
