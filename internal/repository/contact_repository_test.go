package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"contactbook/internal/model"
)

// setupTestDB prepares an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to initialize test database")

	err = db.AutoMigrate(&model.User{}, &model.Contact{})
	require.NoError(t, err, "failed to migrate tables")

	return db
}

func seedOwner(t *testing.T, db *gorm.DB, email string) *model.User {
	t.Helper()

	user := &model.User{Email: email, PasswordHash: "hashed", IsActive: true}
	require.NoError(t, db.Create(user).Error)
	return user
}

func newContact(ownerID uint, email string, birthday model.Date) *model.Contact {
	return &model.Contact{
		FirstName:   "Ann",
		LastName:    "Lee",
		Email:       email,
		PhoneNumber: "123",
		Birthday:    birthday,
		OwnerID:     ownerID,
	}
}

func TestContactRepository_CreateAndFindByID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewContactRepository(db)
	owner := seedOwner(t, db, "owner@example.com")

	contact := newContact(owner.ID, "a@x.com", model.NewDate(2030, time.January, 1))
	require.NoError(t, repo.Create(context.Background(), contact))
	assert.NotZero(t, contact.ID, "ID is not set")

	got, err := repo.FindByID(context.Background(), owner.ID, contact.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ann", got.FirstName)
	assert.Equal(t, "Lee", got.LastName)
	assert.Equal(t, "a@x.com", got.Email)
	assert.Equal(t, "123", got.PhoneNumber)
	assert.Equal(t, "2030-01-01", got.Birthday.String())
}

func TestContactRepository_OwnerScoping(t *testing.T) {
	db := setupTestDB(t)
	repo := NewContactRepository(db)
	ownerA := seedOwner(t, db, "a@example.com")
	ownerB := seedOwner(t, db, "b@example.com")

	contact := newContact(ownerB.ID, "b.contact@x.com", model.NewDate(1990, time.June, 15))
	require.NoError(t, repo.Create(context.Background(), contact))

	// Another owner's contact is indistinguishable from a missing one.
	_, err := repo.FindByID(context.Background(), ownerA.ID, contact.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	got, err := repo.FindByID(context.Background(), ownerB.ID, contact.ID)
	require.NoError(t, err)
	assert.Equal(t, contact.ID, got.ID)
}

func TestContactRepository_ListByOwner(t *testing.T) {
	db := setupTestDB(t)
	repo := NewContactRepository(db)
	owner := seedOwner(t, db, "owner@example.com")
	other := seedOwner(t, db, "other@example.com")

	for i, email := range []string{"one@x.com", "two@x.com", "three@x.com"} {
		c := newContact(owner.ID, email, model.NewDate(1990+i, time.May, 1))
		require.NoError(t, repo.Create(context.Background(), c))
	}
	require.NoError(t, repo.Create(context.Background(),
		newContact(other.ID, "foreign@x.com", model.NewDate(1985, time.May, 1))))

	t.Run("returns only the owner's contacts", func(t *testing.T) {
		contacts, err := repo.ListByOwner(context.Background(), owner.ID, 0, 100)
		require.NoError(t, err)
		assert.Len(t, contacts, 3)
	})

	t.Run("applies offset and limit", func(t *testing.T) {
		contacts, err := repo.ListByOwner(context.Background(), owner.ID, 1, 1)
		require.NoError(t, err)
		require.Len(t, contacts, 1)
		assert.Equal(t, "two@x.com", contacts[0].Email)
	})

	t.Run("out-of-range offset yields empty slice, no error", func(t *testing.T) {
		contacts, err := repo.ListByOwner(context.Background(), owner.ID, 50, 10)
		require.NoError(t, err)
		assert.Empty(t, contacts)
	})
}

func TestContactRepository_UpdatePersistsChanges(t *testing.T) {
	db := setupTestDB(t)
	repo := NewContactRepository(db)
	owner := seedOwner(t, db, "owner@example.com")

	contact := newContact(owner.ID, "a@x.com", model.NewDate(2030, time.January, 1))
	require.NoError(t, repo.Create(context.Background(), contact))

	contact.AdditionalInfo = "vip"
	require.NoError(t, repo.Update(context.Background(), contact))

	got, err := repo.FindByID(context.Background(), owner.ID, contact.ID)
	require.NoError(t, err)
	assert.Equal(t, "vip", got.AdditionalInfo)
	assert.Equal(t, "Ann", got.FirstName, "untouched fields must survive the update")
	assert.Equal(t, "2030-01-01", got.Birthday.String())
}

func TestContactRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewContactRepository(db)
	owner := seedOwner(t, db, "owner@example.com")

	contact := newContact(owner.ID, "a@x.com", model.NewDate(2030, time.January, 1))
	require.NoError(t, repo.Create(context.Background(), contact))
	require.NoError(t, repo.Delete(context.Background(), contact))

	_, err := repo.FindByID(context.Background(), owner.ID, contact.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestContactRepository_FindWithBirthdayBetween(t *testing.T) {
	db := setupTestDB(t)
	repo := NewContactRepository(db)
	owner := seedOwner(t, db, "owner@example.com")

	today := model.Today()
	cases := []struct {
		email    string
		birthday model.Date
	}{
		{"today@x.com", today},
		{"in-window@x.com", today.AddDays(3)},
		{"boundary@x.com", today.AddDays(7)},
		{"past-window@x.com", today.AddDays(8)},
		{"yesterday@x.com", today.AddDays(-1)},
	}
	for _, tc := range cases {
		require.NoError(t, repo.Create(context.Background(), newContact(owner.ID, tc.email, tc.birthday)))
	}

	contacts, err := repo.FindWithBirthdayBetween(context.Background(), owner.ID, today, today.AddDays(7))
	require.NoError(t, err)

	emails := make([]string, 0, len(contacts))
	for _, c := range contacts {
		emails = append(emails, c.Email)
	}
	assert.ElementsMatch(t, []string{"today@x.com", "in-window@x.com", "boundary@x.com"}, emails)
}
