package model

import "time"

// Contact represents an address-book entry owned by a single user.
type Contact struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	FirstName      string    `json:"first_name" gorm:"size:255;not null;index"`
	LastName       string    `json:"last_name" gorm:"size:255;not null;index"`
	Email          string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PhoneNumber    string    `json:"phone_number" gorm:"size:32;not null;index"`
	Birthday       Date      `json:"birthday" gorm:"type:date;not null"`
	AdditionalInfo string    `json:"additional_info,omitempty" gorm:"size:1024"`
	OwnerID        uint      `json:"owner_id" gorm:"not null;index"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	// Relations
	Owner User `json:"-" gorm:"foreignKey:OwnerID"`
}
