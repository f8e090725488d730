package model

import "time"

// User represents a registered account holder.
type User struct {
	ID               uint      `json:"id" gorm:"primaryKey"`
	Email            string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash     string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	IsActive         bool      `json:"is_active" gorm:"default:true"`
	IsVerified       bool      `json:"is_verified" gorm:"default:false"`
	VerificationCode *string   `json:"-" gorm:"uniqueIndex;size:32"` // Cleared once verification succeeds
	AvatarURL        string    `json:"avatar_url,omitempty" gorm:"size:512"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`

	// Relations
	Contacts []Contact `json:"-" gorm:"foreignKey:OwnerID"`
}
