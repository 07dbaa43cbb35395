package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents a registered player. The ID is an opaque uuid string so it
// can be carried in token claims without exposing row ordering.
type User struct {
	ID           string `gorm:"primaryKey;size:36"`
	UserName     string `gorm:"size:255;unique;not null"`
	Email        string `gorm:"size:255;unique;not null"`
	PasswordHash string `gorm:"size:255;not null"`
	DisplayName  string `gorm:"size:100;not null"`
	Bio          string `gorm:"size:500"`
	CreatedAt    time.Time
	LastLoginAt  time.Time
}

// BeforeCreate assigns a fresh uuid unless one was provided.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
