package models

import "gorm.io/gorm"

// Playgroup is a named group of players who record games together.
// The owner never changes after creation.
type Playgroup struct {
	gorm.Model
	Name        string `gorm:"size:100;not null"`
	Description string `gorm:"size:500"`
	OwnerID     string `gorm:"size:36;not null;index"`
	IsActive    bool   `gorm:"not null;default:true"`

	Owner User `gorm:"foreignKey:OwnerID;references:ID;constraint:OnDelete:RESTRICT;"`
}
