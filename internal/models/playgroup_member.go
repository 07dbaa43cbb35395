package models

import (
	"time"

	"gorm.io/gorm"
)

// PlaygroupMember links a user to a playgroup. Removal is a soft-deactivation:
// the row is kept and IsActive flipped, so there is at most one row per
// (playgroup, user) pair. The composite unique index enforces that even when
// two adds race.
type PlaygroupMember struct {
	gorm.Model
	PlaygroupID uint      `gorm:"not null;uniqueIndex:idx_playgroup_user"`
	UserID      string    `gorm:"size:36;not null;uniqueIndex:idx_playgroup_user"`
	JoinedAt    time.Time `gorm:"not null"`
	IsActive    bool      `gorm:"not null;default:true"`

	Playgroup Playgroup `gorm:"foreignKey:PlaygroupID;constraint:OnDelete:CASCADE;"`
	User      User      `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE;"`
}
