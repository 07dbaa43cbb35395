package models

import (
	"time"

	"gorm.io/gorm"
)

// Game is one play session in a playgroup. Games are recorded once the
// results are known, so they are created already completed.
type Game struct {
	gorm.Model
	PlaygroupID     uint      `gorm:"not null;index"`
	GameDate        time.Time `gorm:"not null"`
	Notes           string    `gorm:"size:500"`
	DurationMinutes *int
	IsCompleted     bool `gorm:"not null;default:false"`

	Playgroup Playgroup    `gorm:"foreignKey:PlaygroupID;constraint:OnDelete:CASCADE;"`
	Players   []GamePlayer `gorm:"foreignKey:GameID"`
}
