package models

import "gorm.io/gorm"

// GamePlayer is one player's result in a game. Position 1 is the winner;
// positions are stored exactly as submitted, ties included.
type GamePlayer struct {
	gorm.Model
	GameID      uint   `gorm:"not null;uniqueIndex:idx_game_user"`
	UserID      string `gorm:"size:36;not null;uniqueIndex:idx_game_user"`
	CommanderID *uint
	Position    int    `gorm:"not null"`
	Notes       string `gorm:"size:500"`
	LifeTotal   *int

	Game      Game       `gorm:"foreignKey:GameID;constraint:OnDelete:CASCADE;"`
	User      User       `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE;"`
	Commander *Commander `gorm:"foreignKey:CommanderID;constraint:OnDelete:SET NULL;"`
}

// IsWinner reports whether this player finished first.
func (gp GamePlayer) IsWinner() bool {
	return gp.Position == 1
}
