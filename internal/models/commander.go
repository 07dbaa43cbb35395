package models

import "gorm.io/gorm"

// Commander is a deck identity a player can attribute a result to.
// Deleting a commander nulls the reference on past results, it never
// cascades into games.
type Commander struct {
	gorm.Model
	Name        string `gorm:"size:200;not null"`
	Colors      string `gorm:"size:100"`
	Description string `gorm:"size:500"`
	ImageURL    string
}
