package database

import (
	"mondaymagic/backend/internal/models"

	"gorm.io/gorm"
)

// SeedCommanders populates the commander catalog with a handful of well-known
// decks. Runs only when the table is empty so user-added commanders survive
// restarts.
func SeedCommanders(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Commander{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	commanders := []models.Commander{
		{Name: "Atraxa, Praetors' Voice", Colors: "WUBG", Description: "Legendary Artifact Creature — Phyrexian Angel Horror"},
		{Name: "Edgar Markov", Colors: "RWB", Description: "Legendary Creature — Vampire Knight"},
		{Name: "The Ur-Dragon", Colors: "WUBRG", Description: "Legendary Creature — Dragon Avatar"},
		{Name: "Korvold, Fae-Cursed King", Colors: "BRG", Description: "Legendary Creature — Dragon Noble"},
		{Name: "Meren of Clan Nel Toth", Colors: "BG", Description: "Legendary Creature — Human Shaman"},
	}

	return db.Create(&commanders).Error
}
