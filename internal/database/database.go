package database

import (
	"log"
	"os"
	"time"

	"mondaymagic/backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Connect initializes the database connection, runs migrations and seeds the
// commander catalog.
func Connect(dsn string) {
	var err error

	// Configure GORM logger
	customLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags), // io writer
		logger.Config{
			SlowThreshold:             200 * time.Millisecond, // Slow SQL threshold
			LogLevel:                  logger.Warn,            // Log level
			IgnoreRecordNotFoundError: true,                   // Ignore ErrRecordNotFound error for logger
			Colorful:                  true,                   // Enable color
		},
	)

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: customLogger,
		// Unique-index violations must surface as gorm.ErrDuplicatedKey so a
		// racing membership insert can be resolved as "already a member".
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	log.Println("Database connection established.")

	if err := Migrate(DB); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	log.Println("Database migrated successfully.")

	if err := SeedCommanders(DB); err != nil {
		log.Fatalf("Failed to seed commanders: %v", err)
	}
}

// Migrate creates or updates the schema for all tracked entities.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Playgroup{},
		&models.PlaygroupMember{},
		&models.Commander{},
		&models.Game{},
		&models.GamePlayer{},
	)
}
