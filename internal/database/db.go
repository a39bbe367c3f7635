package database

import (
	"log"

	"github.com/bkaraca/taskhive/internal/config"
	"github.com/bkaraca/taskhive/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the database and returns the handle. The handle is passed
// to repositories by constructor; there is no package-level connection.
func Connect(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect database:", err)
	}

	log.Println("Database connected successfully")
	return db
}

func Migrate(db *gorm.DB) {
	// The phone_number column is part of the User model, so the one
	// additive schema change rides along with AutoMigrate.
	if err := db.AutoMigrate(&models.User{}, &models.Todo{}); err != nil {
		log.Fatal("Migration failed:", err)
	}

	log.Println("Database migration completed")
}
