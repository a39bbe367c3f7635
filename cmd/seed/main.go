package main

import (
	"log"
	"os"

	"github.com/bkaraca/taskhive/internal/config"
	"github.com/bkaraca/taskhive/internal/database"
	"github.com/bkaraca/taskhive/internal/models"
	"github.com/bkaraca/taskhive/internal/utils"
)

// Seeds the admin account. Registration always normalizes the role to
// "user", so this is the only way an admin comes into existence.
func main() {
	cfg := config.Load()
	db := database.Connect(cfg)
	database.Migrate(db)

	adminUsername := os.Getenv("ADMIN_USERNAME")
	adminEmail := os.Getenv("ADMIN_EMAIL")
	adminPassword := os.Getenv("ADMIN_PASSWORD")

	if adminUsername == "" || adminEmail == "" || adminPassword == "" {
		log.Fatal("Missing environment variables: ADMIN_USERNAME, ADMIN_EMAIL, ADMIN_PASSWORD")
	}

	// Check if admin with this email already exists
	var admin models.User
	result := db.Where("email = ?", adminEmail).First(&admin)

	if result.Error == nil {
		log.Println("Admin user already exists:", admin.Username)
		return
	}

	passwordHash, err := utils.HashPassword(adminPassword)
	if err != nil {
		log.Fatal("Failed to hash password:", err)
	}

	admin = models.User{
		Username:     adminUsername,
		Email:        adminEmail,
		PasswordHash: passwordHash,
		FirstName:    "Admin",
		LastName:     "User",
		Role:         models.RoleAdmin,
		IsActive:     true,
	}

	if err := db.Create(&admin).Error; err != nil {
		log.Fatal("Failed to create admin:", err)
	}

	log.Println("Admin user created successfully:", admin.Username)
}
