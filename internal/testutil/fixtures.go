package testutil

import (
	"github.com/bkaraca/taskhive/internal/models"
	"github.com/bkaraca/taskhive/internal/utils"
)

// CreateTestUser builds a user with a real bcrypt hash for the given
// password. The caller persists it with db.Create.
func CreateTestUser(username, email, password string, role models.Role) (*models.User, error) {
	passwordHash, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	return &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		FirstName:    "Test",
		LastName:     "User",
		Role:         role,
		IsActive:     true,
		PhoneNumber:  "5551234567",
	}, nil
}

// DefaultTestUser returns a default test user (regular user)
func DefaultTestUser() (*models.User, error) {
	return CreateTestUser("testuser", "test@example.com", "Test123456", models.RoleUser)
}

// DefaultAdminUser returns a default admin user
func DefaultAdminUser() (*models.User, error) {
	return CreateTestUser("admin", "admin@example.com", "Admin123456", models.RoleAdmin)
}

// CreateTestTodo builds a todo owned by ownerID with sane field values.
func CreateTestTodo(ownerID uint, title string) *models.Todo {
	return &models.Todo{
		Title:       title,
		Description: "A test todo item",
		Priority:    3,
		Complete:    false,
		OwnerID:     ownerID,
	}
}
