package userRepo

import "dochouse/models"

// UserRepository defines data access for platform users.
type UserRepository interface {
	// Create inserts a new user document.
	Create(user *models.User) error

	// GetByID retrieves a user by its unique ID. Returns (nil, nil) when no
	// document matches.
	GetByID(id string) (*models.User, error)

	// GetByEmail retrieves a user by its email address. Returns (nil, nil)
	// when no document matches.
	GetByEmail(email string) (*models.User, error)

	// GetAll retrieves all users.
	GetAll() ([]models.User, error)

	// SetRole updates the role field of a user document.
	SetRole(id, role string) error

	// Delete removes a user document by its ID.
	Delete(id string) error
}
