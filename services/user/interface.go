package user

import (
	userRepo "dochouse/database/repository/user"
	"dochouse/models"
)

// UserService manages the user directory and role assignment.
type UserService interface {
	// CreateUser inserts a user unless one with the same email exists. The
	// returned bool reports whether a new document was created; on a
	// duplicate the existing user is returned unchanged.
	CreateUser(user models.User) (*models.User, bool, error)

	// GetAllUsers lists the full user directory.
	GetAllUsers() ([]models.User, error)

	// GetUserByEmail fetches a user by email.
	GetUserByEmail(email string) (*models.User, error)

	// GrantAdmin sets the admin role on a user.
	GrantAdmin(id string) (*models.User, error)

	// IsAdmin reports whether the user with the given email carries the
	// admin role. Unknown emails are simply not admins.
	IsAdmin(email string) (bool, error)

	// DeleteUser removes a user document.
	DeleteUser(id string) error

	// IssueToken signs a bearer token asserting the given email, carrying
	// the stored role when the email is known.
	IssueToken(email, name string) (string, error)
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}
