package user

import (
	"fmt"
	"time"

	"dochouse/config"
	"dochouse/models"
	"dochouse/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateUser performs a conditional insert keyed on email. Duplicate requests
// return the existing document without creating a second one.
func (s *DefaultUserService) CreateUser(user models.User) (*models.User, bool, error) {
	logger := utils.GetLogger()

	existing, err := s.Repo.GetByEmail(user.Email)
	if err != nil {
		return nil, false, fmt.Errorf("failed to check for existing user: %w", err)
	}
	if existing != nil {
		logger.Info("duplicate user suppressed", zap.String("email", user.Email))
		return existing, false, nil
	}

	user.ID = uuid.New().String()
	if err := s.Repo.Create(&user); err != nil {
		if winner, findErr := s.Repo.GetByEmail(user.Email); findErr == nil && winner != nil {
			return winner, false, nil
		}
		return nil, false, fmt.Errorf("failed to create user: %w", err)
	}
	return &user, true, nil
}

// GetAllUsers lists the full user directory.
func (s *DefaultUserService) GetAllUsers() ([]models.User, error) {
	users, err := s.Repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch users: %w", err)
	}
	return users, nil
}

// GetUserByEmail fetches a user by email.
func (s *DefaultUserService) GetUserByEmail(email string) (*models.User, error) {
	usr, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user %s: %w", email, err)
	}
	if usr == nil {
		return nil, ErrUserNotFound
	}
	return usr, nil
}

// GrantAdmin sets the admin role on a user.
func (s *DefaultUserService) GrantAdmin(id string) (*models.User, error) {
	usr, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user %s: %w", id, err)
	}
	if usr == nil {
		return nil, ErrUserNotFound
	}

	if err := s.Repo.SetRole(id, models.RoleAdmin); err != nil {
		return nil, fmt.Errorf("failed to grant admin to user %s: %w", id, err)
	}
	usr.Role = models.RoleAdmin
	return usr, nil
}

// IsAdmin reports whether the email belongs to an admin user.
func (s *DefaultUserService) IsAdmin(email string) (bool, error) {
	usr, err := s.Repo.GetByEmail(email)
	if err != nil {
		return false, fmt.Errorf("failed to fetch user %s: %w", email, err)
	}
	return usr != nil && usr.IsAdmin(), nil
}

// DeleteUser removes a user document.
func (s *DefaultUserService) DeleteUser(id string) error {
	usr, err := s.Repo.GetByID(id)
	if err != nil {
		return fmt.Errorf("failed to fetch user %s: %w", id, err)
	}
	if usr == nil {
		return ErrUserNotFound
	}
	if err := s.Repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete user %s: %w", id, err)
	}
	return nil
}

// IssueToken signs a bearer token for the given email. The role claim comes
// from the stored user document; unknown emails get a token with no role.
func (s *DefaultUserService) IssueToken(email, name string) (string, error) {
	var subject, role string
	usr, err := s.Repo.GetByEmail(email)
	if err != nil {
		return "", fmt.Errorf("failed to fetch user %s: %w", email, err)
	}
	if usr != nil {
		subject = usr.ID
		role = usr.Role
	} else {
		subject = name
	}

	ttl := time.Duration(config.AppConfig.TokenTTLMinutes) * time.Minute
	if ttl <= 0 {
		ttl = time.Hour
	}
	return utils.GenerateToken(subject, email, role, ttl)
}
