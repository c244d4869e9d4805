package user

import (
	"errors"
	"fmt"

	userRepo "doctorchamber/database/repository/user"
	"doctorchamber/models"
	"doctorchamber/utils"
)

// ErrUnknownEmail reports a token request for an email with no user record.
var ErrUnknownEmail = errors.New("no user record for email")

// DefaultUserService implements UserService.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}

// Register stores a new user record.
func (s *DefaultUserService) Register(user models.User) (string, error) {
	if user.Email == "" {
		return "", errors.New("missing email")
	}
	return s.Repo.Create(&user)
}

// GetAll returns every user record.
func (s *DefaultUserService) GetAll() ([]models.User, error) {
	return s.Repo.GetAll()
}

// GetByEmail returns the user record for an email, or nil when absent.
func (s *DefaultUserService) GetByEmail(email string) (*models.User, error) {
	return s.Repo.GetByEmail(email)
}

// IsAdmin reports whether the email belongs to an admin user. An absent
// record is simply not an admin.
func (s *DefaultUserService) IsAdmin(email string) (bool, error) {
	u, err := s.Repo.GetByEmail(email)
	if err != nil {
		return false, err
	}
	return u.IsAdmin(), nil
}

// Promote grants the admin role to the user with the given id.
func (s *DefaultUserService) Promote(id string) error {
	return s.Repo.PromoteToAdmin(id)
}

// IssueToken signs a 7-day access token for a known email.
func (s *DefaultUserService) IssueToken(email string) (string, error) {
	u, err := s.Repo.GetByEmail(email)
	if err != nil {
		return "", fmt.Errorf("failed to look up %s: %w", email, err)
	}
	if u == nil {
		return "", ErrUnknownEmail
	}
	return utils.GenerateToken(email, utils.AccessTokenTTL)
}
