package user

import "doctorchamber/models"

// UserService owns user registration, role checks and token issuance.
type UserService interface {
	Register(user models.User) (string, error)
	GetAll() ([]models.User, error)
	GetByEmail(email string) (*models.User, error)
	IsAdmin(email string) (bool, error)
	Promote(id string) error
	// IssueToken returns a 7-day access token for the email, or
	// ErrUnknownEmail when no user record exists for it.
	IssueToken(email string) (string, error)
}
