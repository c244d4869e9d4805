package userRepo

import "doctorchamber/models"

// UserRepository exposes persistence for user records.
type UserRepository interface {
	Create(user *models.User) (string, error)
	GetByEmail(email string) (*models.User, error)
	GetAll() ([]models.User, error)
	PromoteToAdmin(id string) error
}
