package doctorRepo

import "doctorchamber/models"

// DoctorRepository exposes persistence for admin-managed doctor records.
type DoctorRepository interface {
	Create(doctor *models.Doctor) (string, error)
	GetAll() ([]models.Doctor, error)
	Delete(id string) error
}
