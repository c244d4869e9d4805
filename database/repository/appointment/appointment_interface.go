package appointmentRepo

import "doctorchamber/models"

// AppointmentRepository exposes reads over the appointment-type catalog.
// Catalog writes happen through operational tooling, not this API.
type AppointmentRepository interface {
	GetAll() ([]models.AppointmentType, error)
	GetSpecialties() ([]models.Specialty, error)
}
