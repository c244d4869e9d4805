package catalog

import "doctorchamber/models"

// CatalogService serves the appointment-type catalog and per-date
// availability projections.
type CatalogService interface {
	// AvailabilityForDate returns every appointment type with its slots
	// reduced to the ones still free on the given date.
	AvailabilityForDate(date string) ([]models.AppointmentType, error)
	// Specialties returns a names-only view of the catalog.
	Specialties() ([]models.Specialty, error)
}
