package bookingRepo

import (
	"errors"

	"doctorchamber/models"
)

// ErrDuplicateBooking reports that an identical (email, date, treatment)
// booking already exists. The unique compound index raises it even when two
// concurrent requests both pass the application-level check.
var ErrDuplicateBooking = errors.New("duplicate booking for email, date and treatment")

// BookingRepository exposes persistence for booking records. Bookings are
// never deleted by the system.
type BookingRepository interface {
	Create(booking *models.Booking) (string, error)
	FindByTriple(email, date, treatment string) ([]models.Booking, error)
	GetByDate(date string) ([]models.Booking, error)
	GetByEmail(email string) ([]models.Booking, error)
	GetByID(id string) (*models.Booking, error)
}
