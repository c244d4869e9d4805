package booking

import "doctorchamber/models"

// BookingService owns booking creation and retrieval.
type BookingService interface {
	// Create stores a new booking unless an identical (email, date,
	// treatment) booking already exists, in which case the result carries
	// Acknowledged=false and a message naming the date.
	Create(booking models.Booking) (*models.BookingResult, error)
	// ListByEmail returns the user's bookings, most recent first.
	ListByEmail(email string) ([]models.Booking, error)
	// GetByID returns one booking, or nil when absent.
	GetByID(id string) (*models.Booking, error)
}
