package booking

import (
	"errors"
	"fmt"

	bookingRepo "doctorchamber/database/repository/booking"
	"doctorchamber/models"

	"go.uber.org/zap"
)

// DefaultBookingSessionService implements BookingService.
type DefaultBookingSessionService struct {
	Repo   bookingRepo.BookingRepository
	Logger *zap.Logger
}

// Create runs the duplicate check and persists the booking. The check-then-act
// read gives the friendly refusal for the common case; the repository's unique
// compound index catches the race where two identical requests both pass the
// read, and that collision maps to the same refusal.
func (s *DefaultBookingSessionService) Create(booking models.Booking) (*models.BookingResult, error) {
	existing, err := s.Repo.FindByTriple(booking.Email, booking.Date, booking.Treatment)
	if err != nil {
		return nil, fmt.Errorf("duplicate check failed: %w", err)
	}
	if len(existing) > 0 {
		return refused(booking.Date), nil
	}

	id, err := s.Repo.Create(&booking)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrDuplicateBooking) {
			if s.Logger != nil {
				s.Logger.Warn("concurrent duplicate booking refused by index",
					zap.String("email", booking.Email),
					zap.String("date", booking.Date),
					zap.String("treatment", booking.Treatment))
			}
			return refused(booking.Date), nil
		}
		return nil, err
	}

	return &models.BookingResult{Acknowledged: true, InsertedID: id}, nil
}

// ListByEmail returns the user's bookings, most recent first.
func (s *DefaultBookingSessionService) ListByEmail(email string) ([]models.Booking, error) {
	return s.Repo.GetByEmail(email)
}

// GetByID returns one booking, or nil when absent.
func (s *DefaultBookingSessionService) GetByID(id string) (*models.Booking, error) {
	return s.Repo.GetByID(id)
}

func refused(date string) *models.BookingResult {
	return &models.BookingResult{
		Acknowledged: false,
		Message:      fmt.Sprintf("You already booked on %s", date),
	}
}
