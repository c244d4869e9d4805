package booking

import (
	"testing"

	bookingRepo "doctorchamber/database/repository/booking"
	"doctorchamber/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBookingRepo is an in-memory BookingRepository.
type fakeBookingRepo struct {
	bookings  []models.Booking
	nextID    string
	createErr error
}

func (f *fakeBookingRepo) Create(b *models.Booking) (string, error) {
	if f.createErr != nil {
		return "", f.createErr
	}
	f.bookings = append(f.bookings, *b)
	return f.nextID, nil
}

func (f *fakeBookingRepo) FindByTriple(email, date, treatment string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if b.Email == email && b.Date == date && b.Treatment == treatment {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) GetByDate(date string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if b.Date == date {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) GetByEmail(email string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if b.Email == email {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) GetByID(id string) (*models.Booking, error) {
	return nil, nil
}

func TestCreateStoresBooking(t *testing.T) {
	repo := &fakeBookingRepo{nextID: "abc123"}
	svc := &DefaultBookingSessionService{Repo: repo}

	result, err := svc.Create(models.Booking{
		Email:     "a@x.com",
		Date:      "2024-01-01",
		Treatment: "Cardiology",
		Time:      "10am",
	})

	require.NoError(t, err)
	assert.True(t, result.Acknowledged)
	assert.Equal(t, "abc123", result.InsertedID)
	assert.Len(t, repo.bookings, 1)
}

func TestCreateRefusesDuplicateTriple(t *testing.T) {
	repo := &fakeBookingRepo{nextID: "abc123"}
	svc := &DefaultBookingSessionService{Repo: repo}

	first, err := svc.Create(models.Booking{
		Email:     "a@x.com",
		Date:      "2024-01-01",
		Treatment: "Cardiology",
		Time:      "10am",
	})
	require.NoError(t, err)
	require.True(t, first.Acknowledged)

	second, err := svc.Create(models.Booking{
		Email:     "a@x.com",
		Date:      "2024-01-01",
		Treatment: "Cardiology",
		Time:      "11am",
	})
	require.NoError(t, err)

	assert.False(t, second.Acknowledged)
	assert.Equal(t, "You already booked on 2024-01-01", second.Message)
	// The refused booking must not be persisted.
	assert.Len(t, repo.bookings, 1)
}

func TestCreateAllowsSameTreatmentOnOtherDate(t *testing.T) {
	repo := &fakeBookingRepo{nextID: "abc123"}
	svc := &DefaultBookingSessionService{Repo: repo}

	_, err := svc.Create(models.Booking{Email: "a@x.com", Date: "2024-01-01", Treatment: "Cardiology"})
	require.NoError(t, err)

	result, err := svc.Create(models.Booking{Email: "a@x.com", Date: "2024-01-02", Treatment: "Cardiology"})
	require.NoError(t, err)

	assert.True(t, result.Acknowledged)
	assert.Len(t, repo.bookings, 2)
}

func TestCreateMapsIndexCollisionToRefusal(t *testing.T) {
	// Two concurrent identical requests can both pass the read; the unique
	// index then rejects the loser, which must look like a normal refusal.
	repo := &fakeBookingRepo{createErr: bookingRepo.ErrDuplicateBooking}
	svc := &DefaultBookingSessionService{Repo: repo}

	result, err := svc.Create(models.Booking{
		Email:     "a@x.com",
		Date:      "2024-01-01",
		Treatment: "Cardiology",
	})

	require.NoError(t, err)
	assert.False(t, result.Acknowledged)
	assert.Equal(t, "You already booked on 2024-01-01", result.Message)
}
