package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"doctorchamber/middleware"
	"doctorchamber/models"
	"doctorchamber/services/booking"
	"doctorchamber/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeBookingService answers from fixtures and records creates.
type fakeBookingService struct {
	byEmail map[string][]models.Booking
	byID    map[string]*models.Booking
	created []models.Booking
}

func (f *fakeBookingService) Create(b models.Booking) (*models.BookingResult, error) {
	for _, existing := range f.created {
		if existing.Email == b.Email && existing.Date == b.Date && existing.Treatment == b.Treatment {
			return &models.BookingResult{
				Acknowledged: false,
				Message:      "You already booked on " + b.Date,
			}, nil
		}
	}
	f.created = append(f.created, b)
	return &models.BookingResult{Acknowledged: true, InsertedID: "bk1"}, nil
}

func (f *fakeBookingService) ListByEmail(email string) ([]models.Booking, error) {
	return f.byEmail[email], nil
}

func (f *fakeBookingService) GetByID(id string) (*models.Booking, error) {
	return f.byID[id], nil
}

var _ booking.BookingService = (*fakeBookingService)(nil)

func bookingRouter(svc *fakeBookingService) *gin.Engine {
	h := NewBookingHandler(svc)
	r := gin.New()
	r.GET("/bookings", middleware.JWTAuthMiddleware(), h.ListBookings)
	r.GET("/bookings/:id", h.GetBooking)
	r.POST("/bookings", h.CreateBooking)
	return r
}

func TestListBookingsRejectsMismatchedEmail(t *testing.T) {
	r := bookingRouter(&fakeBookingService{})

	token, err := utils.GenerateToken("a@x.com", utils.AccessTokenTTL)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/bookings?email=b@x.com", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestListBookingsReturnsOwnBookings(t *testing.T) {
	svc := &fakeBookingService{byEmail: map[string][]models.Booking{
		"a@x.com": {{Email: "a@x.com", Date: "2024-01-01", Treatment: "Cardiology"}},
	}}
	r := bookingRouter(svc)

	token, err := utils.GenerateToken("a@x.com", utils.AccessTokenTTL)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/bookings?email=a@x.com", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var got []models.Booking
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "Cardiology", got[0].Treatment)
}

func TestGetBookingNotFound(t *testing.T) {
	r := bookingRouter(&fakeBookingService{byID: map[string]*models.Booking{}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/bookings/656a0c1f9f1b2c3d4e5f6071", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateBookingTwiceRefusesSecond(t *testing.T) {
	r := bookingRouter(&fakeBookingService{})
	body := `{"date":"2024-01-01","email":"a@x.com","treatment":"Cardiology","time":"10am"}`

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var first models.BookingResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &first))
	assert.True(t, first.Acknowledged)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var second models.BookingResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &second))
	assert.False(t, second.Acknowledged)
	assert.Equal(t, "You already booked on 2024-01-01", second.Message)
}
