package handlers

import (
	"net/http"

	"doctorchamber/middleware"
	"doctorchamber/models"
	"doctorchamber/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler serves booking creation and retrieval endpoints.
type BookingHandler struct {
	Service booking.BookingService
}

// NewBookingHandler constructs a BookingHandler.
func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

// ListBookings returns the caller's bookings, most recent first. The email
// query must match the verified identity claim.
func (h *BookingHandler) ListBookings(c *gin.Context) {
	email := c.Query("email")
	claimed, ok := middleware.VerifiedEmail(c)
	if !ok || email != claimed {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized access"})
		return
	}

	bookings, err := h.Service.ListByEmail(email)
	if err != nil {
		getLogger(c).Error("failed to list bookings", zap.String("email", email), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load bookings"})
		return
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}

	c.JSON(http.StatusOK, bookings)
}

// GetBooking returns one booking by id.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	id := c.Param("id")

	b, err := h.Service.GetByID(id)
	if err != nil {
		getLogger(c).Error("failed to fetch booking", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load booking"})
		return
	}
	if b == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		return
	}

	c.JSON(http.StatusOK, b)
}

// CreateBooking stores a new booking after the duplicate check. A refused
// duplicate still answers 200 with acknowledged=false, which is what the
// booking UI expects.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var input models.Booking
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	result, err := h.Service.Create(input)
	if err != nil {
		getLogger(c).Error("failed to create booking",
			zap.String("email", input.Email),
			zap.String("date", input.Date),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create booking"})
		return
	}

	c.JSON(http.StatusOK, result)
}
