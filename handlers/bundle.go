package handlers

import (
	"doctorchamber/services/user"

	"github.com/gin-gonic/gin"
)

// HandlerBundle carries the assembled handlers into route registration.
// UserService rides along for the admin gate middleware.
type HandlerBundle struct {
	UserService user.UserService

	// Catalog endpoints.
	GetAppointments gin.HandlerFunc
	GetSpecialties  gin.HandlerFunc

	// Booking endpoints.
	ListBookings  gin.HandlerFunc
	GetBooking    gin.HandlerFunc
	CreateBooking gin.HandlerFunc

	// User endpoints.
	GetAllUsers  gin.HandlerFunc
	CheckAdmin   gin.HandlerFunc
	PromoteUser  gin.HandlerFunc
	RegisterUser gin.HandlerFunc
	IssueToken   gin.HandlerFunc

	// Payment endpoints.
	CreatePaymentIntent gin.HandlerFunc
	RecordPayment       gin.HandlerFunc

	// Doctor endpoints.
	GetDoctors   gin.HandlerFunc
	AddDoctor    gin.HandlerFunc
	DeleteDoctor gin.HandlerFunc
}
