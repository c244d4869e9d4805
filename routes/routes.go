package routes

import (
	"net/http"
	"time"

	"doctorchamber/handlers"
	"doctorchamber/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterCatalogRoutes registers the public appointment-catalog endpoints.
// The speciality path keeps its historical spelling: deployed clients call it.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/appointments", hb.GetAppointments)
	r.GET("/appointmetnSpeciality", hb.GetSpecialties)
}

// RegisterBookingRoutes registers booking endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/bookings", middleware.JWTAuthMiddleware(), hb.ListBookings)
	r.GET("/bookings/:id", hb.GetBooking)
	r.POST("/bookings", hb.CreateBooking)
}

// RegisterUserRoutes registers user, role and token endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGate := middleware.AdminGateMiddleware(hb.UserService)

	r.GET("/allUsers", middleware.JWTAuthMiddleware(), adminGate, hb.GetAllUsers)
	r.GET("/allUsers/admin/:email", hb.CheckAdmin)
	r.PUT("/allUsers/admin/:id", middleware.JWTAuthMiddleware(), adminGate, hb.PromoteUser)
	r.POST("/user", hb.RegisterUser)
	r.GET("/jwt", hb.IssueToken)
}

// RegisterPaymentRoutes registers the payment bridge endpoints.
func RegisterPaymentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/create-payment-intent", hb.CreatePaymentIntent)
	r.POST("/payment", hb.RecordPayment)
}

// RegisterDoctorRoutes registers the admin-gated doctor management endpoints.
func RegisterDoctorRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGate := middleware.AdminGateMiddleware(hb.UserService)

	r.GET("/doctors", middleware.JWTAuthMiddleware(), adminGate, hb.GetDoctors)
	r.POST("/doctors", middleware.JWTAuthMiddleware(), adminGate, hb.AddDoctor)
	r.DELETE("/doctor/:id", middleware.JWTAuthMiddleware(), adminGate, hb.DeleteDoctor)
}

// RegisterHealthRoute registers the liveness endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Doctor Chamber is running")
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// The API serves a browser frontend; CORS stays open.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterCatalogRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterPaymentRoutes(r, hb)
	RegisterDoctorRoutes(r, hb)
}
