package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"doctorchamber/config"
	"doctorchamber/database"
	appointmentRepo "doctorchamber/database/repository/appointment"
	bookingRepo "doctorchamber/database/repository/booking"
	doctorRepo "doctorchamber/database/repository/doctor"
	paymentRepo "doctorchamber/database/repository/payment"
	userRepoPkg "doctorchamber/database/repository/user"
	"doctorchamber/handlers"
	"doctorchamber/middleware"
	"doctorchamber/routes"
	"doctorchamber/services/booking"
	"doctorchamber/services/catalog"
	"doctorchamber/services/payment"
	"doctorchamber/services/user"
	"doctorchamber/utils"
	"doctorchamber/worker"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	mongoClient, err := database.Connect(config.AppConfig)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to connect to MongoDB: %v", err)
	}
	defer func() {
		if err := database.Disconnect(mongoClient); err != nil {
			logger.Sugar().Errorf("main: failed to disconnect MongoDB: %v", err)
		}
	}()
	db := mongoClient.Database(config.AppConfig.DatabaseName)

	cacheClient := utils.GetCacheClient()
	stripe.Key = config.AppConfig.StripeKey

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestLoggerMiddleware())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	apptRepo := appointmentRepo.NewMongoAppointmentRepo(db)
	bkRepo := bookingRepo.NewMongoBookingRepo(db)
	usrRepo := userRepoPkg.NewMongoUserRepo(db)
	docRepo := doctorRepo.NewMongoDoctorRepo(db)
	payRepo := paymentRepo.NewMongoPaymentRepo(db)

	// services.
	userService := &user.DefaultUserService{Repo: usrRepo}
	catalogService := &catalog.DefaultCatalogService{
		Appointments: apptRepo,
		Bookings:     bkRepo,
		Cache:        cacheClient,
		Logger:       logger,
	}
	bookingService := &booking.DefaultBookingSessionService{
		Repo:   bkRepo,
		Logger: logger,
	}
	paymentService := &payment.DefaultPaymentService{
		Repo:   payRepo,
		Logger: logger,
	}

	catalogHandler := handlers.NewCatalogHandler(catalogService)
	bookingHandler := handlers.NewBookingHandler(bookingService)
	userHandler := handlers.NewUserHandler(userService)
	paymentHandler := handlers.NewPaymentHandler(paymentService)
	doctorHandler := handlers.NewDoctorHandler(docRepo)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserService: userService,

		// Catalog endpoints.
		GetAppointments: catalogHandler.GetAppointments,
		GetSpecialties:  catalogHandler.GetSpecialties,

		// Booking endpoints.
		ListBookings:  bookingHandler.ListBookings,
		GetBooking:    bookingHandler.GetBooking,
		CreateBooking: bookingHandler.CreateBooking,

		// User endpoints.
		GetAllUsers:  userHandler.GetAllUsers,
		CheckAdmin:   userHandler.CheckAdmin,
		PromoteUser:  userHandler.PromoteUser,
		RegisterUser: userHandler.RegisterUser,
		IssueToken:   userHandler.IssueToken,

		// Payment endpoints.
		CreatePaymentIntent: paymentHandler.CreatePaymentIntent,
		RecordPayment:       paymentHandler.RecordPayment,

		// Doctor endpoints.
		GetDoctors:   doctorHandler.GetDoctors,
		AddDoctor:    doctorHandler.AddDoctor,
		DeleteDoctor: doctorHandler.DeleteDoctor,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Background reminder worker over the booking store.
	worker.InitReminderWorker(bkRepo, logger)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "5000"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
