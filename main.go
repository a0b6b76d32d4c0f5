package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dochouse/config"
	"dochouse/database"
	bookingRepoPkg "dochouse/database/repository/booking"
	doctorRepoPkg "dochouse/database/repository/doctor"
	paymentRepoPkg "dochouse/database/repository/payment"
	reviewRepoPkg "dochouse/database/repository/review"
	serviceRepoPkg "dochouse/database/repository/service"
	userRepoPkg "dochouse/database/repository/user"
	"dochouse/handlers"
	"dochouse/middleware"
	"dochouse/routes"
	"dochouse/services/availability"
	"dochouse/services/booking"
	"dochouse/services/payment"
	"dochouse/services/user"
	"dochouse/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	client, err := database.Connect(config.AppConfig.DatabaseURL)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to connect to database: %v", err)
	}
	defer func() {
		if err := database.Disconnect(client); err != nil {
			logger.Sugar().Errorf("main: failed to disconnect from database: %v", err)
		}
	}()
	db := client.Database(config.AppConfig.DatabaseName)
	utils.StartHealthMonitor(client)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	stripe.Key = config.AppConfig.StripeKey

	// repositories.
	svcRepo := serviceRepoPkg.NewMongoServiceRepo(db)
	bkRepo := bookingRepoPkg.NewMongoBookingRepo(db)
	usrRepo := userRepoPkg.NewMongoUserRepo(db)
	docRepo := doctorRepoPkg.NewMongoDoctorRepo(db)
	rvRepo := reviewRepoPkg.NewMongoReviewRepo(db)
	payRepo := paymentRepoPkg.NewMongoPaymentRepo(db)

	// services.
	availabilityService := &availability.DefaultAvailabilityService{
		ServiceRepo: svcRepo,
		BookingRepo: bkRepo,
	}
	bookingService := &booking.DefaultBookingService{
		Repo:        bkRepo,
		PaymentRepo: payRepo,
	}
	userService := &user.DefaultUserService{
		Repo: usrRepo,
	}
	intentService := payment.NewStripeIntentService(config.AppConfig.StripeCurrency)

	// handlers.
	availabilityHandler := handlers.NewAvailabilityHandler(availabilityService)
	bookingHandler := handlers.NewBookingHandler(bookingService, logger)
	userHandler := handlers.NewUserHandler(userService)
	catalogHandler := handlers.NewCatalogHandler(svcRepo, docRepo)
	reviewHandler := handlers.NewReviewHandler(rvRepo)
	paymentHandler := handlers.NewPaymentHandler(intentService)
	authHandler := handlers.NewAuthHandler(userService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		IssueTokenHandler: authHandler.IssueTokenHandler,

		GetServicesHandler:      catalogHandler.GetServicesHandler,
		GetHomeServicesHandler:  catalogHandler.GetHomeServicesHandler,
		GetDoctorsHandler:       catalogHandler.GetDoctorsHandler,
		GetDoctorProfileHandler: catalogHandler.GetDoctorProfileHandler,
		GetAvailableHandler:     availabilityHandler.GetAvailableHandler,

		CreateBookingHandler:  bookingHandler.CreateBookingHandler,
		GetBookingsHandler:    bookingHandler.GetBookingsHandler,
		ConfirmPaymentHandler: bookingHandler.ConfirmPaymentHandler,
		DeleteBookingHandler:  bookingHandler.DeleteBookingHandler,

		CreatePaymentIntentHandler: paymentHandler.CreatePaymentIntentHandler,

		CreateUserHandler: userHandler.CreateUserHandler,
		GetUsersHandler:   userHandler.GetUsersHandler,
		CheckAdminHandler: userHandler.CheckAdminHandler,
		GrantAdminHandler: userHandler.GrantAdminHandler,
		DeleteUserHandler: userHandler.DeleteUserHandler,

		GetReviewsHandler:   reviewHandler.GetReviewsHandler,
		CreateReviewHandler: reviewHandler.CreateReviewHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

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
