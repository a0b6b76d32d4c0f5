package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle aggregates all route handlers so route registration stays in
// one place.
type HandlerBundle struct {
	// Identity endpoints.
	IssueTokenHandler gin.HandlerFunc

	// Catalog endpoints.
	GetServicesHandler      gin.HandlerFunc
	GetHomeServicesHandler  gin.HandlerFunc
	GetDoctorsHandler       gin.HandlerFunc
	GetDoctorProfileHandler gin.HandlerFunc
	GetAvailableHandler     gin.HandlerFunc

	// Booking endpoints.
	CreateBookingHandler  gin.HandlerFunc
	GetBookingsHandler    gin.HandlerFunc
	ConfirmPaymentHandler gin.HandlerFunc
	DeleteBookingHandler  gin.HandlerFunc

	// Payment endpoints.
	CreatePaymentIntentHandler gin.HandlerFunc

	// User endpoints.
	CreateUserHandler gin.HandlerFunc
	GetUsersHandler   gin.HandlerFunc
	CheckAdminHandler gin.HandlerFunc
	GrantAdminHandler gin.HandlerFunc
	DeleteUserHandler gin.HandlerFunc

	// Review endpoints.
	GetReviewsHandler   gin.HandlerFunc
	CreateReviewHandler gin.HandlerFunc
}
