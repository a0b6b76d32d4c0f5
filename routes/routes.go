package routes

import (
	"net/http"
	"time"

	"dochouse/handlers"
	"dochouse/middleware"
	"dochouse/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterCatalogRoutes registers the public catalog endpoints.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/services", hb.GetServicesHandler)
	r.GET("/our-services", hb.GetHomeServicesHandler)
	r.GET("/expert-doctors", hb.GetDoctorsHandler)
	r.GET("/doctor-profile/:id", hb.GetDoctorProfileHandler)
	r.GET("/available", hb.GetAvailableHandler)
	r.GET("/reviews", hb.GetReviewsHandler)
	r.POST("/reviews", hb.CreateReviewHandler)
}

// RegisterBookingRoutes registers the booking lifecycle endpoints. Creation
// is public; listing and mutation require a bearer token, deletion the admin
// role on top.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/booking", hb.CreateBookingHandler)

	protected := r.Group("/booking")
	protected.Use(middleware.JWTAuthMiddleware())
	protected.GET("", hb.GetBookingsHandler)
	protected.PATCH("/:id", hb.ConfirmPaymentHandler)
	protected.DELETE("/:id", middleware.RequireAdmin(), hb.DeleteBookingHandler)
}

// RegisterUserRoutes registers the user directory endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/users", hb.CreateUserHandler)

	protected := r.Group("/users")
	protected.Use(middleware.JWTAuthMiddleware())
	protected.GET("", hb.GetUsersHandler)
	protected.GET("/admin/:email", hb.CheckAdminHandler)
	protected.PATCH("/admin/:id", middleware.RequireAdmin(), hb.GrantAdminHandler)
	protected.DELETE("/:id", middleware.RequireAdmin(), hb.DeleteUserHandler)
}

// RegisterPaymentRoutes registers payment-intent creation.
func RegisterPaymentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/create-payment-intent", hb.CreatePaymentIntentHandler)
}

// RegisterAuthRoutes registers token issuance.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/jwt", hb.IssueTokenHandler)
}

// RegisterHealthRoutes registers the liveness and health-check endpoints.
func RegisterHealthRoutes(r *gin.Engine) {
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Doc House server is running!")
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, utils.GetHealthStatus())
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoutes(r)
	RegisterAuthRoutes(r, hb)
	RegisterCatalogRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterPaymentRoutes(r, hb)
}
