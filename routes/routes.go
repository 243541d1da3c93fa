package routes

import (
	"net/http"
	"time"

	"serenispa/handlers"
	"serenispa/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes registers account and profile endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.POST("/register", hb.User.RegisterUser)
		api.POST("/login", hb.User.AuthenticateUser)
		api.POST("/check-admin", hb.User.CheckAdmin)

		// Protected routes (require authentication).
		api.Use(middleware.JWTAuthMiddleware(false))
		api.GET("/me", hb.User.GetProfile)
		api.PUT("/profile", hb.User.UpdateProfile)
	}
}

// RegisterBookingRoutes registers the appointment booking endpoints.
// Creation stays public: guests book with their contact details before ever
// registering an account.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.GET("", hb.Booking.ListBookings)
		api.POST("", hb.Booking.CreateBooking)
		api.DELETE("/:id", middleware.JWTAuthMiddleware(false), hb.Booking.CancelBooking)
	}
}

// RegisterCertificateRoutes registers the gift certificate endpoints. The
// GET endpoint uses optional authentication: buyers list their own
// certificates by email, while the statistics variant requires admin.
func RegisterCertificateRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/certificates")
	{
		api.POST("", hb.Certificate.CreateCertificate)
		api.GET("", middleware.JWTAuthMiddleware(true), hb.Certificate.GetCertificates)
		api.PATCH("/:id", middleware.JWTAuthAdminMiddleware(), hb.Certificate.UpdateCertificateStatus)
	}
}

// RegisterEventRoutes registers event listing, registration and the admin
// event management endpoints.
func RegisterEventRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/events")
	{
		api.GET("", hb.Event.ListEvents)
		api.GET("/:id", hb.Event.GetEvent)

		api.POST("/register", middleware.JWTAuthMiddleware(false), hb.Event.RegisterForEvent)
		api.POST("/unregister", middleware.JWTAuthMiddleware(false), hb.Event.UnregisterFromEvent)

		admin := api.Group("")
		admin.Use(middleware.JWTAuthAdminMiddleware())
		admin.POST("", hb.Event.CreateEvent)
		admin.PUT("/:id", hb.Event.UpdateEvent)
		admin.DELETE("/:id", hb.Event.DeleteEvent)
	}
}

// RegisterReviewRoutes registers review endpoints.
func RegisterReviewRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/reviews")
	{
		api.GET("", hb.Review.ListReviews)
		api.POST("", hb.Review.CreateReview)
		api.PATCH("/:id", middleware.JWTAuthAdminMiddleware(), hb.Review.ModerateReview)
	}
}

// RegisterStatsRoutes registers the admin statistics endpoints.
func RegisterStatsRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/masters")
	{
		api.Use(middleware.JWTAuthAdminMiddleware())
		api.GET("/stats", hb.Stats.GetMasterStats)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Serenispa"})
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

	RegisterUserRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterCertificateRoutes(r, hb)
	RegisterEventRoutes(r, hb)
	RegisterReviewRoutes(r, hb)
	RegisterStatsRoutes(r, hb)
	RegisterHealthRoute(r)
}
