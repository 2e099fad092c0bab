package routes

import (
	"time"

	"doctorsportal/handlers"
	"doctorsportal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterCatalogRoutes registers the public treatment catalog endpoints.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/services", hb.ListServicesHandler)
	r.GET("/available", hb.AvailabilityHandler)
}

// RegisterBookingRoutes registers booking creation (public) and listing (authenticated).
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/booking", hb.CreateBookingHandler)
	r.GET("/booking", middleware.Authenticate(hb.Tokens), hb.PatientBookingsHandler)
}

// RegisterUserRoutes registers the user directory endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.PUT("/user/:email", hb.UpsertUserHandler)
	r.GET("/admin/:email", hb.CheckAdminHandler)
	r.GET("/users", middleware.Authenticate(hb.Tokens), hb.ListUsersHandler)
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("")
	{
		adminGroup.Use(middleware.Authenticate(hb.Tokens), middleware.RequireAdmin(hb.Admins))
		adminGroup.PUT("/user/admin/:email", hb.MakeAdminHandler)
		adminGroup.POST("/doctor", hb.AddDoctorHandler)
		adminGroup.GET("/doctors", hb.ListDoctorsHandler)
		adminGroup.DELETE("/doctor/:email", hb.RemoveDoctorHandler)
	}
}

// RegisterHealthRoutes registers liveness and health-check endpoints.
func RegisterHealthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/", hb.RootHandler)
	r.GET("/health", hb.HealthHandler)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Authorization", "Content-Type", middleware.RequestIDHeader},
		ExposeHeaders:   []string{"Content-Length", middleware.RequestIDHeader},
		MaxAge:          12 * time.Hour,
	}))

	RegisterCatalogRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoutes(r, hb)
}
