package handlers

import (
	"doctorsportal/middleware"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers and the dependencies the route
// middleware needs.
type HandlerBundle struct {
	Tokens middleware.TokenVerifier
	Admins middleware.AdminChecker

	// Catalog endpoints
	ListServicesHandler gin.HandlerFunc
	AvailabilityHandler gin.HandlerFunc

	// Booking endpoints
	CreateBookingHandler   gin.HandlerFunc
	PatientBookingsHandler gin.HandlerFunc

	// User endpoints
	UpsertUserHandler gin.HandlerFunc
	CheckAdminHandler gin.HandlerFunc
	ListUsersHandler  gin.HandlerFunc

	// Admin endpoints
	MakeAdminHandler    gin.HandlerFunc
	AddDoctorHandler    gin.HandlerFunc
	ListDoctorsHandler  gin.HandlerFunc
	RemoveDoctorHandler gin.HandlerFunc

	// Operational endpoints
	RootHandler   gin.HandlerFunc
	HealthHandler gin.HandlerFunc
}
