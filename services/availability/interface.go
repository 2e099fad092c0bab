package availability

import (
	"context"

	bookingRepo "doctorsportal/database/repository/booking"
	serviceRepo "doctorsportal/database/repository/service"
	"doctorsportal/models"
)

// AvailabilityService serves the treatment catalog and its per-date availability.
type AvailabilityService interface {
	ListServices(ctx context.Context, nameOnly bool) ([]models.Service, error)
	AvailableOn(ctx context.Context, date string) ([]models.Service, error)
}

// DefaultAvailabilityService is the production implementation.
type DefaultAvailabilityService struct {
	Services serviceRepo.ServiceRepository
	Bookings bookingRepo.BookingRepository
}
