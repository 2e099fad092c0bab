package booking

import (
	"context"

	bookingRepo "doctorsportal/database/repository/booking"
	"doctorsportal/models"
)

// BookingService records bookings and lists a patient's bookings.
type BookingService interface {
	Record(ctx context.Context, booking models.Booking) (*models.Booking, error)
	ListForPatient(ctx context.Context, email string) ([]models.Booking, error)
}

// Notifier hands a recorded booking to the confirmation pipeline.
// Dispatch returns immediately and outlives ctx; delivery failures are never reported.
type Notifier interface {
	Dispatch(ctx context.Context, booking models.Booking)
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Repo     bookingRepo.BookingRepository
	Notifier Notifier
}
