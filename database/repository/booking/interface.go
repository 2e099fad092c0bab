package bookingRepo

import (
	"context"
	"errors"

	"doctorsportal/models"
)

// ErrDuplicateBooking is returned by Create when the (date, patientName) index rejects the insert.
var ErrDuplicateBooking = errors.New("booking already exists for this patient and date")

// BookingRepository defines methods for booking data access.
type BookingRepository interface {
	// Create inserts a booking and returns it with its generated ID.
	Create(ctx context.Context, booking *models.Booking) error
	// FindByDateAndPatient returns nil, nil when no booking matches.
	FindByDateAndPatient(ctx context.Context, date, patientName string) (*models.Booking, error)
	GetByDate(ctx context.Context, date string) ([]models.Booking, error)
	GetByPatientEmail(ctx context.Context, email string) ([]models.Booking, error)
	EnsureIndexes(ctx context.Context) error
}
