package booking

import (
	"context"
	"errors"
	"fmt"

	bookingRepo "doctorsportal/database/repository/booking"
	"doctorsportal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Record stores a booking unless the patient already holds one on that date.
// The pre-check keeps the common case off the write path; the unique index
// behind Repo.Create settles concurrent attempts.
func (s *DefaultBookingService) Record(ctx context.Context, booking models.Booking) (*models.Booking, error) {
	existing, err := s.Repo.FindByDateAndPatient(ctx, booking.Date, booking.PatientName)
	if err != nil {
		return nil, fmt.Errorf("Record: %w", err)
	}
	if existing != nil {
		return nil, ErrBookingExists
	}

	booking.ID = primitive.NilObjectID
	if err := s.Repo.Create(ctx, &booking); err != nil {
		if errors.Is(err, bookingRepo.ErrDuplicateBooking) {
			return nil, ErrBookingExists
		}
		return nil, fmt.Errorf("Record: %w", err)
	}

	if s.Notifier != nil {
		s.Notifier.Dispatch(ctx, booking)
	}
	return &booking, nil
}

func (s *DefaultBookingService) ListForPatient(ctx context.Context, email string) ([]models.Booking, error) {
	bookings, err := s.Repo.GetByPatientEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("ListForPatient: %w", err)
	}
	return bookings, nil
}
