package notification

import (
	"context"

	"doctorsportal/models"
)

// Mailer delivers booking confirmation emails.
type Mailer interface {
	SendBookingConfirmation(ctx context.Context, booking models.Booking) error
}
