package models

// BookingNotificationPayload is the queued body of a booking confirmation email.
type BookingNotificationPayload struct {
	Booking   Booking `json:"booking"`
	RequestID string  `json:"requestId,omitempty"`
}
