package booking

import "errors"

// ErrBookingExists means the patient already has a booking on that date.
var ErrBookingExists = errors.New("booking already exists for this patient and date")
