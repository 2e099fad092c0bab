package doctorRepo

import (
	"context"
	"errors"

	"doctorsportal/models"
)

var (
	ErrDoctorNotFound  = errors.New("doctor not found")
	ErrDuplicateDoctor = errors.New("doctor with this email already exists")
)

// DoctorRepository defines methods for doctor roster access.
type DoctorRepository interface {
	Create(ctx context.Context, doctor *models.Doctor) error
	GetAll(ctx context.Context) ([]models.Doctor, error)
	// DeleteByEmail returns ErrDoctorNotFound when nothing was deleted.
	DeleteByEmail(ctx context.Context, email string) (int64, error)
	EnsureIndexes(ctx context.Context) error
}
