package serviceRepo

import (
	"context"

	"doctorsportal/models"
)

// ServiceRepository reads the treatment catalog.
type ServiceRepository interface {
	// GetAll returns every service; with nameOnly the slot lists are not loaded.
	GetAll(ctx context.Context, nameOnly bool) ([]models.Service, error)
	EnsureIndexes(ctx context.Context) error
}
