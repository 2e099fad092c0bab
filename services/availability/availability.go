package availability

import (
	"context"
	"fmt"

	"doctorsportal/models"
)

func (s *DefaultAvailabilityService) ListServices(ctx context.Context, nameOnly bool) ([]models.Service, error) {
	services, err := s.Services.GetAll(ctx, nameOnly)
	if err != nil {
		return nil, fmt.Errorf("ListServices: %w", err)
	}
	return services, nil
}

// AvailableOn loads the full catalog and the day's bookings and resolves open slots.
func (s *DefaultAvailabilityService) AvailableOn(ctx context.Context, date string) ([]models.Service, error) {
	services, err := s.Services.GetAll(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("AvailableOn: %w", err)
	}
	bookings, err := s.Bookings.GetByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("AvailableOn: %w", err)
	}
	return Resolve(services, bookings), nil
}
