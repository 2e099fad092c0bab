package doctor

import (
	"context"
	"errors"
	"fmt"
	"strings"

	doctorRepo "doctorsportal/database/repository/doctor"
	"doctorsportal/models"
)

var (
	ErrDoctorNotFound = doctorRepo.ErrDoctorNotFound
	ErrDoctorExists   = doctorRepo.ErrDuplicateDoctor
	ErrInvalidDoctor  = errors.New("doctor name and email are required")
)

// DoctorService manages the doctor roster.
type DoctorService interface {
	Add(ctx context.Context, doctor models.Doctor) (*models.Doctor, error)
	List(ctx context.Context) ([]models.Doctor, error)
	Remove(ctx context.Context, email string) (int64, error)
}

// DefaultDoctorService is the production implementation.
type DefaultDoctorService struct {
	Repo doctorRepo.DoctorRepository
}

func (s *DefaultDoctorService) Add(ctx context.Context, doctor models.Doctor) (*models.Doctor, error) {
	doctor.Name = strings.TrimSpace(doctor.Name)
	doctor.Email = strings.TrimSpace(doctor.Email)
	if doctor.Name == "" || doctor.Email == "" {
		return nil, ErrInvalidDoctor
	}

	if err := s.Repo.Create(ctx, &doctor); err != nil {
		if errors.Is(err, ErrDoctorExists) {
			return nil, ErrDoctorExists
		}
		return nil, fmt.Errorf("Add: %w", err)
	}
	return &doctor, nil
}

func (s *DefaultDoctorService) List(ctx context.Context) ([]models.Doctor, error) {
	doctors, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	return doctors, nil
}

func (s *DefaultDoctorService) Remove(ctx context.Context, email string) (int64, error) {
	n, err := s.Repo.DeleteByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrDoctorNotFound) {
			return 0, ErrDoctorNotFound
		}
		return 0, fmt.Errorf("Remove: %w", err)
	}
	return n, nil
}
