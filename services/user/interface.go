package user

import (
	"context"

	userRepo "doctorsportal/database/repository/user"
	"doctorsportal/models"
)

// UserService defines business logic for the user/admin directory.
type UserService interface {
	// Upsert writes profile fields for email, creating the user if needed.
	Upsert(ctx context.Context, email string, fields map[string]interface{}) (*models.UpsertResult, error)
	// MakeAdmin promotes an existing user.
	MakeAdmin(ctx context.Context, email string) (*models.UpsertResult, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetAllUsers(ctx context.Context) ([]models.User, error)
	// IsAdmin reports false for unknown users.
	IsAdmin(ctx context.Context, email string) (bool, error)
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}
