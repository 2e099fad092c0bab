package userRepo

import (
	"context"
	"errors"

	"doctorsportal/models"

	"go.mongodb.org/mongo-driver/bson"
)

var ErrUserNotFound = errors.New("user not found")

// UserRepository defines methods for user data access.
type UserRepository interface {
	// Upsert $sets fields on the user with the given email, creating it if absent.
	Upsert(ctx context.Context, email string, fields bson.M) (*models.UpsertResult, error)
	// SetRole returns ErrUserNotFound when no user has the email.
	SetRole(ctx context.Context, email, role string) (*models.UpsertResult, error)
	// GetByEmail returns ErrUserNotFound when no user has the email.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetAll(ctx context.Context) ([]models.User, error)
	EnsureIndexes(ctx context.Context) error
}
