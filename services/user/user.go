package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"doctorsportal/models"

	"go.mongodb.org/mongo-driver/bson"
)

// protectedFields cannot be written through a profile upsert.
var protectedFields = []string{"_id", "email", "role"}

func (s *DefaultUserService) Upsert(ctx context.Context, email string, fields map[string]interface{}) (*models.UpsertResult, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, ErrInvalidEmail
	}

	set := bson.M{}
	for k, v := range fields {
		set[k] = v
	}
	for _, k := range protectedFields {
		delete(set, k)
	}

	res, err := s.Repo.Upsert(ctx, email, set)
	if err != nil {
		return nil, fmt.Errorf("Upsert: %w", err)
	}
	return res, nil
}

func (s *DefaultUserService) MakeAdmin(ctx context.Context, email string) (*models.UpsertResult, error) {
	res, err := s.Repo.SetRole(ctx, email, models.RoleAdmin)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("MakeAdmin: %w", err)
	}
	return res, nil
}

func (s *DefaultUserService) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	u, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("GetUserByEmail: %w", err)
	}
	return u, nil
}

func (s *DefaultUserService) GetAllUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("GetAllUsers: %w", err)
	}
	return users, nil
}

func (s *DefaultUserService) IsAdmin(ctx context.Context, email string) (bool, error) {
	u, err := s.GetUserByEmail(ctx, email)
	if errors.Is(err, ErrUserNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return u.IsAdmin(), nil
}
