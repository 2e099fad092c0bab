package user

import (
	"errors"

	userRepo "doctorsportal/database/repository/user"
)

var (
	ErrUserNotFound = userRepo.ErrUserNotFound
	ErrInvalidEmail = errors.New("email is required")
)
