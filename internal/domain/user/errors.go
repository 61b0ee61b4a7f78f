package user

import "errors"

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrUserEmailExists      = errors.New("email already registered")
	ErrUserInactive         = errors.New("user is inactive")
	ErrUserAlreadyActive    = errors.New("user is already active")
	ErrInvalidPermission    = errors.New("invalid permission code")
	ErrInvalidWeekendChoice = errors.New("invalid weekend choice")
	ErrUnauthorizedAccess   = errors.New("unauthorized access")
)
