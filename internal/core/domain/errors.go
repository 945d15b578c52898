package domain

import "errors"

// Sentinel errors resolved to HTTP status codes by the API error handler.
var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUserExists         = errors.New("username already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrSessionNotFound    = errors.New("session not found")
	ErrNotFound           = errors.New("not found")
	ErrInvalidStatus      = errors.New("invalid status value")
	ErrValidation         = errors.New("validation failed")
)
