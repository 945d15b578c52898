package ports

import (
	"context"

	"github.com/alnoor-academy/institute-api/internal/core/domain"
)

// RegisterInput carries the fields accepted at account registration.
type RegisterInput struct {
	Username        string
	Password        string
	Email           string
	FirstName       string
	LastName        string
	ProfileImageURL string
}

// AuthService verifies identity claims and manages session lifecycle.
type AuthService interface {
	// Register creates an account and logs it in immediately, returning the
	// issued session alongside the user. Duplicate usernames fail with
	// domain.ErrUserExists.
	Register(ctx context.Context, in RegisterInput) (*domain.User, *domain.Session, error)

	// Login verifies credentials and issues a session. Unknown usernames
	// and wrong passwords both fail with domain.ErrInvalidCredentials;
	// the two cases are indistinguishable to the caller.
	Login(ctx context.Context, username, password string) (*domain.User, *domain.Session, error)

	// Logout destroys the server-side session. Unknown ids are a no-op.
	Logout(ctx context.Context, sessionID string) error

	// UserBySession resolves a session id to its account, or
	// domain.ErrSessionNotFound for missing/expired sessions.
	UserBySession(ctx context.Context, sessionID string) (*domain.User, error)

	// BootstrapAdmin idempotently ensures the configured administrator
	// account exists. Called once at process start.
	BootstrapAdmin(ctx context.Context, username, password string) error
}
