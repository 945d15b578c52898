package ports

import (
	"context"

	"github.com/alnoor-academy/institute-api/internal/core/domain"
)

// SessionStore keeps issued sessions server-side, keyed by the opaque id
// handed to the client. Implementations must treat an expired session the
// same as a missing one: Get returns domain.ErrSessionNotFound for both.
type SessionStore interface {
	Create(ctx context.Context, s *domain.Session) error
	Get(ctx context.Context, id string) (*domain.Session, error)
	Delete(ctx context.Context, id string) error

	// Ping verifies backend connectivity for the readiness probe.
	Ping(ctx context.Context) error
}
