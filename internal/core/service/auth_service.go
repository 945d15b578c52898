package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/alnoor-academy/institute-api/internal/core/domain"
	"github.com/alnoor-academy/institute-api/internal/core/ports"
)

const sessionIDBytes = 32

// AuthService implements registration, login, and session resolution over
// the storage and session-store ports.
type AuthService struct {
	storage    ports.UserStore
	sessions   ports.SessionStore
	sessionTTL time.Duration
	log        zerolog.Logger
}

func NewAuthService(storage ports.UserStore, sessions ports.SessionStore, sessionTTL time.Duration, log zerolog.Logger) *AuthService {
	if sessionTTL <= 0 {
		sessionTTL = 24 * time.Hour
	}
	return &AuthService{storage: storage, sessions: sessions, sessionTTL: sessionTTL, log: log}
}

func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, *domain.Session, error) {
	if in.Username == "" || in.Password == "" {
		return nil, nil, domain.ErrInvalidCredentials
	}

	if _, err := s.storage.GetUserByUsername(ctx, in.Username); err == nil {
		return nil, nil, domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, nil, fmt.Errorf("register: lookup: %w", err)
	}

	encoded, err := HashPassword(in.Password)
	if err != nil {
		return nil, nil, fmt.Errorf("register: %w", err)
	}

	user, err := s.storage.CreateUser(ctx, &domain.User{
		Username:        in.Username,
		Password:        encoded,
		Email:           in.Email,
		FirstName:       in.FirstName,
		LastName:        in.LastName,
		ProfileImageURL: in.ProfileImageURL,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("register: %w", err)
	}

	session, err := s.issueSession(ctx, user.ID)
	if err != nil {
		return nil, nil, err
	}

	s.log.Info().Str("username", user.Username).Msg("account registered")
	return user, session, nil
}

func (s *AuthService) Login(ctx context.Context, username, password string) (*domain.User, *domain.Session, error) {
	if username == "" || password == "" {
		return nil, nil, domain.ErrInvalidCredentials
	}

	user, err := s.storage.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			// Unknown username and wrong password must be indistinguishable.
			return nil, nil, domain.ErrInvalidCredentials
		}
		return nil, nil, fmt.Errorf("login: lookup: %w", err)
	}

	if !VerifyPassword(password, user.Password) {
		return nil, nil, domain.ErrInvalidCredentials
	}

	session, err := s.issueSession(ctx, user.ID)
	if err != nil {
		return nil, nil, err
	}

	s.log.Info().Str("username", user.Username).Msg("login")
	return user, session, nil
}

func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}

func (s *AuthService) UserBySession(ctx context.Context, sessionID string) (*domain.User, error) {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Expired(time.Now().UTC()) {
		_ = s.sessions.Delete(ctx, sessionID)
		return nil, domain.ErrSessionNotFound
	}

	user, err := s.storage.GetUser(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, fmt.Errorf("resolve session: %w", err)
	}
	return user, nil
}

// BootstrapAdmin ensures the configured administrator account exists. The
// check-then-create is idempotent: a second start with the same handle is a
// logged no-op.
func (s *AuthService) BootstrapAdmin(ctx context.Context, username, password string) error {
	existing, err := s.storage.GetUserByUsername(ctx, username)
	if err == nil && existing != nil {
		s.log.Info().Str("username", username).Msg("admin account already exists")
		return nil
	}
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return fmt.Errorf("bootstrap admin: lookup: %w", err)
	}

	encoded, err := HashPassword(password)
	if err != nil {
		return fmt.Errorf("bootstrap admin: %w", err)
	}

	if _, err := s.storage.CreateUser(ctx, &domain.User{
		Username:  username,
		Password:  encoded,
		FirstName: "Admin",
		LastName:  "User",
		IsAdmin:   true,
	}); err != nil {
		return fmt.Errorf("bootstrap admin: %w", err)
	}

	s.log.Info().Str("username", username).Msg("admin account created")
	return nil
}

func (s *AuthService) issueSession(ctx context.Context, userID string) (*domain.Session, error) {
	raw := make([]byte, sessionIDBytes)
	if _, err := rand.Read(raw); err != nil {
		return nil, fmt.Errorf("issue session: %w", err)
	}

	session := &domain.Session{
		ID:        hex.EncodeToString(raw),
		UserID:    userID,
		ExpiresAt: time.Now().UTC().Add(s.sessionTTL),
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("issue session: %w", err)
	}
	return session, nil
}
