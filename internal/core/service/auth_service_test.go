package service

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/alnoor-academy/institute-api/internal/core/domain"
	"github.com/alnoor-academy/institute-api/internal/core/ports"
)

type stubUserStore struct {
	users  map[string]*domain.User
	nextID int
}

func newStubUserStore() *stubUserStore {
	return &stubUserStore{users: make(map[string]*domain.User), nextID: 1}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserStore) GetUser(_ context.Context, id string) (*domain.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserStore) GetUserByUsername(_ context.Context, username string) (*domain.User, error) {
	if u, ok := r.users[username]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserStore) CreateUser(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.users[user.Username]; exists {
		return nil, domain.ErrUserExists
	}
	copy := cloneUser(user)
	copy.ID = strconv.Itoa(r.nextID)
	r.nextID++
	r.users[copy.Username] = cloneUser(copy)
	return copy, nil
}

type stubSessionStore struct {
	sessions map[string]*domain.Session
}

func newStubSessionStore() *stubSessionStore {
	return &stubSessionStore{sessions: make(map[string]*domain.Session)}
}

func (r *stubSessionStore) Create(_ context.Context, s *domain.Session) error {
	clone := *s
	r.sessions[s.ID] = &clone
	return nil
}

func (r *stubSessionStore) Get(_ context.Context, id string) (*domain.Session, error) {
	if s, ok := r.sessions[id]; ok {
		clone := *s
		return &clone, nil
	}
	return nil, domain.ErrSessionNotFound
}

func (r *stubSessionStore) Delete(_ context.Context, id string) error {
	delete(r.sessions, id)
	return nil
}

func (r *stubSessionStore) Ping(_ context.Context) error { return nil }

func newTestAuthService(users *stubUserStore, sessions *stubSessionStore) *AuthService {
	return NewAuthService(users, sessions, time.Hour, zerolog.Nop())
}

func TestAuthService_Register_Success(t *testing.T) {
	users := newStubUserStore()
	sessions := newStubSessionStore()
	svc := newTestAuthService(users, sessions)

	user, session, err := svc.Register(context.Background(), ports.RegisterInput{
		Username: "alice",
		Password: "pass123",
		Email:    "alice@example.com",
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.Password == "pass123" {
		t.Fatalf("expected password to be hashed")
	}
	if !VerifyPassword("pass123", users.users["alice"].Password) {
		t.Fatalf("stored record does not verify against the password")
	}
	if user.IsAdmin {
		t.Fatalf("self-registered account must not be admin")
	}
	if session == nil || session.ID == "" {
		t.Fatalf("expected an issued session, got %+v", session)
	}
	if _, ok := sessions.sessions[session.ID]; !ok {
		t.Fatalf("session not persisted in the store")
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	users := newStubUserStore()
	svc := newTestAuthService(users, newStubSessionStore())

	if _, _, err := svc.Register(context.Background(), ports.RegisterInput{Username: "bob", Password: "pw1"}); err != nil {
		t.Fatalf("first Register returned error: %v", err)
	}
	if _, _, err := svc.Register(context.Background(), ports.RegisterInput{Username: "bob", Password: "pw2"}); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthService_Login_GenericFailure(t *testing.T) {
	users := newStubUserStore()
	svc := newTestAuthService(users, newStubSessionStore())

	if _, _, err := svc.Register(context.Background(), ports.RegisterInput{Username: "carol", Password: "right"}); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	// Unknown username and wrong password must be indistinguishable.
	_, _, unknownErr := svc.Login(context.Background(), "nobody", "whatever")
	_, _, wrongErr := svc.Login(context.Background(), "carol", "wrong")

	if !errors.Is(unknownErr, domain.ErrInvalidCredentials) {
		t.Fatalf("unknown user: expected ErrInvalidCredentials, got %v", unknownErr)
	}
	if !errors.Is(wrongErr, domain.ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", wrongErr)
	}
	if unknownErr.Error() != wrongErr.Error() {
		t.Fatalf("failure messages differ: %q vs %q", unknownErr, wrongErr)
	}
}

func TestAuthService_Login_IssuesSession(t *testing.T) {
	users := newStubUserStore()
	sessions := newStubSessionStore()
	svc := newTestAuthService(users, sessions)

	if _, _, err := svc.Register(context.Background(), ports.RegisterInput{Username: "dave", Password: "pw"}); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	user, session, err := svc.Login(context.Background(), "dave", "pw")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}

	resolved, err := svc.UserBySession(context.Background(), session.ID)
	if err != nil {
		t.Fatalf("UserBySession returned error: %v", err)
	}
	if resolved.ID != user.ID {
		t.Fatalf("session resolves to %q, want %q", resolved.ID, user.ID)
	}
}

func TestAuthService_UserBySession_Expired(t *testing.T) {
	users := newStubUserStore()
	sessions := newStubSessionStore()
	svc := newTestAuthService(users, sessions)

	user, _ := users.CreateUser(context.Background(), &domain.User{Username: "eve", Password: "x"})
	sessions.sessions["stale"] = &domain.Session{
		ID:        "stale",
		UserID:    user.ID,
		ExpiresAt: time.Now().UTC().Add(-time.Minute),
	}

	if _, err := svc.UserBySession(context.Background(), "stale"); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound for expired session, got %v", err)
	}
	if _, ok := sessions.sessions["stale"]; ok {
		t.Fatalf("expired session was not purged")
	}
}

func TestAuthService_Logout(t *testing.T) {
	users := newStubUserStore()
	sessions := newStubSessionStore()
	svc := newTestAuthService(users, sessions)

	_, session, err := svc.Register(context.Background(), ports.RegisterInput{Username: "frank", Password: "pw"})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	if err := svc.Logout(context.Background(), session.ID); err != nil {
		t.Fatalf("Logout returned error: %v", err)
	}
	if _, err := svc.UserBySession(context.Background(), session.ID); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound after logout, got %v", err)
	}

	// Logging out an unknown session is a no-op.
	if err := svc.Logout(context.Background(), "gone"); err != nil {
		t.Fatalf("Logout of unknown session returned error: %v", err)
	}
}

func TestAuthService_BootstrapAdmin_Idempotent(t *testing.T) {
	users := newStubUserStore()
	svc := newTestAuthService(users, newStubSessionStore())

	if err := svc.BootstrapAdmin(context.Background(), "admin", "hunter2"); err != nil {
		t.Fatalf("first BootstrapAdmin returned error: %v", err)
	}
	created := users.users["admin"]
	if created == nil || !created.IsAdmin {
		t.Fatalf("expected an admin account, got %+v", created)
	}

	if err := svc.BootstrapAdmin(context.Background(), "admin", "different"); err != nil {
		t.Fatalf("second BootstrapAdmin returned error: %v", err)
	}
	if users.users["admin"].Password != created.Password {
		t.Fatalf("bootstrap overwrote the existing account")
	}
	if len(users.users) != 1 {
		t.Fatalf("expected exactly one account, got %d", len(users.users))
	}
}
