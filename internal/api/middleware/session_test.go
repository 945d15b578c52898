package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/alnoor-academy/institute-api/internal/core/domain"
	"github.com/alnoor-academy/institute-api/internal/core/ports"
)

// stubAuth resolves every session to a fixed user or error.
type stubAuth struct {
	user *domain.User
	err  error

	gotSessionID string
}

func (s *stubAuth) Register(context.Context, ports.RegisterInput) (*domain.User, *domain.Session, error) {
	return nil, nil, nil
}

func (s *stubAuth) Login(context.Context, string, string) (*domain.User, *domain.Session, error) {
	return nil, nil, nil
}

func (s *stubAuth) Logout(context.Context, string) error { return nil }

func (s *stubAuth) UserBySession(_ context.Context, id string) (*domain.User, error) {
	s.gotSessionID = id
	return s.user, s.err
}

func (s *stubAuth) BootstrapAdmin(context.Context, string, string) error { return nil }

func resolveRequest(t *testing.T, auth ports.AuthService, cookie *http.Cookie) echo.Context {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := ResolveSession(auth)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		t.Fatalf("resolver returned error: %v", err)
	}
	return c
}

func TestResolveSession_SetsUser(t *testing.T) {
	auth := &stubAuth{user: &domain.User{ID: "7", Username: "amal"}}
	c := resolveRequest(t, auth, &http.Cookie{Name: SessionCookieName, Value: "sess-1"})

	if auth.gotSessionID != "sess-1" {
		t.Fatalf("resolver looked up %q", auth.gotSessionID)
	}
	user := CurrentUser(c)
	if user == nil || user.ID != "7" {
		t.Fatalf("expected resolved user, got %+v", user)
	}
}

func TestResolveSession_NoCookie(t *testing.T) {
	auth := &stubAuth{user: &domain.User{ID: "7"}}
	c := resolveRequest(t, auth, nil)

	if auth.gotSessionID != "" {
		t.Fatalf("resolver hit the service without a cookie")
	}
	if CurrentUser(c) != nil {
		t.Fatalf("anonymous request must stay anonymous")
	}
}

func TestResolveSession_StaleCookiePassesThrough(t *testing.T) {
	auth := &stubAuth{err: domain.ErrSessionNotFound}
	c := resolveRequest(t, auth, &http.Cookie{Name: SessionCookieName, Value: "stale"})

	// A stale cookie is not an error; the gates decide what needs auth.
	if CurrentUser(c) != nil {
		t.Fatalf("stale session resolved to a user")
	}
}
