package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/alnoor-academy/institute-api/internal/core/domain"
)

func gateContext(t *testing.T, user *domain.User) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if user != nil {
		c.Set(userContextKey, user)
	}
	return c, rec
}

func TestRequireAuthenticated_RejectsAnonymous(t *testing.T) {
	c, _ := gateContext(t, nil)

	handler := RequireAuthenticated()(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	err := handler(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
	if he.Message != "Authentication required" {
		t.Fatalf("unexpected message: %v", he.Message)
	}
}

func TestRequireAuthenticated_PassesUser(t *testing.T) {
	c, rec := gateContext(t, &domain.User{ID: "1", Username: "u"})

	called := false
	handler := RequireAuthenticated()(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called || rec.Code != http.StatusOK {
		t.Fatalf("next not called (called=%v code=%d)", called, rec.Code)
	}
}

func TestRequireAdmin_Matrix(t *testing.T) {
	cases := []struct {
		name     string
		user     *domain.User
		wantCode int
	}{
		{"anonymous", nil, http.StatusUnauthorized},
		{"non-admin", &domain.User{ID: "1", Username: "u"}, http.StatusForbidden},
		{"admin", &domain.User{ID: "2", Username: "root", IsAdmin: true}, http.StatusOK},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, rec := gateContext(t, tc.user)

			handler := RequireAdmin()(func(c echo.Context) error {
				return c.NoContent(http.StatusOK)
			})

			err := handler(c)
			if tc.wantCode == http.StatusOK {
				if err != nil {
					t.Fatalf("expected pass, got %v", err)
				}
				if rec.Code != http.StatusOK {
					t.Fatalf("expected 200, got %d", rec.Code)
				}
				return
			}

			he, ok := err.(*echo.HTTPError)
			if !ok || he.Code != tc.wantCode {
				t.Fatalf("expected %d HTTPError, got %v", tc.wantCode, err)
			}
		})
	}
}

func TestRequireAdmin_Message(t *testing.T) {
	c, _ := gateContext(t, &domain.User{ID: "1", Username: "u"})

	err := RequireAdmin()(func(c echo.Context) error { return nil })(c)
	he, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected HTTPError, got %v", err)
	}
	if he.Message != "Admin access required" {
		t.Fatalf("unexpected message: %v", he.Message)
	}
}
