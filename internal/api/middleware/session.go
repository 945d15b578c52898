package middleware

import (
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/alnoor-academy/institute-api/internal/core/domain"
	"github.com/alnoor-academy/institute-api/internal/core/ports"
)

// SessionCookieName is the cookie carrying the opaque session id.
const SessionCookieName = "institute_session"

// userContextKey is where the resolved account lands in the echo context.
const userContextKey = "auth_user"

// ResolveSession reads the session cookie and, when it resolves to a live
// session, stashes the account in the request context. It never rejects a
// request on its own: anonymous and stale-cookie requests pass through
// unauthenticated, and the gates below decide what requires an identity.
func ResolveSession(auth ports.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(SessionCookieName)
			if err != nil || cookie.Value == "" {
				return next(c)
			}

			user, err := auth.UserBySession(c.Request().Context(), cookie.Value)
			if err != nil {
				if errors.Is(err, domain.ErrSessionNotFound) || errors.Is(err, domain.ErrUserNotFound) {
					return next(c)
				}
				return err
			}

			c.Set(userContextKey, user)
			return next(c)
		}
	}
}

// CurrentUser returns the account resolved by ResolveSession, or nil for
// anonymous requests.
func CurrentUser(c echo.Context) *domain.User {
	user, _ := c.Get(userContextKey).(*domain.User)
	return user
}
