package domain

import "time"

// Session ties an HTTP client to a User for a bounded time. The ID is an
// opaque random value handed to the client as a cookie; everything else
// lives server-side in the session store.
type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the session is past its expiry at the given time.
func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
