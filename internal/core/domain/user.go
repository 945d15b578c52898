package domain

import "time"

// User models a credential-bearing identity. Public visitors never hold an
// account; accounts exist for back-office access, gated by IsAdmin.
type User struct {
	ID              string    `json:"id"`
	Username        string    `json:"username"`
	Password        string    `json:"-"`
	Email           string    `json:"email,omitempty"`
	FirstName       string    `json:"firstName,omitempty"`
	LastName        string    `json:"lastName,omitempty"`
	ProfileImageURL string    `json:"profileImageUrl,omitempty"`
	IsAdmin         bool      `json:"isAdmin"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}
