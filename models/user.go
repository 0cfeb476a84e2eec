package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents an account entity used for authentication and profile data.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the opaque unique identifier of the user.
	// Generated server-side at registration time.
	UserID uuid.UUID `json:"id"`

	// Username is the globally unique account name.
	// Usable as a login identifier interchangeably with Email.
	Username string `json:"username"`

	// Email is the globally unique contact address of the account.
	// Usable as a login identifier interchangeably with Username.
	Email string `json:"email"`

	// Password stores the bcrypt hash of the user's password.
	// This value MUST be a hash, never plaintext, and is excluded from
	// JSON so it cannot leak into any response body.
	Password string `json:"-"`

	// Avatar is the fully-qualified public URL of the user's avatar
	// as returned by the media host.
	Avatar string `json:"avatar"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is the timestamp of the last mutation of the record.
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Sanitized returns a copy of the user with the credential field cleared.
// Handlers respond with sanitized records only.
func (u User) Sanitized() User {
	u.Password = ""
	return u
}
