package models

import "time"

// User carries the profile fields the backend exposes for the signed-in user.
type User struct {
	Username string `json:"username"`
	Email    string `json:"email" validate:"required,email"`
	Mobile   string `json:"mobile"`
}

// LoginResult is the payload returned by a successful login.
type LoginResult struct {
	Token   string `json:"token"`
	Message string `json:"message"`
}

// Session is the client-side view of an authenticated session, derived from
// the token returned at login.
type Session struct {
	Token     string
	Username  string
	ExpiresAt time.Time
}

// Expired reports whether the session's token has passed its expiry.
func (s Session) Expired() bool {
	return !s.ExpiresAt.IsZero() && time.Now().After(s.ExpiresAt)
}
