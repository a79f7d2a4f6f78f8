package models

import "time"

// Session associates a server-side token with an authenticated user.
// It lives from login (or signup) until logout or expiry.
type Session struct {
	Token     string    `json:"-"`
	UserID    int       `json:"-"`
	CreatedAt time.Time `json:"-"`
	ExpiresAt time.Time `json:"-"`
}
