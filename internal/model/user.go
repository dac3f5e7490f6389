package model

import "time"

// User represents a registered account.
// Pure domain model shared across layers; no persistence tags.
// RefreshToken holds the single currently valid refresh token for the user
// (nil when logged out). A new login overwrites it, which revokes every
// session issued before.
type User struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	Password     string     `json:"-"`
	IsAdmin      bool       `json:"isAdmin"`
	RefreshToken *string    `json:"-"`
	CreatedAt    time.Time  `json:"createdAt"`
}

// PublicUser is the shape exposed by list/detail user endpoints.
type PublicUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Public strips credentials and session state from a User.
func (u *User) Public() PublicUser {
	return PublicUser{ID: u.ID, Name: u.Name, Email: u.Email}
}
