package entity

import "time"

// User represents a registered user profile.
// The Password field holds the bcrypt hash, never the plaintext, and is
// excluded from every client-facing representation.
type User struct {
	ID        string
	AccountID string
	Name      string
	Email     string
	Password  string
	Logo      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
