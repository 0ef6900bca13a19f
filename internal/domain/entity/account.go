// Package entity defines the core domain entities and validation logic for the application.
// It contains the fundamental business objects such as Account, User, Article and Like,
// along with their validation rules and domain-specific errors.
package entity

import "time"

// Account represents a top-level identity row, distinct from the user profile.
// Each account owns exactly one user in practice; the storage layer models the
// relation as 1:N with the user carrying the foreign key.
type Account struct {
	ID        string
	CreatedAt time.Time
	UpdatedAt time.Time
	Enabled   bool
}
