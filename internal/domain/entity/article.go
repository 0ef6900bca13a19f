package entity

import "time"

// Article represents a piece of content published by a user.
// Articles are cascade-deleted with their owning user.
type Article struct {
	ID        string
	UserID    string
	Image     string
	Title     string
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
