package entity

import "time"

// Like is the association row recording that a user liked an article.
// The pair (ArticleID, UserID) is unique.
type Like struct {
	ArticleID string
	UserID    string
	CreatedAt time.Time
	UpdatedAt time.Time
}
