// Package article provides use cases for managing articles.
// It implements business logic for creating, updating, deleting, and querying
// articles, including validation and interaction with the article repository.
package article

import "errors"

// Sentinel errors for article use case operations.
var (
	// ErrArticleNotFound indicates that the requested article was not found.
	ErrArticleNotFound = errors.New("article not found")

	// ErrInvalidArticleID indicates that the provided article ID is empty or malformed.
	ErrInvalidArticleID = errors.New("invalid article ID")

	// ErrUserNotFound indicates that the article's owner does not exist.
	// Article creation requires an existing user row so no orphaned articles
	// can be written.
	ErrUserNotFound = errors.New("user not found")
)
