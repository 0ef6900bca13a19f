// Package like provides use cases for liking and unliking articles.
package like

import "errors"

// Sentinel errors for like use case operations.
var (
	// ErrArticleNotFound indicates that the referenced article does not exist.
	ErrArticleNotFound = errors.New("article not found")

	// ErrUserNotFound indicates that the referenced user does not exist.
	ErrUserNotFound = errors.New("user not found")

	// ErrDuplicateLike indicates that the user already liked the article.
	ErrDuplicateLike = errors.New("article already liked")

	// ErrLikeNotFound indicates that no like exists for the pair.
	ErrLikeNotFound = errors.New("like not found")
)
