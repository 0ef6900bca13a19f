package repository

import (
	"context"

	"stucode/internal/domain/entity"
)

type LikeRepository interface {
	// Create inserts a like row. Returns ErrDuplicate from the persistence
	// layer when the (articleID, userID) pair already exists.
	Create(ctx context.Context, like *entity.Like) (*entity.Like, error)
	// ListByArticle returns the likes for an article, newest update first
	// unless the filters request another order.
	ListByArticle(ctx context.Context, articleID string, filters ListFilters) ([]*entity.Like, error)
	CountByArticle(ctx context.Context, articleID string) (int64, error)
	// ListByUser returns the likes placed by a user.
	ListByUser(ctx context.Context, userID string, filters ListFilters) ([]*entity.Like, error)
	CountByUser(ctx context.Context, userID string) (int64, error)
	// Delete removes the like identified by the (articleID, userID) pair.
	Delete(ctx context.Context, articleID, userID string) error
}
