package repository

import (
	"context"

	"stucode/internal/domain/entity"
)

// ArticleListFilters extends the common filters with an optional owner filter.
type ArticleListFilters struct {
	ListFilters
	UserID string
}

type ArticleRepository interface {
	Create(ctx context.Context, article *entity.Article) (*entity.Article, error)
	// Get returns the article with the given id, or (nil, nil) if absent.
	Get(ctx context.Context, id string) (*entity.Article, error)
	// List returns one page of articles matching the filters, ordered by title.
	List(ctx context.Context, filters ArticleListFilters) ([]*entity.Article, error)
	// Count returns the total number of articles matching the filters.
	Count(ctx context.Context, filters ArticleListFilters) (int64, error)
	Update(ctx context.Context, article *entity.Article) error
	Delete(ctx context.Context, id string) error
}
