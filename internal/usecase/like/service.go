package like

import (
	"context"
	"errors"
	"fmt"

	"stucode/internal/domain/entity"
	"stucode/internal/repository"

	"github.com/google/uuid"
)

// Service provides like management use cases.
// Every operation checks the referenced article or user first so a like can
// never point at a row that does not exist.
type Service struct {
	Repo     repository.LikeRepository
	Articles repository.ArticleRepository
	Users    repository.UserRepository
}

// Create records that the user liked the article.
// Returns ErrArticleNotFound or ErrUserNotFound when a reference is missing
// and ErrDuplicateLike when the pair already exists.
func (s *Service) Create(ctx context.Context, articleID, userID string) (*entity.Like, error) {
	if uuid.Validate(articleID) != nil {
		return nil, ErrArticleNotFound
	}
	if uuid.Validate(userID) != nil {
		return nil, ErrUserNotFound
	}

	found, err := s.Articles.Get(ctx, articleID)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	if found == nil {
		return nil, ErrArticleNotFound
	}

	owner, err := s.Users.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if owner == nil {
		return nil, ErrUserNotFound
	}

	created, err := s.Repo.Create(ctx, &entity.Like{ArticleID: articleID, UserID: userID})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrDuplicateLike
		}
		return nil, fmt.Errorf("create like: %w", err)
	}
	return created, nil
}

// ListByArticle retrieves one page of likes for the article along with the
// total count. Returns ErrArticleNotFound when the article does not exist.
func (s *Service) ListByArticle(ctx context.Context, articleID string, filters repository.ListFilters) ([]*entity.Like, int64, error) {
	if uuid.Validate(articleID) != nil {
		return nil, 0, ErrArticleNotFound
	}

	found, err := s.Articles.Get(ctx, articleID)
	if err != nil {
		return nil, 0, fmt.Errorf("get article: %w", err)
	}
	if found == nil {
		return nil, 0, ErrArticleNotFound
	}

	total, err := s.Repo.CountByArticle(ctx, articleID)
	if err != nil {
		return nil, 0, fmt.Errorf("count likes: %w", err)
	}
	likes, err := s.Repo.ListByArticle(ctx, articleID, filters)
	if err != nil {
		return nil, 0, fmt.Errorf("list likes: %w", err)
	}
	return likes, total, nil
}

// ListByUser retrieves one page of the likes a user placed along with the
// total count. Returns ErrUserNotFound when the user does not exist.
func (s *Service) ListByUser(ctx context.Context, userID string, filters repository.ListFilters) ([]*entity.Like, int64, error) {
	if uuid.Validate(userID) != nil {
		return nil, 0, ErrUserNotFound
	}

	owner, err := s.Users.Get(ctx, userID)
	if err != nil {
		return nil, 0, fmt.Errorf("get user: %w", err)
	}
	if owner == nil {
		return nil, 0, ErrUserNotFound
	}

	total, err := s.Repo.CountByUser(ctx, userID)
	if err != nil {
		return nil, 0, fmt.Errorf("count likes: %w", err)
	}
	likes, err := s.Repo.ListByUser(ctx, userID, filters)
	if err != nil {
		return nil, 0, fmt.Errorf("list likes: %w", err)
	}
	return likes, total, nil
}

// Delete removes the like identified by the (articleID, userID) pair.
// Returns ErrArticleNotFound when the article does not exist and
// ErrLikeNotFound when the pair was never liked.
func (s *Service) Delete(ctx context.Context, articleID, userID string) error {
	if uuid.Validate(articleID) != nil {
		return ErrArticleNotFound
	}
	if uuid.Validate(userID) != nil {
		return ErrUserNotFound
	}

	found, err := s.Articles.Get(ctx, articleID)
	if err != nil {
		return fmt.Errorf("get article: %w", err)
	}
	if found == nil {
		return ErrArticleNotFound
	}

	if err := s.Repo.Delete(ctx, articleID, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrLikeNotFound
		}
		return fmt.Errorf("delete like: %w", err)
	}
	return nil
}
