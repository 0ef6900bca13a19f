package article

import (
	"context"
	"fmt"

	"stucode/internal/domain/entity"
	"stucode/internal/repository"

	"github.com/google/uuid"
)

// CreateInput represents the input parameters for creating a new article.
type CreateInput struct {
	UserID  string
	Image   string
	Title   string
	Content string
}

// UpdateInput represents the input parameters for updating an existing article.
// Fields with nil values will not be updated.
type UpdateInput struct {
	ID      string
	Image   *string
	Title   *string
	Content *string
}

// Service provides article management use cases.
// It handles business logic for article operations and delegates persistence to the repository.
type Service struct {
	Repo  repository.ArticleRepository
	Users repository.UserRepository
}

// Create creates a new article owned by the given user.
// Returns ErrUserNotFound when the owner does not exist, so a bad userId can
// never leave an orphaned article row.
func (s *Service) Create(ctx context.Context, in CreateInput) (*entity.Article, error) {
	if uuid.Validate(in.UserID) != nil {
		return nil, ErrUserNotFound
	}
	if in.Title == "" {
		return nil, &entity.ValidationError{Field: "title", Message: "is required"}
	}

	owner, err := s.Users.Get(ctx, in.UserID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if owner == nil {
		return nil, ErrUserNotFound
	}

	created, err := s.Repo.Create(ctx, &entity.Article{
		UserID:  in.UserID,
		Image:   in.Image,
		Title:   in.Title,
		Content: in.Content,
	})
	if err != nil {
		return nil, fmt.Errorf("create article: %w", err)
	}
	return created, nil
}

// Get retrieves a single article by its ID.
// Returns ErrInvalidArticleID if the ID is not a UUID.
// Returns ErrArticleNotFound if the article does not exist.
func (s *Service) Get(ctx context.Context, id string) (*entity.Article, error) {
	if uuid.Validate(id) != nil {
		return nil, ErrInvalidArticleID
	}

	found, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	if found == nil {
		return nil, ErrArticleNotFound
	}
	return found, nil
}

// List retrieves one page of articles matching the filters, along with the
// total count of articles matching the search term and owner filter.
func (s *Service) List(ctx context.Context, filters repository.ArticleListFilters) ([]*entity.Article, int64, error) {
	total, err := s.Repo.Count(ctx, filters)
	if err != nil {
		return nil, 0, fmt.Errorf("count articles: %w", err)
	}

	articles, err := s.Repo.List(ctx, filters)
	if err != nil {
		return nil, 0, fmt.Errorf("list articles: %w", err)
	}
	return articles, total, nil
}

// Update applies a partial patch to an existing article and returns the result.
// Returns ErrArticleNotFound if the article does not exist.
func (s *Service) Update(ctx context.Context, in UpdateInput) (*entity.Article, error) {
	if uuid.Validate(in.ID) != nil {
		return nil, ErrInvalidArticleID
	}

	found, err := s.Repo.Get(ctx, in.ID)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	if found == nil {
		return nil, ErrArticleNotFound
	}

	if in.Image != nil {
		found.Image = *in.Image
	}
	if in.Title != nil {
		found.Title = *in.Title
	}
	if in.Content != nil {
		found.Content = *in.Content
	}

	if err := s.Repo.Update(ctx, found); err != nil {
		return nil, fmt.Errorf("update article: %w", err)
	}
	return found, nil
}

// Delete removes an article by its ID.
// Returns ErrInvalidArticleID if the ID is not a UUID.
// Returns ErrArticleNotFound if the article does not exist.
func (s *Service) Delete(ctx context.Context, id string) error {
	if uuid.Validate(id) != nil {
		return ErrInvalidArticleID
	}

	found, err := s.Repo.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("get article: %w", err)
	}
	if found == nil {
		return ErrArticleNotFound
	}

	if err := s.Repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete article: %w", err)
	}
	return nil
}
