package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"stucode/internal/domain/entity"
	"stucode/internal/repository"

	"github.com/google/uuid"
)

type ArticleRepo struct {
	db           Querier
	queryBuilder *ListQueryBuilder
}

func NewArticleRepo(db Querier) repository.ArticleRepository {
	return &ArticleRepo{
		db:           db,
		queryBuilder: NewListQueryBuilder("title", "title", "content"),
	}
}

func (repo *ArticleRepo) Create(ctx context.Context, article *entity.Article) (*entity.Article, error) {
	now := time.Now().UTC()
	created := &entity.Article{
		ID:        uuid.NewString(),
		UserID:    article.UserID,
		Image:     article.Image,
		Title:     article.Title,
		Content:   article.Content,
		CreatedAt: now,
		UpdatedAt: now,
	}

	const query = `
INSERT INTO articles
	   (id, created_at, updated_at, user_id, image, title, content)
VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := repo.db.ExecContext(ctx, query,
		created.ID, created.CreatedAt, created.UpdatedAt,
		created.UserID, created.Image, created.Title, created.Content,
	)
	if err != nil {
		return nil, fmt.Errorf("Create: %w", err)
	}
	return created, nil
}

func (repo *ArticleRepo) Get(ctx context.Context, id string) (*entity.Article, error) {
	const query = `
SELECT id, user_id, image, title, content, created_at, updated_at
FROM articles
WHERE id = $1
LIMIT 1`
	var article entity.Article
	err := repo.db.QueryRowContext(ctx, query, id).
		Scan(&article.ID, &article.UserID, &article.Image, &article.Title,
			&article.Content, &article.CreatedAt, &article.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return &article, nil
}

func (repo *ArticleRepo) List(ctx context.Context, filters repository.ArticleListFilters) ([]*entity.Article, error) {
	extra, args := repo.ownerCondition(filters)
	whereClause, args := repo.queryBuilder.BuildWhereClause(filters.ListFilters, extra, args)
	orderClause := repo.queryBuilder.BuildOrderClause(filters.ListFilters)
	limitClause, args := repo.queryBuilder.BuildLimitClause(filters.ListFilters, args)

	query := fmt.Sprintf(`
SELECT id, user_id, image, title, content, created_at, updated_at
FROM articles
%s
%s
%s`, whereClause, orderClause, limitClause)

	rows, err := repo.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	defer func() { _ = rows.Close() }()

	articles := make([]*entity.Article, 0, filters.Limit)
	for rows.Next() {
		var article entity.Article
		if err := rows.Scan(&article.ID, &article.UserID, &article.Image,
			&article.Title, &article.Content, &article.CreatedAt, &article.UpdatedAt); err != nil {
			return nil, fmt.Errorf("List: Scan: %w", err)
		}
		articles = append(articles, &article)
	}
	return articles, rows.Err()
}

func (repo *ArticleRepo) Count(ctx context.Context, filters repository.ArticleListFilters) (int64, error) {
	extra, args := repo.ownerCondition(filters)
	whereClause, args := repo.queryBuilder.BuildWhereClause(filters.ListFilters, extra, args)
	query := "SELECT COUNT(*) FROM articles " + whereClause

	var count int64
	if err := repo.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("Count: %w", err)
	}
	return count, nil
}

func (repo *ArticleRepo) Update(ctx context.Context, article *entity.Article) error {
	const query = `
UPDATE articles SET
       image      = $1,
       title      = $2,
       content    = $3,
       updated_at = $4
WHERE id = $5`
	res, err := repo.db.ExecContext(ctx, query,
		article.Image, article.Title, article.Content, time.Now().UTC(), article.ID,
	)
	if err != nil {
		return fmt.Errorf("Update: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("Update: no rows affected")
	}
	return nil
}

func (repo *ArticleRepo) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM articles WHERE id = $1`
	res, err := repo.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("Delete: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("Delete: no rows affected")
	}
	return nil
}

// ownerCondition renders the optional user_id equality filter.
func (repo *ArticleRepo) ownerCondition(filters repository.ArticleListFilters) ([]string, []interface{}) {
	if filters.UserID == "" {
		return nil, nil
	}
	return []string{"user_id = $1"}, []interface{}{filters.UserID}
}
