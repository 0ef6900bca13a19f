package postgres

import (
	"context"
	"fmt"
	"time"

	"stucode/internal/domain/entity"
	"stucode/internal/repository"
)

type LikeRepo struct {
	db           Querier
	queryBuilder *ListQueryBuilder
}

func NewLikeRepo(db Querier) repository.LikeRepository {
	return &LikeRepo{
		db: db,
		// Likes have no text columns to search; only ordering applies.
		queryBuilder: NewListQueryBuilder("updated_at"),
	}
}

func (repo *LikeRepo) Create(ctx context.Context, like *entity.Like) (*entity.Like, error) {
	now := time.Now().UTC()
	created := &entity.Like{
		ArticleID: like.ArticleID,
		UserID:    like.UserID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	const query = `
INSERT INTO likes
	   (article_id, user_id, created_at, updated_at)
VALUES ($1, $2, $3, $4)`
	_, err := repo.db.ExecContext(ctx, query,
		created.ArticleID, created.UserID, created.CreatedAt, created.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("Create: %w", repository.ErrDuplicate)
		}
		return nil, fmt.Errorf("Create: %w", err)
	}
	return created, nil
}

func (repo *LikeRepo) ListByArticle(ctx context.Context, articleID string, filters repository.ListFilters) ([]*entity.Like, error) {
	return repo.list(ctx, "article_id", articleID, filters)
}

func (repo *LikeRepo) CountByArticle(ctx context.Context, articleID string) (int64, error) {
	const query = `SELECT COUNT(*) FROM likes WHERE article_id = $1`
	var count int64
	if err := repo.db.QueryRowContext(ctx, query, articleID).Scan(&count); err != nil {
		return 0, fmt.Errorf("CountByArticle: %w", err)
	}
	return count, nil
}

func (repo *LikeRepo) ListByUser(ctx context.Context, userID string, filters repository.ListFilters) ([]*entity.Like, error) {
	return repo.list(ctx, "user_id", userID, filters)
}

func (repo *LikeRepo) CountByUser(ctx context.Context, userID string) (int64, error) {
	const query = `SELECT COUNT(*) FROM likes WHERE user_id = $1`
	var count int64
	if err := repo.db.QueryRowContext(ctx, query, userID).Scan(&count); err != nil {
		return 0, fmt.Errorf("CountByUser: %w", err)
	}
	return count, nil
}

func (repo *LikeRepo) Delete(ctx context.Context, articleID, userID string) error {
	const query = `DELETE FROM likes WHERE article_id = $1 AND user_id = $2`
	res, err := repo.db.ExecContext(ctx, query, articleID, userID)
	if err != nil {
		return fmt.Errorf("Delete: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("Delete: %w", repository.ErrNotFound)
	}
	return nil
}

func (repo *LikeRepo) list(ctx context.Context, column, id string, filters repository.ListFilters) ([]*entity.Like, error) {
	args := []interface{}{id}
	orderClause := repo.queryBuilder.BuildOrderClause(filters)
	limitClause, args := repo.queryBuilder.BuildLimitClause(filters, args)

	query := fmt.Sprintf(`
SELECT article_id, user_id, created_at, updated_at
FROM likes
WHERE %s = $1
%s
%s`, column, orderClause, limitClause)

	rows, err := repo.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list: %w", err)
	}
	defer func() { _ = rows.Close() }()

	likes := make([]*entity.Like, 0, filters.Limit)
	for rows.Next() {
		var like entity.Like
		if err := rows.Scan(&like.ArticleID, &like.UserID, &like.CreatedAt, &like.UpdatedAt); err != nil {
			return nil, fmt.Errorf("list: Scan: %w", err)
		}
		likes = append(likes, &like)
	}
	return likes, rows.Err()
}
