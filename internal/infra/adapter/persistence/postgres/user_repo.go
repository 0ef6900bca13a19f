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

type UserRepo struct {
	db           Querier
	queryBuilder *ListQueryBuilder
}

func NewUserRepo(db Querier) repository.UserRepository {
	return &UserRepo{
		db:           db,
		queryBuilder: NewListQueryBuilder("name", "name", "email"),
	}
}

// CreateWithAccount inserts the account and the user inside one transaction.
// If the email is already taken the unique index rejects the insert and the
// whole transaction rolls back, leaving no orphaned account behind.
func (repo *UserRepo) CreateWithAccount(ctx context.Context, user *entity.User) (*entity.User, error) {
	tx, err := repo.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("CreateWithAccount: BeginTx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now().UTC()
	accountID := uuid.NewString()

	const accountQuery = `
INSERT INTO accounts
	   (id, created_at, updated_at, enabled)
VALUES ($1, $2, $3, $4)`
	if _, err := tx.ExecContext(ctx, accountQuery, accountID, now, now, true); err != nil {
		return nil, fmt.Errorf("CreateWithAccount: insert account: %w", err)
	}

	created := &entity.User{
		ID:        uuid.NewString(),
		AccountID: accountID,
		Name:      user.Name,
		Email:     user.Email,
		Password:  user.Password,
		Logo:      user.Logo,
		CreatedAt: now,
		UpdatedAt: now,
	}

	const userQuery = `
INSERT INTO users
	   (id, created_at, updated_at, account_id, name, email, password, logo)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	if _, err := tx.ExecContext(ctx, userQuery,
		created.ID, created.CreatedAt, created.UpdatedAt, created.AccountID,
		created.Name, created.Email, created.Password, created.Logo,
	); err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("CreateWithAccount: %w", repository.ErrDuplicate)
		}
		return nil, fmt.Errorf("CreateWithAccount: insert user: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("CreateWithAccount: Commit: %w", err)
	}
	return created, nil
}

func (repo *UserRepo) Get(ctx context.Context, id string) (*entity.User, error) {
	const query = `
SELECT id, account_id, name, email, password, logo, created_at, updated_at
FROM users
WHERE id = $1
LIMIT 1`
	var user entity.User
	err := repo.db.QueryRowContext(ctx, query, id).
		Scan(&user.ID, &user.AccountID, &user.Name, &user.Email,
			&user.Password, &user.Logo, &user.CreatedAt, &user.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return &user, nil
}

func (repo *UserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	const query = `
SELECT id, account_id, name, email, password, logo, created_at, updated_at
FROM users
WHERE email = $1
LIMIT 1`
	var user entity.User
	err := repo.db.QueryRowContext(ctx, query, email).
		Scan(&user.ID, &user.AccountID, &user.Name, &user.Email,
			&user.Password, &user.Logo, &user.CreatedAt, &user.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("GetByEmail: %w", err)
	}
	return &user, nil
}

func (repo *UserRepo) List(ctx context.Context, filters repository.ListFilters) ([]*entity.User, error) {
	whereClause, args := repo.queryBuilder.BuildWhereClause(filters, nil, nil)
	orderClause := repo.queryBuilder.BuildOrderClause(filters)
	limitClause, args := repo.queryBuilder.BuildLimitClause(filters, args)

	query := fmt.Sprintf(`
SELECT id, account_id, name, email, password, logo, created_at, updated_at
FROM users
%s
%s
%s`, whereClause, orderClause, limitClause)

	rows, err := repo.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	defer func() { _ = rows.Close() }()

	users := make([]*entity.User, 0, filters.Limit)
	for rows.Next() {
		var user entity.User
		if err := rows.Scan(&user.ID, &user.AccountID, &user.Name, &user.Email,
			&user.Password, &user.Logo, &user.CreatedAt, &user.UpdatedAt); err != nil {
			return nil, fmt.Errorf("List: Scan: %w", err)
		}
		users = append(users, &user)
	}
	return users, rows.Err()
}

func (repo *UserRepo) Count(ctx context.Context, filters repository.ListFilters) (int64, error) {
	whereClause, args := repo.queryBuilder.BuildWhereClause(filters, nil, nil)
	query := "SELECT COUNT(*) FROM users " + whereClause

	var count int64
	if err := repo.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("Count: %w", err)
	}
	return count, nil
}

func (repo *UserRepo) Update(ctx context.Context, user *entity.User) error {
	const query = `
UPDATE users SET
       name       = $1,
       email      = $2,
       password   = $3,
       logo       = $4,
       updated_at = $5
WHERE id = $6`
	res, err := repo.db.ExecContext(ctx, query,
		user.Name, user.Email, user.Password, user.Logo, time.Now().UTC(), user.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("Update: %w", repository.ErrDuplicate)
		}
		return fmt.Errorf("Update: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("Update: no rows affected")
	}
	return nil
}

func (repo *UserRepo) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM users WHERE id = $1`
	res, err := repo.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("Delete: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("Delete: no rows affected")
	}
	return nil
}
