package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"stucode/internal/domain/entity"
	"stucode/internal/repository"
)

type AccountRepo struct {
	db Querier
}

func NewAccountRepo(db Querier) repository.AccountRepository {
	return &AccountRepo{db: db}
}

func (repo *AccountRepo) Get(ctx context.Context, id string) (*entity.Account, error) {
	const query = `
SELECT id, created_at, updated_at, enabled
FROM accounts
WHERE id = $1
LIMIT 1`
	var account entity.Account
	err := repo.db.QueryRowContext(ctx, query, id).
		Scan(&account.ID, &account.CreatedAt, &account.UpdatedAt, &account.Enabled)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return &account, nil
}

// Delete removes the account row. The users foreign key cascades, taking the
// user and in turn their articles and likes along.
func (repo *AccountRepo) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM accounts WHERE id = $1`
	res, err := repo.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("Delete: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("Delete: no rows affected")
	}
	return nil
}
