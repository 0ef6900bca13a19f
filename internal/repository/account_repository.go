package repository

import (
	"context"

	"stucode/internal/domain/entity"
)

type AccountRepository interface {
	// Get returns the account with the given id, or (nil, nil) if absent.
	Get(ctx context.Context, id string) (*entity.Account, error)
	Delete(ctx context.Context, id string) error
}
