package repository

import (
	"context"

	"stucode/internal/domain/entity"
)

type UserRepository interface {
	// CreateWithAccount inserts a fresh account row and a user row referencing
	// it inside a single transaction. Both writes commit or roll back together.
	// The returned user carries the generated ids and timestamps.
	CreateWithAccount(ctx context.Context, user *entity.User) (*entity.User, error)
	// Get returns the user with the given id, or (nil, nil) if absent.
	Get(ctx context.Context, id string) (*entity.User, error)
	// GetByEmail returns the user with the given email, or (nil, nil) if absent.
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	// List returns one page of users matching the filters, ordered by name.
	List(ctx context.Context, filters ListFilters) ([]*entity.User, error)
	// Count returns the total number of users matching the filters' Find term.
	Count(ctx context.Context, filters ListFilters) (int64, error)
	Update(ctx context.Context, user *entity.User) error
	Delete(ctx context.Context, id string) error
}
