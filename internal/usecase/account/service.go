package account

import (
	"context"
	"fmt"

	"stucode/internal/domain/entity"
	"stucode/internal/repository"

	"github.com/google/uuid"
)

// Service provides account management use cases.
type Service struct {
	Repo repository.AccountRepository
}

// Get retrieves a single account by its ID.
// Returns ErrInvalidAccountID if the ID is not a UUID.
// Returns ErrAccountNotFound if the account does not exist.
func (s *Service) Get(ctx context.Context, id string) (*entity.Account, error) {
	if uuid.Validate(id) != nil {
		return nil, ErrInvalidAccountID
	}

	found, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get account: %w", err)
	}
	if found == nil {
		return nil, ErrAccountNotFound
	}
	return found, nil
}

// Delete removes an account by its ID. The owned user, their articles and
// their likes are removed by the cascading foreign keys.
// Returns ErrInvalidAccountID if the ID is not a UUID.
// Returns ErrAccountNotFound if the account does not exist.
func (s *Service) Delete(ctx context.Context, id string) error {
	if uuid.Validate(id) != nil {
		return ErrInvalidAccountID
	}

	found, err := s.Repo.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("get account: %w", err)
	}
	if found == nil {
		return ErrAccountNotFound
	}

	if err := s.Repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete account: %w", err)
	}
	return nil
}
