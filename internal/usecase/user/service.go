package user

import (
	"context"
	"errors"
	"fmt"

	"stucode/internal/domain/entity"
	"stucode/internal/repository"

	"github.com/google/uuid"
)

// PasswordHasher hashes plaintext passwords for storage.
type PasswordHasher interface {
	Hash(password string) (string, error)
}

// UpdateInput represents the input parameters for updating an existing user.
// Fields with nil values will not be updated.
type UpdateInput struct {
	ID       string
	Name     *string
	Email    *string
	Password *string
	Logo     *string
}

// Service provides user management use cases.
// It handles business logic for user operations and delegates persistence to the repository.
type Service struct {
	Repo   repository.UserRepository
	Hasher PasswordHasher
}

// Get retrieves a single user by their ID.
// Returns ErrInvalidUserID if the ID is not a UUID.
// Returns ErrUserNotFound if the user does not exist.
func (s *Service) Get(ctx context.Context, id string) (*entity.User, error) {
	if uuid.Validate(id) != nil {
		return nil, ErrInvalidUserID
	}

	found, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if found == nil {
		return nil, ErrUserNotFound
	}
	return found, nil
}

// List retrieves one page of users matching the filters, along with the total
// count of users matching the search term.
func (s *Service) List(ctx context.Context, filters repository.ListFilters) ([]*entity.User, int64, error) {
	total, err := s.Repo.Count(ctx, filters)
	if err != nil {
		return nil, 0, fmt.Errorf("count users: %w", err)
	}

	users, err := s.Repo.List(ctx, filters)
	if err != nil {
		return nil, 0, fmt.Errorf("list users: %w", err)
	}
	return users, total, nil
}

// Update applies a partial patch to an existing user.
// A changed email is validated and checked for uniqueness; a changed password
// is re-hashed before storage. Returns the updated user.
func (s *Service) Update(ctx context.Context, in UpdateInput) (*entity.User, error) {
	if uuid.Validate(in.ID) != nil {
		return nil, ErrInvalidUserID
	}

	found, err := s.Repo.Get(ctx, in.ID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if found == nil {
		return nil, ErrUserNotFound
	}

	if in.Name != nil {
		found.Name = *in.Name
	}
	if in.Email != nil && *in.Email != found.Email {
		if err := entity.ValidateEmail(*in.Email); err != nil {
			return nil, fmt.Errorf("validate email: %w", err)
		}
		existing, err := s.Repo.GetByEmail(ctx, *in.Email)
		if err != nil {
			return nil, fmt.Errorf("get user by email: %w", err)
		}
		if existing != nil {
			return nil, ErrEmailExists
		}
		found.Email = *in.Email
	}
	if in.Password != nil {
		hashed, err := s.Hasher.Hash(*in.Password)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		found.Password = hashed
	}
	if in.Logo != nil {
		found.Logo = *in.Logo
	}

	if err := s.Repo.Update(ctx, found); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrEmailExists
		}
		return nil, fmt.Errorf("update user: %w", err)
	}
	return found, nil
}

// Delete removes a user by their ID.
// Returns ErrInvalidUserID if the ID is not a UUID.
// Returns ErrUserNotFound if the user does not exist.
func (s *Service) Delete(ctx context.Context, id string) error {
	if uuid.Validate(id) != nil {
		return ErrInvalidUserID
	}

	found, err := s.Repo.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("get user: %w", err)
	}
	if found == nil {
		return ErrUserNotFound
	}

	if err := s.Repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}
