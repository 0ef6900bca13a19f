package auth

import (
	"context"
	"errors"
	"fmt"

	"stucode/internal/domain/entity"
	"stucode/internal/repository"
	"stucode/internal/service/credentials"
)

// RegisterInput represents the input parameters for registering a new user.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Logo     string
}

// LoginInput represents the credentials submitted at login.
type LoginInput struct {
	Email    string
	Password string
}

// CredentialHasher hashes and verifies passwords.
type CredentialHasher interface {
	Hash(password string) (string, error)
	Compare(hashed, password string) error
}

// TokenSigner issues signed bearer tokens for an authenticated identity.
type TokenSigner interface {
	Sign(identity credentials.Identity) (string, error)
}

// Service provides the registration and login use cases.
type Service struct {
	Users  repository.UserRepository
	Hasher CredentialHasher
	Tokens TokenSigner
}

// Register creates a new account and user for the submitted credentials.
// The account row and the user row are written in a single transaction.
// Returns ErrEmailFormat for a malformed email and ErrEmailExists when the
// address is already registered. The returned user carries the password hash;
// the transport layer must strip it.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*entity.User, error) {
	if err := entity.ValidateEmail(in.Email); err != nil {
		return nil, ErrEmailFormat
	}
	if in.Password == "" {
		return nil, ErrPasswordRequired
	}

	existing, err := s.Users.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailExists
	}

	hashed, err := s.Hasher.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	created, err := s.Users.CreateWithAccount(ctx, &entity.User{
		Name:     in.Name,
		Email:    in.Email,
		Password: hashed,
		Logo:     in.Logo,
	})
	if err != nil {
		// A concurrent registration can slip past the lookup above; the
		// unique index is the authority.
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrEmailExists
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return created, nil
}

// Login authenticates the credentials and issues a signed bearer token.
// Returns ErrEmailFormat for a malformed email, ErrUserNotFound for an
// unknown address and ErrPasswordMismatch for a wrong password.
func (s *Service) Login(ctx context.Context, in LoginInput) (string, error) {
	if err := entity.ValidateEmail(in.Email); err != nil {
		return "", ErrEmailFormat
	}
	if in.Password == "" {
		return "", ErrPasswordRequired
	}

	found, err := s.Users.GetByEmail(ctx, in.Email)
	if err != nil {
		return "", fmt.Errorf("get user by email: %w", err)
	}
	if found == nil {
		return "", ErrUserNotFound
	}

	if err := s.Hasher.Compare(found.Password, in.Password); err != nil {
		if errors.Is(err, credentials.ErrPasswordMismatch) {
			return "", ErrPasswordMismatch
		}
		return "", fmt.Errorf("compare passwords: %w", err)
	}

	token, err := s.Tokens.Sign(credentials.Identity{
		UserID:    found.ID,
		AccountID: found.AccountID,
		Email:     found.Email,
		Name:      found.Name,
	})
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return token, nil
}
