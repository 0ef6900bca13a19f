// Package user provides use cases for managing user profiles.
// It implements business logic for reading, listing, updating and deleting
// users, including validation and interaction with the user repository.
package user

import "errors"

// Sentinel errors for user use case operations.
var (
	// ErrUserNotFound indicates that the requested user was not found.
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidUserID indicates that the provided user ID is empty or malformed.
	ErrInvalidUserID = errors.New("invalid user ID")

	// ErrEmailExists indicates that another user already owns the email address.
	ErrEmailExists = errors.New("email already exists")
)
