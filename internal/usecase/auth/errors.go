// Package auth provides the registration and login use cases.
// It owns the email/password checks and delegates hashing and token signing
// to the credentials service.
package auth

import "errors"

// Sentinel errors for authentication use case operations.
var (
	// ErrEmailFormat indicates that the submitted email address is malformed.
	ErrEmailFormat = errors.New("email format not valid")

	// ErrEmailExists indicates that a user with the email is already registered.
	ErrEmailExists = errors.New("email already exists")

	// ErrUserNotFound indicates that no user owns the submitted email.
	ErrUserNotFound = errors.New("user not found")

	// ErrPasswordMismatch indicates that the password does not match the stored hash.
	ErrPasswordMismatch = errors.New("password not valid")

	// ErrPasswordRequired indicates that the password field was empty.
	ErrPasswordRequired = errors.New("password required")
)
