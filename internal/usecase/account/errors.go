// Package account provides use cases for reading and deleting accounts.
package account

import "errors"

// Sentinel errors for account use case operations.
var (
	// ErrAccountNotFound indicates that the requested account was not found.
	ErrAccountNotFound = errors.New("account not found")

	// ErrInvalidAccountID indicates that the provided account ID is empty or malformed.
	ErrInvalidAccountID = errors.New("invalid account ID")
)
