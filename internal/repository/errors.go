package repository

import "errors"

var (
	// ErrDuplicate is returned by Create operations when an insert violates a
	// unique constraint, such as a taken email or an existing like pair.
	ErrDuplicate = errors.New("duplicate row")

	// ErrNotFound is returned by keyed Delete operations when no row matched.
	ErrNotFound = errors.New("row not found")
)
