// Package pathutil provides helpers for reading identifiers out of URL paths.
package pathutil

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
)

// ErrInvalidID is returned when the ID in the URL path is not a UUID.
var ErrInvalidID = errors.New("invalid id")

// UUID reads the named path parameter from the request and validates that it
// is a well-formed UUID.
//
// Example:
//
//	id, err := pathutil.UUID(r, "id")
func UUID(r *http.Request, name string) (string, error) {
	id := r.PathValue(name)
	if uuid.Validate(id) != nil {
		return "", ErrInvalidID
	}
	return id, nil
}
