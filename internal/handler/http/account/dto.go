// Package account provides the HTTP handlers for the account resource.
package account

import (
	"time"

	"stucode/internal/domain/entity"
)

// DTO is the client-facing representation of an account.
type DTO struct {
	ID        string    `json:"id"`
	Enabled   bool      `json:"enabled"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// FromEntity converts an account entity into its client-facing representation.
func FromEntity(e *entity.Account) DTO {
	return DTO{
		ID:        e.ID,
		Enabled:   e.Enabled,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}
