// Package user provides the HTTP handlers for the user resource.
package user

import (
	"time"

	"stucode/internal/domain/entity"
)

// DTO is the client-facing representation of a user.
// The password hash is deliberately absent: it must never be serialized.
type DTO struct {
	ID        string    `json:"id"`
	AccountID string    `json:"accountId"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Logo      string    `json:"logo,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// FromEntity converts a user entity into its client-facing representation.
func FromEntity(e *entity.User) DTO {
	return DTO{
		ID:        e.ID,
		AccountID: e.AccountID,
		Name:      e.Name,
		Email:     e.Email,
		Logo:      e.Logo,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}
