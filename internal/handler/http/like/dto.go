// Package like provides the HTTP handlers for the like resource.
package like

import (
	"time"

	"stucode/internal/domain/entity"
)

// DTO is the client-facing representation of a like.
type DTO struct {
	ArticleID string    `json:"articleId"`
	UserID    string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// FromEntity converts a like entity into its client-facing representation.
func FromEntity(e *entity.Like) DTO {
	return DTO{
		ArticleID: e.ArticleID,
		UserID:    e.UserID,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}
