// Package article provides the HTTP handlers for the article resource.
package article

import (
	"time"

	"stucode/internal/domain/entity"
)

// DTO is the client-facing representation of an article.
type DTO struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Image     string    `json:"image,omitempty"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// FromEntity converts an article entity into its client-facing representation.
func FromEntity(e *entity.Article) DTO {
	return DTO{
		ID:        e.ID,
		UserID:    e.UserID,
		Image:     e.Image,
		Title:     e.Title,
		Content:   e.Content,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}
