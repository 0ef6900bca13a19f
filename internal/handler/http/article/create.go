package article

import (
	"encoding/json"
	"errors"
	"net/http"

	"stucode/internal/domain/entity"
	"stucode/internal/handler/http/respond"
	artUC "stucode/internal/usecase/article"
)

type createRequest struct {
	UserID  string `json:"userId"`
	Image   string `json:"image,omitempty"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

type CreateHandler struct{ Svc *artUC.Service }

// ServeHTTP creates a new article.
// @Summary      Create an article
// @Description  Creates an article owned by the given user
// @Tags         articles
// @Accept       json
// @Produce      json
// @Param        request body createRequest true "Article data"
// @Success      201 {object} respond.Envelope "Created article"
// @Failure      400 {object} respond.Envelope "Malformed body or missing title"
// @Failure      404 {object} respond.Envelope "Owner user not found"
// @Router       /v1/article [post]
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.BadRequest(w, "invalid request body")
		return
	}

	created, err := h.Svc.Create(r.Context(), artUC.CreateInput{
		UserID:  req.UserID,
		Image:   req.Image,
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		var vErr *entity.ValidationError
		switch {
		case errors.Is(err, artUC.ErrUserNotFound):
			respond.NotFound(w, respond.MsgUserNotFound)
		case errors.As(err, &vErr):
			respond.BadRequest(w, vErr.Error())
		default:
			respond.Error(w, "article.create", err)
		}
		return
	}

	respond.Created(w, FromEntity(created))
}
