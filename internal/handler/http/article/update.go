package article

import (
	"encoding/json"
	"errors"
	"net/http"

	"stucode/internal/handler/http/pathutil"
	"stucode/internal/handler/http/respond"
	artUC "stucode/internal/usecase/article"
)

type updateRequest struct {
	Image   *string `json:"image"`
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

type UpdateHandler struct{ Svc *artUC.Service }

// ServeHTTP applies a partial patch to an article.
// @Summary      Update an article
// @Description  Updates the provided fields; omitted fields are left unchanged
// @Tags         articles
// @Accept       json
// @Produce      json
// @Param        id path string true "Article ID (UUID)"
// @Param        request body updateRequest true "Fields to update"
// @Success      200 {object} respond.Envelope "Updated article"
// @Failure      400 {object} respond.Envelope "Malformed body"
// @Failure      404 {object} respond.Envelope "Article not found"
// @Router       /v1/article/{id} [put]
func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.UUID(r, "id")
	if err != nil {
		respond.NotFound(w, respond.MsgArticleNotFound)
		return
	}

	var req updateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.BadRequest(w, "invalid request body")
		return
	}

	updated, err := h.Svc.Update(r.Context(), artUC.UpdateInput{
		ID:      id,
		Image:   req.Image,
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		switch {
		case errors.Is(err, artUC.ErrArticleNotFound), errors.Is(err, artUC.ErrInvalidArticleID):
			respond.NotFound(w, respond.MsgArticleNotFound)
		default:
			respond.Error(w, "article.update", err)
		}
		return
	}

	respond.OK(w, FromEntity(updated), nil)
}
