package article

import (
	"errors"
	"net/http"

	"stucode/internal/handler/http/pathutil"
	"stucode/internal/handler/http/respond"
	artUC "stucode/internal/usecase/article"
)

type DeleteHandler struct{ Svc *artUC.Service }

// ServeHTTP deletes an article.
// @Summary      Delete an article
// @Description  Removes the article and its likes
// @Tags         articles
// @Produce      json
// @Param        id path string true "Article ID (UUID)"
// @Success      200 {object} respond.Envelope
// @Failure      404 {object} respond.Envelope "Article not found"
// @Router       /v1/article/{id} [delete]
func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.UUID(r, "id")
	if err != nil {
		respond.NotFound(w, respond.MsgArticleNotFound)
		return
	}

	if err := h.Svc.Delete(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, artUC.ErrArticleNotFound), errors.Is(err, artUC.ErrInvalidArticleID):
			respond.NotFound(w, respond.MsgArticleNotFound)
		default:
			respond.Error(w, "article.delete", err)
		}
		return
	}

	respond.OK(w, nil, nil)
}
