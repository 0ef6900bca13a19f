package article

import (
	"errors"
	"net/http"

	"stucode/internal/handler/http/pathutil"
	"stucode/internal/handler/http/respond"
	artUC "stucode/internal/usecase/article"
)

type GetHandler struct{ Svc *artUC.Service }

// ServeHTTP returns a single article by ID.
// @Summary      Get an article
// @Description  Returns the article with the given ID
// @Tags         articles
// @Produce      json
// @Param        id path string true "Article ID (UUID)"
// @Success      200 {object} respond.Envelope "Article"
// @Failure      404 {object} respond.Envelope "Article not found"
// @Router       /v1/article/{id} [get]
func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.UUID(r, "id")
	if err != nil {
		respond.NotFound(w, respond.MsgArticleNotFound)
		return
	}

	found, err := h.Svc.Get(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, artUC.ErrArticleNotFound), errors.Is(err, artUC.ErrInvalidArticleID):
			respond.NotFound(w, respond.MsgArticleNotFound)
		default:
			respond.Error(w, "article.get", err)
		}
		return
	}

	respond.OK(w, FromEntity(found), nil)
}
