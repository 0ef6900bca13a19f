package like

import (
	"errors"
	"net/http"

	"stucode/internal/common/pagination"
	"stucode/internal/handler/http/pathutil"
	"stucode/internal/handler/http/respond"
	"stucode/internal/repository"
	likeUC "stucode/internal/usecase/like"
)

var listOrders = []string{
	repository.OrderAlphaAsc,
	repository.OrderAlphaDesc,
	repository.OrderUpdatedAtAsc,
	repository.OrderUpdatedAtDesc,
}

type ListByArticleHandler struct{ Svc *likeUC.Service }

// ServeHTTP lists the likes of an article.
// @Summary      List likes of an article
// @Description  Returns one page of likes for the article with the total count
// @Tags         likes
// @Produce      json
// @Param        articleId path string true "Article ID (UUID)"
// @Param        page query int false "0-based page number" default(0)
// @Param        limit query int false "Items per page" default(20)
// @Param        orderBy query string false "Sort order" Enums(a-z, z-a, updated-at-asc, updated-at-desc)
// @Success      200 {object} respond.Envelope "Likes with total count"
// @Failure      404 {object} respond.Envelope "Article not found"
// @Router       /v1/like/{articleId} [get]
func (h ListByArticleHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	articleID, err := pathutil.UUID(r, "articleId")
	if err != nil {
		respond.NotFound(w, respond.MsgArticleNotFound)
		return
	}

	params, err := pagination.ParseQueryParams(r, pagination.LoadFromEnv(), listOrders)
	if err != nil {
		respond.BadRequest(w, err.Error())
		return
	}

	likes, total, err := h.Svc.ListByArticle(r.Context(), articleID, repository.ListFilters{
		Page:    params.Page,
		Limit:   params.Limit,
		OrderBy: params.OrderBy,
	})
	if err != nil {
		switch {
		case errors.Is(err, likeUC.ErrArticleNotFound):
			respond.NotFound(w, respond.MsgArticleNotFound)
		default:
			respond.Error(w, "like.listByArticle", err)
		}
		return
	}

	out := make([]DTO, 0, len(likes))
	for _, e := range likes {
		out = append(out, FromEntity(e))
	}
	respond.OK(w, out, &total)
}
