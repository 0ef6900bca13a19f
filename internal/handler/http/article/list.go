package article

import (
	"net/http"

	"stucode/internal/common/pagination"
	handlerhttp "stucode/internal/handler/http"
	"stucode/internal/handler/http/respond"
	"stucode/internal/repository"
	artUC "stucode/internal/usecase/article"

	"github.com/google/uuid"
)

var listOrders = []string{repository.OrderAlphaAsc, repository.OrderAlphaDesc}

type ListHandler struct{ Svc *artUC.Service }

// ServeHTTP lists articles with pagination and search.
// @Summary      List articles
// @Description  Returns one page of articles; find matches title or content case-insensitively
// @Tags         articles
// @Produce      json
// @Param        page query int false "0-based page number" default(0)
// @Param        limit query int false "Items per page" default(20)
// @Param        find query string false "Substring to match against title or content"
// @Param        orderBy query string false "Sort order" Enums(a-z, z-a)
// @Param        userId query string false "Only articles owned by this user"
// @Success      200 {object} respond.Envelope "Articles with total count"
// @Failure      400 {object} respond.Envelope "Invalid query parameters"
// @Router       /v1/article [get]
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	params, err := pagination.ParseQueryParams(r, pagination.LoadFromEnv(), listOrders)
	if err != nil {
		respond.BadRequest(w, err.Error())
		return
	}

	userID := r.URL.Query().Get("userId")
	if userID != "" && uuid.Validate(userID) != nil {
		respond.BadRequest(w, "invalid query parameter: userId must be a UUID")
		return
	}

	articles, total, err := h.Svc.List(r.Context(), repository.ArticleListFilters{
		ListFilters: repository.ListFilters{
			Page:    params.Page,
			Limit:   params.Limit,
			Find:    params.Find,
			OrderBy: params.OrderBy,
		},
		UserID: userID,
	})
	if err != nil {
		respond.Error(w, "article.list", err)
		return
	}

	// An unfiltered count is the table total; piggyback the gauge refresh.
	if params.Find == "" && userID == "" {
		handlerhttp.UpdateArticlesTotal(total)
	}

	out := make([]DTO, 0, len(articles))
	for _, e := range articles {
		out = append(out, FromEntity(e))
	}
	respond.OK(w, out, &total)
}
