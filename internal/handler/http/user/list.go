package user

import (
	"net/http"

	"stucode/internal/common/pagination"
	handlerhttp "stucode/internal/handler/http"
	"stucode/internal/handler/http/respond"
	"stucode/internal/repository"
	userUC "stucode/internal/usecase/user"
)

var listOrders = []string{repository.OrderAlphaAsc, repository.OrderAlphaDesc}

type ListHandler struct{ Svc *userUC.Service }

// ServeHTTP lists users with pagination and search.
// @Summary      List users
// @Description  Returns one page of users; find matches name or email case-insensitively
// @Tags         users
// @Produce      json
// @Param        page query int false "0-based page number" default(0)
// @Param        limit query int false "Items per page" default(20)
// @Param        find query string false "Substring to match against name or email"
// @Param        orderBy query string false "Sort order" Enums(a-z, z-a)
// @Success      200 {object} respond.Envelope "Users with total count"
// @Failure      400 {object} respond.Envelope "Invalid query parameters"
// @Router       /v1/user [get]
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	params, err := pagination.ParseQueryParams(r, pagination.LoadFromEnv(), listOrders)
	if err != nil {
		respond.BadRequest(w, err.Error())
		return
	}

	users, total, err := h.Svc.List(r.Context(), repository.ListFilters{
		Page:    params.Page,
		Limit:   params.Limit,
		Find:    params.Find,
		OrderBy: params.OrderBy,
	})
	if err != nil {
		respond.Error(w, "user.list", err)
		return
	}

	// An unfiltered count is the table total; piggyback the gauge refresh.
	if params.Find == "" {
		handlerhttp.UpdateUsersTotal(total)
	}

	out := make([]DTO, 0, len(users))
	for _, e := range users {
		out = append(out, FromEntity(e))
	}
	respond.OK(w, out, &total)
}
