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

type ListByUserHandler struct{ Svc *likeUC.Service }

// ServeHTTP lists the likes a user placed.
// @Summary      List likes by a user
// @Description  Returns one page of the user's likes with the total count
// @Tags         likes
// @Produce      json
// @Param        userId path string true "User ID (UUID)"
// @Param        page query int false "0-based page number" default(0)
// @Param        limit query int false "Items per page" default(20)
// @Param        orderBy query string false "Sort order" Enums(a-z, z-a, updated-at-asc, updated-at-desc)
// @Success      200 {object} respond.Envelope "Likes with total count"
// @Failure      404 {object} respond.Envelope "User not found"
// @Router       /v1/like/user/{userId} [get]
func (h ListByUserHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	userID, err := pathutil.UUID(r, "userId")
	if err != nil {
		respond.NotFound(w, respond.MsgUserNotFound)
		return
	}

	params, err := pagination.ParseQueryParams(r, pagination.LoadFromEnv(), listOrders)
	if err != nil {
		respond.BadRequest(w, err.Error())
		return
	}

	likes, total, err := h.Svc.ListByUser(r.Context(), userID, repository.ListFilters{
		Page:    params.Page,
		Limit:   params.Limit,
		OrderBy: params.OrderBy,
	})
	if err != nil {
		switch {
		case errors.Is(err, likeUC.ErrUserNotFound):
			respond.NotFound(w, respond.MsgUserNotFound)
		default:
			respond.Error(w, "like.listByUser", err)
		}
		return
	}

	out := make([]DTO, 0, len(likes))
	for _, e := range likes {
		out = append(out, FromEntity(e))
	}
	respond.OK(w, out, &total)
}
