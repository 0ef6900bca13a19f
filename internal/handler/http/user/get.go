package user

import (
	"errors"
	"net/http"

	"stucode/internal/handler/http/pathutil"
	"stucode/internal/handler/http/respond"
	userUC "stucode/internal/usecase/user"
)

type GetHandler struct{ Svc *userUC.Service }

// ServeHTTP returns a single user by ID.
// @Summary      Get a user
// @Description  Returns the user with the given ID
// @Tags         users
// @Security     BearerAuth
// @Produce      json
// @Param        id path string true "User ID (UUID)"
// @Success      200 {object} respond.Envelope "User"
// @Failure      401 {object} respond.Envelope "Missing or invalid bearer token"
// @Failure      404 {object} respond.Envelope "User not found"
// @Router       /v1/user/{id} [get]
func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.UUID(r, "id")
	if err != nil {
		respond.NotFound(w, respond.MsgUserNotFound)
		return
	}

	found, err := h.Svc.Get(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, userUC.ErrUserNotFound), errors.Is(err, userUC.ErrInvalidUserID):
			respond.NotFound(w, respond.MsgUserNotFound)
		default:
			respond.Error(w, "user.get", err)
		}
		return
	}

	respond.OK(w, FromEntity(found), nil)
}
