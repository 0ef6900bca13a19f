package user

import (
	"errors"
	"net/http"

	"stucode/internal/handler/http/pathutil"
	"stucode/internal/handler/http/respond"
	userUC "stucode/internal/usecase/user"
)

type DeleteHandler struct{ Svc *userUC.Service }

// ServeHTTP deletes a user.
// @Summary      Delete a user
// @Description  Removes the user; their articles and likes are removed with them
// @Tags         users
// @Security     BearerAuth
// @Produce      json
// @Param        id path string true "User ID (UUID)"
// @Success      200 {object} respond.Envelope
// @Failure      401 {object} respond.Envelope "Missing or invalid bearer token"
// @Failure      404 {object} respond.Envelope "User not found"
// @Router       /v1/user/{id} [delete]
func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.UUID(r, "id")
	if err != nil {
		respond.NotFound(w, respond.MsgUserNotFound)
		return
	}

	if err := h.Svc.Delete(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, userUC.ErrUserNotFound), errors.Is(err, userUC.ErrInvalidUserID):
			respond.NotFound(w, respond.MsgUserNotFound)
		default:
			respond.Error(w, "user.delete", err)
		}
		return
	}

	respond.OK(w, nil, nil)
}
