package user

import (
	"encoding/json"
	"errors"
	"net/http"

	"stucode/internal/domain/entity"
	"stucode/internal/handler/http/pathutil"
	"stucode/internal/handler/http/respond"
	userUC "stucode/internal/usecase/user"
)

type updateRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
	Logo     *string `json:"logo"`
}

type UpdateHandler struct{ Svc *userUC.Service }

// ServeHTTP applies a partial patch to a user.
// @Summary      Update a user
// @Description  Updates the provided fields; omitted fields are left unchanged
// @Tags         users
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id path string true "User ID (UUID)"
// @Param        request body updateRequest true "Fields to update"
// @Success      200 {object} respond.Envelope "Updated user"
// @Failure      400 {object} respond.Envelope "Malformed body or invalid email"
// @Failure      404 {object} respond.Envelope "User not found"
// @Failure      409 {object} respond.Envelope "Email already in use"
// @Router       /v1/user/{id} [put]
func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.UUID(r, "id")
	if err != nil {
		respond.NotFound(w, respond.MsgUserNotFound)
		return
	}

	var req updateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.BadRequest(w, "invalid request body")
		return
	}

	updated, err := h.Svc.Update(r.Context(), userUC.UpdateInput{
		ID:       id,
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Logo:     req.Logo,
	})
	if err != nil {
		var vErr *entity.ValidationError
		switch {
		case errors.Is(err, userUC.ErrUserNotFound), errors.Is(err, userUC.ErrInvalidUserID):
			respond.NotFound(w, respond.MsgUserNotFound)
		case errors.Is(err, userUC.ErrEmailExists):
			respond.Conflict(w, respond.MsgEmailAlreadyExists)
		case errors.As(err, &vErr):
			respond.BadRequest(w, respond.MsgEmailFormatNotValid)
		default:
			respond.Error(w, "user.update", err)
		}
		return
	}

	respond.OK(w, FromEntity(updated), nil)
}
