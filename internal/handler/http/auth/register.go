package auth

import (
	"encoding/json"
	"errors"
	"net/http"

	handlerhttp "stucode/internal/handler/http"
	"stucode/internal/handler/http/respond"
	"stucode/internal/handler/http/user"
	authUC "stucode/internal/usecase/auth"
)

type registerRequest struct {
	Name     string `json:"name" example:"test"`
	Email    string `json:"email" example:"test@test.com"`
	Password string `json:"password" example:"test"`
	Logo     string `json:"logo,omitempty"`
}

type RegisterHandler struct{ Svc *authUC.Service }

// ServeHTTP registers a new user.
// @Summary      Register a new user
// @Description  Creates an account and a user profile for the submitted credentials
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body registerRequest true "Registration data"
// @Success      201 {object} respond.Envelope "Created user (password stripped)"
// @Failure      400 {object} respond.Envelope "Malformed body or invalid email"
// @Failure      409 {object} respond.Envelope "Email already registered"
// @Router       /v1/user/register [post]
func (h RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.BadRequest(w, "invalid request body")
		return
	}

	created, err := h.Svc.Register(r.Context(), authUC.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Logo:     req.Logo,
	})
	if err != nil {
		handlerhttp.RecordRegistration(false)
		switch {
		case errors.Is(err, authUC.ErrEmailFormat):
			respond.BadRequest(w, respond.MsgEmailFormatNotValid)
		case errors.Is(err, authUC.ErrPasswordRequired):
			respond.BadRequest(w, respond.MsgPasswordNotValid)
		case errors.Is(err, authUC.ErrEmailExists):
			respond.Conflict(w, respond.MsgEmailAlreadyExists)
		default:
			respond.Error(w, "auth.register", err)
		}
		return
	}

	handlerhttp.RecordRegistration(true)
	respond.Created(w, user.FromEntity(created))
}
