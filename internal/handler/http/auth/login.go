package auth

import (
	"encoding/json"
	"errors"
	"net/http"

	handlerhttp "stucode/internal/handler/http"
	"stucode/internal/handler/http/respond"
	authUC "stucode/internal/usecase/auth"
)

type loginRequest struct {
	Email    string `json:"email" example:"test@test.com"`
	Password string `json:"password" example:"test"`
}

type LoginHandler struct{ Svc *authUC.Service }

// ServeHTTP authenticates a user and issues a bearer token.
// @Summary      Log in
// @Description  Verifies the email/password pair and returns a signed bearer token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body loginRequest true "Login credentials"
// @Success      200 {object} respond.Envelope "Signed token in data"
// @Failure      400 {object} respond.Envelope "Invalid email format or wrong password"
// @Failure      404 {object} respond.Envelope "No user with this email"
// @Router       /v1/user/login [post]
func (h LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.BadRequest(w, "invalid request body")
		return
	}

	token, err := h.Svc.Login(r.Context(), authUC.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		handlerhttp.RecordLogin(false)
		switch {
		case errors.Is(err, authUC.ErrEmailFormat):
			respond.BadRequest(w, respond.MsgEmailFormatNotValid)
		case errors.Is(err, authUC.ErrPasswordRequired), errors.Is(err, authUC.ErrPasswordMismatch):
			respond.BadRequest(w, respond.MsgPasswordNotValid)
		case errors.Is(err, authUC.ErrUserNotFound):
			respond.NotFound(w, respond.MsgUserNotFound)
		default:
			respond.Error(w, "auth.login", err)
		}
		return
	}

	handlerhttp.RecordLogin(true)
	respond.OK(w, token, nil)
}
