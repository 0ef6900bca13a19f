package account

import (
	"errors"
	"net/http"

	"stucode/internal/handler/http/pathutil"
	"stucode/internal/handler/http/respond"
	accUC "stucode/internal/usecase/account"
)

type GetHandler struct{ Svc *accUC.Service }

// ServeHTTP returns a single account by ID.
// @Summary      Get an account
// @Description  Returns the account with the given ID
// @Tags         accounts
// @Produce      json
// @Param        id path string true "Account ID (UUID)"
// @Success      200 {object} respond.Envelope "Account"
// @Failure      404 {object} respond.Envelope "Account not found"
// @Router       /v1/account/{id} [get]
func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.UUID(r, "id")
	if err != nil {
		respond.NotFound(w, respond.MsgAccountNotFound)
		return
	}

	found, err := h.Svc.Get(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, accUC.ErrAccountNotFound), errors.Is(err, accUC.ErrInvalidAccountID):
			respond.NotFound(w, respond.MsgAccountNotFound)
		default:
			respond.Error(w, "account.get", err)
		}
		return
	}

	respond.OK(w, FromEntity(found), nil)
}
