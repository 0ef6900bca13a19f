package account

import (
	"errors"
	"net/http"

	"stucode/internal/handler/http/pathutil"
	"stucode/internal/handler/http/respond"
	accUC "stucode/internal/usecase/account"
)

type DeleteHandler struct{ Svc *accUC.Service }

// ServeHTTP deletes an account.
// @Summary      Delete an account
// @Description  Removes the account; its user, articles and likes cascade
// @Tags         accounts
// @Produce      json
// @Param        id path string true "Account ID (UUID)"
// @Success      200 {object} respond.Envelope
// @Failure      404 {object} respond.Envelope "Account not found"
// @Router       /v1/account/{id} [delete]
func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.UUID(r, "id")
	if err != nil {
		respond.NotFound(w, respond.MsgAccountNotFound)
		return
	}

	if err := h.Svc.Delete(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, accUC.ErrAccountNotFound), errors.Is(err, accUC.ErrInvalidAccountID):
			respond.NotFound(w, respond.MsgAccountNotFound)
		default:
			respond.Error(w, "account.delete", err)
		}
		return
	}

	respond.OK(w, nil, nil)
}
