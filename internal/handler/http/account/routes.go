package account

import (
	"net/http"

	accUC "stucode/internal/usecase/account"
)

// Register registers all account-related HTTP handlers with the given mux.
func Register(mux *http.ServeMux, svc *accUC.Service) {
	mux.Handle("GET    /v1/account/{id}", GetHandler{svc})
	mux.Handle("DELETE /v1/account/{id}", DeleteHandler{svc})
}
