package user

import (
	"net/http"

	userUC "stucode/internal/usecase/user"
)

// Register registers all user-related HTTP handlers with the given mux.
// Listing is public; reads, updates and deletes of a single user require a
// bearer token via the authz middleware.
func Register(mux *http.ServeMux, svc *userUC.Service, authz func(http.Handler) http.Handler) {
	mux.Handle("GET    /v1/user", ListHandler{svc})
	mux.Handle("GET    /v1/user/{id}", authz(GetHandler{svc}))
	mux.Handle("PUT    /v1/user/{id}", authz(UpdateHandler{svc}))
	mux.Handle("DELETE /v1/user/{id}", authz(DeleteHandler{svc}))
}
