package article

import (
	"net/http"

	artUC "stucode/internal/usecase/article"
)

// Register registers all article-related HTTP handlers with the given mux.
func Register(mux *http.ServeMux, svc *artUC.Service) {
	mux.Handle("POST   /v1/article", CreateHandler{svc})
	mux.Handle("GET    /v1/article", ListHandler{svc})
	mux.Handle("GET    /v1/article/{id}", GetHandler{svc})
	mux.Handle("PUT    /v1/article/{id}", UpdateHandler{svc})
	mux.Handle("DELETE /v1/article/{id}", DeleteHandler{svc})
}
