package like

import (
	"net/http"

	likeUC "stucode/internal/usecase/like"
)

// Register registers all like-related HTTP handlers with the given mux.
func Register(mux *http.ServeMux, svc *likeUC.Service) {
	mux.Handle("POST   /v1/like/{articleId}", CreateHandler{svc})
	mux.Handle("GET    /v1/like/{articleId}", ListByArticleHandler{svc})
	mux.Handle("DELETE /v1/like/{articleId}", DeleteHandler{svc})
	mux.Handle("GET    /v1/like/user/{userId}", ListByUserHandler{svc})
}
