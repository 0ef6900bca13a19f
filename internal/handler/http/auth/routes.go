package auth

import (
	"net/http"

	handlerhttp "stucode/internal/handler/http"
	authUC "stucode/internal/usecase/auth"
)

// Register registers the registration and login endpoints with the given mux.
// Both are rate limited per IP: they are unauthenticated and involve bcrypt
// work, which makes them the cheapest target for abuse.
func Register(mux *http.ServeMux, svc *authUC.Service, limiter *handlerhttp.RateLimiter) {
	mux.Handle("POST   /v1/user/register", limiter.Limit(RegisterHandler{svc}))
	mux.Handle("POST   /v1/user/login", limiter.Limit(LoginHandler{svc}))
}
