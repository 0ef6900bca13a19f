// Package auth provides the registration and login endpoints and the bearer
// token admission middleware for protected routes.
package auth

import (
	"context"
	"net/http"
	"strings"

	"stucode/internal/handler/http/respond"
	"stucode/internal/service/credentials"
)

type ctxKey string

const ctxIdentity ctxKey = "identity"

// TokenVerifier validates a bearer token and returns the identity it carries.
type TokenVerifier interface {
	Verify(token string) (credentials.Identity, error)
}

// IdentityFromContext returns the authenticated identity stored by Authz.
func IdentityFromContext(ctx context.Context) (credentials.Identity, bool) {
	identity, ok := ctx.Value(ctxIdentity).(credentials.Identity)
	return identity, ok
}

// Authz returns middleware that is the sole admission-control gate for
// protected routes. The Authorization header is split into scheme and value;
// if either is absent, or the token does not verify, the request is rejected
// with 401. On success the decoded identity is attached to the request
// context.
func Authz(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			scheme, value, ok := strings.Cut(r.Header.Get("Authorization"), " ")
			if !ok || scheme == "" || value == "" {
				respond.Unauthorized(w, respond.MsgUnauthorized)
				return
			}

			identity, err := verifier.Verify(value)
			if err != nil {
				respond.Unauthorized(w, respond.MsgUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), ctxIdentity, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
