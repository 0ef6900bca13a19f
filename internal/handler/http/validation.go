package http

import (
	"net/http"

	"stucode/internal/handler/http/respond"
)

const (
	maxAuthHeaderBytes = 8192
	maxPathBytes       = 2048
)

// InputValidation returns middleware that rejects oversized request inputs
// before they reach a handler. Bearer tokens are well under 1KB, so an
// 8KB Authorization header is always garbage; the path limit keeps URLs
// reasonable. Body size is bounded separately by LimitRequestBody.
func InputValidation() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if len(r.Header.Get("Authorization")) > maxAuthHeaderBytes {
				respond.BadRequest(w, "authorization header too large")
				return
			}

			if len(r.URL.Path) > maxPathBytes {
				respond.Custom(w, http.StatusRequestURITooLong,
					http.StatusText(http.StatusRequestURITooLong), "URI_TOO_LONG")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
