// Package middleware contains HTTP middleware for the mdchat API.
package middleware

import (
	"net/http"
	"strings"

	"github.com/ersonp/mdchat/internal/domain/ports"
)

// unauthorizedBody is the fixed body of every 401 response.
const unauthorizedBody = "Unauthorized"

// Auth rejects requests without a valid "Authorization: Bearer <token>"
// header. Rejections carry no detail beyond the status and a fixed body.
func Auth(verifier ports.TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				writeUnauthorized(w)
				return
			}

			if _, err := verifier.Verify(token); err != nil {
				writeUnauthorized(w)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// extractBearerToken extracts the token from "Authorization: Bearer <token>".
// Returns empty string if header is missing, wrong scheme, or token is empty.
func extractBearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")

	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}

	return strings.TrimSpace(strings.TrimPrefix(header, prefix))
}

func writeUnauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusUnauthorized)
	w.Write([]byte(unauthorizedBody)) //nolint:errcheck
}
