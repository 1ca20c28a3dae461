package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/defnotwig/portfolio/backend/pkg/utils"
)

// AdminTokenHeader carries the FAQ admin token; Authorization: Bearer is
// accepted as an alternative.
const AdminTokenHeader = "X-KB-Admin-Token"

// RequireAdmin gates FAQ write routes behind a shared token. A server with
// no token configured refuses all writes rather than allowing them.
func RequireAdmin(expected string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if expected == "" {
				utils.RespondError(w, http.StatusForbidden, "KB admin token not configured on server.")
				return
			}

			token := r.Header.Get(AdminTokenHeader)
			if token == "" {
				token = r.Header.Get("Authorization")
			}
			if len(token) >= 7 && strings.EqualFold(token[:7], "bearer ") {
				token = strings.TrimSpace(token[7:])
			}

			if token == "" || subtle.ConstantTimeCompare([]byte(token), []byte(expected)) != 1 {
				utils.RespondError(w, http.StatusUnauthorized, "Invalid or missing admin token.")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
