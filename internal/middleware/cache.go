package middleware

import (
	"fmt"
	"net/http"
)

// CacheControl sets a public max-age header on GET responses. Static
// content routes rarely change, so browsers and CDNs may hold them for the
// full duration.
func CacheControl(seconds int) func(http.Handler) http.Handler {
	value := fmt.Sprintf("public, max-age=%d", seconds)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodGet {
				w.Header().Set("Cache-Control", value)
			}
			next.ServeHTTP(w, r)
		})
	}
}

// LongCache is the policy for rarely-changing content endpoints.
var LongCache = CacheControl(3600)
