package middleware

import (
	"context"
	"net/http"
	"time"
)

// Timeout bounds every request context so store and hashing calls cannot
// hang a connection indefinitely. Handlers see the expiry as an error from
// the call in flight and answer with a 500.
func Timeout(d time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), d)
			defer cancel()
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
