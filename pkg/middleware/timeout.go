package middleware

import (
	"context"
	"net/http"
	"time"
)

// Timeout gives every request a deadline. Handlers and the database
// transactions they open observe it through r.Context(); a request that
// runs past it is rolled back by the driver.
func Timeout(d time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), d)
			defer cancel()
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
