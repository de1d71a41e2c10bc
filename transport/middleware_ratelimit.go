package transport

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/tuba-user/constant"
	"github.com/muhammadheryan/tuba-user/utils/errors"
	"golang.org/x/time/rate"
)

// RateLimitMiddleware rejects requests over the server-wide limit. A zero limit disables it.
func RateLimitMiddleware(limit float64, burst int) mux.MiddlewareFunc {
	if limit <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	if burst < 1 {
		burst = 1
	}
	limiter := rate.NewLimiter(rate.Limit(limit), burst)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				writeError(w, errors.SetCustomError(constant.ErrTooManyRequests))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
