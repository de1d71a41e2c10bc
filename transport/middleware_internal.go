package transport

import (
	"net/http"

	"github.com/muhammadheryan/tuba-user/constant"
	"github.com/muhammadheryan/tuba-user/utils/errors"
)

// InternalMiddleware checks for static API key in header. An empty key closes the routes.
func InternalMiddleware(apiKey string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if apiKey == "" || r.Header.Get("Authorization") != "Bearer "+apiKey {
				writeError(w, errors.NewCustomError(constant.ErrUnauthorize, "invalid internal api key"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
