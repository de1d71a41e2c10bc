package transport

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/tuba-user/constant"
	"github.com/muhammadheryan/tuba-user/utils/errors"
)

// RequesterMiddleware reads the authenticated user ID set by the gateway in X-User-Id.
// Public endpoints are served without it.
func RequesterMiddleware() mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := strings.TrimSpace(r.Header.Get(constant.HeaderUserID))
			if header == "" {
				if isPublicPath(r.Method, r.URL.Path) {
					next.ServeHTTP(w, r)
					return
				}
				writeError(w, errors.NewCustomError(constant.ErrUnauthorize, "missing requester"))
				return
			}

			userID, err := strconv.ParseUint(header, 10, 64)
			if err != nil || userID == 0 {
				writeError(w, errors.NewCustomError(constant.ErrUnauthorize, "invalid requester"))
				return
			}

			ctx := context.WithValue(r.Context(), constant.UserIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// isPublicPath defines which endpoints are served to anonymous callers
func isPublicPath(method, path string) bool {
	if strings.HasPrefix(path, "/swagger/") || strings.HasPrefix(path, "/internal/") {
		return true
	}
	if path == "/health" {
		return true
	}
	if method == http.MethodPost {
		switch path {
		case "/users", "/users/check", "/users/wallet":
			return true
		}
	}

	return false
}
