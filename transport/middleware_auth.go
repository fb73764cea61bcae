package transport

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/lead-crm/application/user"
	"github.com/muhammadheryan/lead-crm/constant"
	utilsContext "github.com/muhammadheryan/lead-crm/utils/context"
	"github.com/muhammadheryan/lead-crm/utils/errors"
)

// AuthMiddleware returns a middleware that validates bearer tokens using UserApp
// and stores the caller's identity in the request context.
// Public endpoints (login, signup, password reset, swagger, stored files) pass without a token.
func AuthMiddleware(userApp user.UserApp) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublicPath(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			auth := r.Header.Get("Authorization")
			if auth == "" || !strings.HasPrefix(auth, "Bearer ") {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}
			token := strings.TrimPrefix(auth, "Bearer ")

			identity, err := userApp.ValidateToken(r.Context(), token)
			if err != nil {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}

			ctx := utilsContext.WithIdentity(r.Context(), identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// isPublicPath defines which endpoints are public (no auth required)
func isPublicPath(path string) bool {
	if strings.HasPrefix(path, "/swagger/") || strings.HasPrefix(path, "/storage/") {
		return true
	}

	switch path {
	case "/login", "/register", "/signup", "/forgot-password", "/verify-otp", "/reset-password":
		return true
	}
	return false
}
