package middleware

import (
	"net/http"

	"github.com/urlopy/urlopy-backend-go/internal/domain/auth"
	"github.com/urlopy/urlopy-backend-go/internal/domain/user"
	"github.com/urlopy/urlopy-backend-go/internal/handler/http/response"
)

// AdminOnly must run after AuthRequired. The role is taken from the stored
// user, not from the token claims.
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor, ok := ActorFromContext(r.Context())
		if !ok {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		if !actor.IsAdmin() {
			response.HandleError(w, user.ErrAdminPrivilegeRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
