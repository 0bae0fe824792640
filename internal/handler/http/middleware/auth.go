package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/urlopy/urlopy-backend-go/internal/domain/auth"
	"github.com/urlopy/urlopy-backend-go/internal/domain/user"
	"github.com/urlopy/urlopy-backend-go/internal/handler/http/response"
	"github.com/urlopy/urlopy-backend-go/internal/pkg/jwt"
)

// authenticate validates the token jwtauth.Verifier put in the request
// context and loads the user it belongs to.
func authenticate(r *http.Request, jwtService jwt.Service, authService auth.AuthService) (user.User, error) {
	token, claims, err := jwtauth.FromContext(r.Context())
	if err != nil || token == nil {
		return user.User{}, auth.ErrInvalidToken
	}

	tokenType, ok := claims["type"].(string)
	if !ok || tokenType != "access" {
		return user.User{}, auth.ErrInvalidToken
	}

	if jwtService.IsTokenRevoked(token.JwtID()) {
		return user.User{}, auth.ErrTokenRevoked
	}

	// JSON numbers decode as float64.
	userID, ok := claims["user_id"].(float64)
	if !ok {
		return user.User{}, auth.ErrInvalidToken
	}

	return authService.Me(r.Context(), int64(userID))
}

// AuthRequired rejects API requests without a valid session with 401 and
// stores the acting user in the request context.
func AuthRequired(jwtService jwt.Service, authService auth.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			actor, err := authenticate(r, jwtService, authService)
			if err != nil {
				response.HandleError(w, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithActor(r.Context(), actor)))
		}
		return http.HandlerFunc(hfn)
	}
}

// SessionRequired is AuthRequired for HTML pages: requests without a valid
// session are redirected to the login page.
func SessionRequired(jwtService jwt.Service, authService auth.AuthService, loginPath string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			actor, err := authenticate(r, jwtService, authService)
			if err != nil {
				http.SetCookie(w, jwtService.ClearSessionCookie())
				http.Redirect(w, r, loginPath, http.StatusSeeOther)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithActor(r.Context(), actor)))
		}
		return http.HandlerFunc(hfn)
	}
}
