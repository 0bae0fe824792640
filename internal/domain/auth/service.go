package auth

import (
	"context"

	"github.com/urlopy/urlopy-backend-go/internal/domain/user"
)

type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)
	Logout(ctx context.Context, token string) error
	// Me resolves the user a verified token belongs to.
	Me(ctx context.Context, userID int64) (user.User, error)
}
