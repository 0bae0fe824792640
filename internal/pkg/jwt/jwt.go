package jwt

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/lestrrat-go/jwx/v2/jwt"

	"github.com/urlopy/urlopy-backend-go/internal/domain/user"
)

// SessionCookieName is the cookie jwtauth.TokenFromCookie reads.
const SessionCookieName = "jwt"

type Service interface {
	GenerateAccessToken(u user.User) (token string, expiresAt int64, err error)
	JWTAuth() *jwtauth.JWTAuth
	SessionCookie(token string, expiresAt int64) *http.Cookie
	ClearSessionCookie() *http.Cookie
	RevokeToken(token string) error
	IsTokenRevoked(tokenID string) bool
	PurgeExpiredRevocations(ctx context.Context) error
}

type JWTService struct {
	accessTokenExpirationTime time.Duration
	secureCookie              bool
	tokenAuth                 *jwtauth.JWTAuth
	// jti -> token expiry (unix seconds)
	revokedTokens map[string]int64
	mu            sync.RWMutex
	now           func() time.Time
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func NewJWTService(secretKey string, accessTokenExpirationTime time.Duration, secureCookie bool) *JWTService {
	return &JWTService{
		accessTokenExpirationTime: accessTokenExpirationTime,
		secureCookie:              secureCookie,
		tokenAuth:                 jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
		revokedTokens:             make(map[string]int64),
		now:                       time.Now,
	}
}

func (j *JWTService) GenerateAccessToken(u user.User) (token string, expiresAt int64, err error) {
	expiresAt = j.now().Add(j.accessTokenExpirationTime).Unix()

	claims := map[string]interface{}{
		"jti":      uuid.NewString(),
		"user_id":  u.ID,
		"name":     u.Name,
		"role":     string(u.Role),
		"is_admin": u.IsAdmin(),
		"type":     "access",
		"exp":      expiresAt,
	}

	_, tokenString, err := j.tokenAuth.Encode(claims)
	return tokenString, expiresAt, err
}

func (j *JWTService) SessionCookie(token string, expiresAt int64) *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Unix(expiresAt, 0),
		HttpOnly: true,
		Secure:   j.secureCookie,
		SameSite: http.SameSiteLaxMode,
	}
}

func (j *JWTService) ClearSessionCookie() *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   j.secureCookie,
		SameSite: http.SameSiteLaxMode,
	}
}

// RevokeToken remembers the token's jti until the token expires.
func (j *JWTService) RevokeToken(tokenString string) error {
	token, err := j.tokenAuth.Decode(tokenString)
	if err != nil {
		return err
	}

	j.mu.Lock()
	defer j.mu.Unlock()
	j.revokedTokens[token.JwtID()] = token.Expiration().Unix()
	return nil
}

func (j *JWTService) IsTokenRevoked(tokenID string) bool {
	j.mu.RLock()
	defer j.mu.RUnlock()
	_, revoked := j.revokedTokens[tokenID]
	return revoked
}

// PurgeExpiredRevocations drops revocations of tokens that expired anyway.
// It runs as a cron job.
func (j *JWTService) PurgeExpiredRevocations(ctx context.Context) error {
	now := j.now().Unix()

	j.mu.Lock()
	defer j.mu.Unlock()
	for jti, exp := range j.revokedTokens {
		if exp < now {
			delete(j.revokedTokens, jti)
		}
	}
	return nil
}
