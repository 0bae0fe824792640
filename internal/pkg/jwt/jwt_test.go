package jwt

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/urlopy/urlopy-backend-go/internal/domain/user"
)

const testSecret = "test-secret-key-for-jwt"

func TestGenerateAccessToken_Claims(t *testing.T) {
	svc := NewJWTService(testSecret, time.Hour, false)
	admin := user.User{ID: 3, Name: "Ala", Role: user.RoleAdmin}

	tokenString, expiresAt, err := svc.GenerateAccessToken(admin)
	require.NoError(t, err)
	assert.Greater(t, expiresAt, time.Now().Unix())

	token, err := svc.JWTAuth().Decode(tokenString)
	require.NoError(t, err)

	claims, err := token.AsMap(context.Background())
	require.NoError(t, err)
	assert.Equal(t, float64(3), claims["user_id"])
	assert.Equal(t, "Ala", claims["name"])
	assert.Equal(t, "admin", claims["role"])
	assert.Equal(t, true, claims["is_admin"])
	assert.Equal(t, "access", claims["type"])
	assert.NotEmpty(t, token.JwtID())
}

func TestGenerateAccessToken_UniqueIDs(t *testing.T) {
	svc := NewJWTService(testSecret, time.Hour, false)
	u := user.User{ID: 1, Name: "Jan", Role: user.RoleEmployee}

	first, _, err := svc.GenerateAccessToken(u)
	require.NoError(t, err)
	second, _, err := svc.GenerateAccessToken(u)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestRevokeToken(t *testing.T) {
	svc := NewJWTService(testSecret, time.Hour, false)
	tokenString, _, err := svc.GenerateAccessToken(user.User{ID: 1, Name: "Jan", Role: user.RoleEmployee})
	require.NoError(t, err)
	token, err := svc.JWTAuth().Decode(tokenString)
	require.NoError(t, err)

	assert.False(t, svc.IsTokenRevoked(token.JwtID()))
	require.NoError(t, svc.RevokeToken(tokenString))
	assert.True(t, svc.IsTokenRevoked(token.JwtID()))
}

func TestRevokeToken_InvalidToken(t *testing.T) {
	svc := NewJWTService(testSecret, time.Hour, false)
	assert.Error(t, svc.RevokeToken("not-a-token"))
}

func TestPurgeExpiredRevocations(t *testing.T) {
	svc := NewJWTService(testSecret, time.Hour, false)
	svc.revokedTokens["expired"] = time.Now().Add(-time.Minute).Unix()
	svc.revokedTokens["live"] = time.Now().Add(time.Minute).Unix()

	require.NoError(t, svc.PurgeExpiredRevocations(context.Background()))

	assert.False(t, svc.IsTokenRevoked("expired"))
	assert.True(t, svc.IsTokenRevoked("live"))
}

func TestSessionCookies(t *testing.T) {
	svc := NewJWTService(testSecret, time.Hour, true)

	c := svc.SessionCookie("abc", time.Now().Add(time.Hour).Unix())
	assert.Equal(t, SessionCookieName, c.Name)
	assert.Equal(t, "abc", c.Value)
	assert.True(t, c.HttpOnly)
	assert.True(t, c.Secure)
	assert.Equal(t, http.SameSiteLaxMode, c.SameSite)

	cleared := svc.ClearSessionCookie()
	assert.Equal(t, SessionCookieName, cleared.Name)
	assert.Empty(t, cleared.Value)
	assert.Negative(t, cleared.MaxAge)
}
