package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/urlopy/urlopy-backend-go/internal/domain/auth"
	"github.com/urlopy/urlopy-backend-go/internal/domain/user"
	"github.com/urlopy/urlopy-backend-go/internal/mocks"
	"github.com/urlopy/urlopy-backend-go/internal/pkg/jwt"
	"github.com/urlopy/urlopy-backend-go/internal/pkg/validator"
)

const authTestSecret = "test-secret-key-for-jwt"

func hashed(t *testing.T, password string) *string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	s := string(h)
	return &s
}

func newAuthService(repo *mocks.UserRepository) (auth.AuthService, *jwt.JWTService) {
	jwtSvc := jwt.NewJWTService(authTestSecret, time.Hour, false)
	return NewAuthService(repo, jwtSvc), jwtSvc
}

func TestAuthService_Login_Success(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.UserRepository{}
	svc, jwtSvc := newAuthService(repo)

	repo.On("GetByName", ctx, "Jan").Return(user.User{ID: 4, Name: "Jan", Role: user.RoleEmployee, PasswordHash: hashed(t, "password123")}, nil)

	resp, err := svc.Login(ctx, auth.LoginRequest{Name: " Jan ", Password: "password123"})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, int64(4), resp.User.ID)

	token, err := jwtSvc.JWTAuth().Decode(resp.AccessToken)
	require.NoError(t, err)
	userID, ok := token.Get("user_id")
	require.True(t, ok)
	assert.Equal(t, float64(4), userID)
}

func TestAuthService_Login_InvalidCredentials(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name   string
		setup  func(repo *mocks.UserRepository)
		expect error
	}{
		{
			name: "unknown user",
			setup: func(repo *mocks.UserRepository) {
				repo.On("GetByName", ctx, "Jan").Return(user.User{}, user.ErrUserNotFound)
			},
			expect: auth.ErrInvalidCredentials,
		},
		{
			name: "wrong password",
			setup: func(repo *mocks.UserRepository) {
				repo.On("GetByName", ctx, "Jan").Return(user.User{ID: 1, Name: "Jan", PasswordHash: hashed(t, "password123")}, nil)
			},
			expect: auth.ErrInvalidCredentials,
		},
		{
			name: "no password set",
			setup: func(repo *mocks.UserRepository) {
				repo.On("GetByName", ctx, "Jan").Return(user.User{ID: 1, Name: "Jan"}, nil)
			},
			expect: auth.ErrInvalidCredentials,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &mocks.UserRepository{}
			tc.setup(repo)
			svc, _ := newAuthService(repo)

			_, err := svc.Login(ctx, auth.LoginRequest{Name: "Jan", Password: "wrong-password"})

			assert.ErrorIs(t, err, tc.expect)
		})
	}
}

func TestAuthService_Login_ValidationError(t *testing.T) {
	repo := &mocks.UserRepository{}
	svc, _ := newAuthService(repo)

	_, err := svc.Login(context.Background(), auth.LoginRequest{})

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	repo.AssertNotCalled(t, "GetByName", mock.Anything, mock.Anything)
}

func TestAuthService_Login_RepositoryError(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.UserRepository{}
	repo.On("GetByName", ctx, "Jan").Return(user.User{}, errors.New("connection reset"))
	svc, _ := newAuthService(repo)

	_, err := svc.Login(ctx, auth.LoginRequest{Name: "Jan", Password: "x"})

	require.Error(t, err)
	assert.NotErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAuthService_Logout_RevokesToken(t *testing.T) {
	repo := &mocks.UserRepository{}
	svc, jwtSvc := newAuthService(repo)
	token, _, err := jwtSvc.GenerateAccessToken(user.User{ID: 1, Name: "Jan", Role: user.RoleEmployee})
	require.NoError(t, err)
	parsed, err := jwtSvc.JWTAuth().Decode(token)
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), token))

	assert.True(t, jwtSvc.IsTokenRevoked(parsed.JwtID()))
}

func TestAuthService_Logout_InvalidToken(t *testing.T) {
	svc, _ := newAuthService(&mocks.UserRepository{})

	assert.ErrorIs(t, svc.Logout(context.Background(), "garbage"), auth.ErrInvalidToken)
	assert.NoError(t, svc.Logout(context.Background(), ""))
}

func TestAuthService_Me(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.UserRepository{}
	repo.On("GetByID", ctx, int64(4)).Return(user.User{ID: 4, Name: "Jan"}, nil)
	repo.On("GetByID", ctx, int64(5)).Return(user.User{}, user.ErrUserNotFound)
	svc, _ := newAuthService(repo)

	me, err := svc.Me(ctx, 4)
	require.NoError(t, err)
	assert.Equal(t, "Jan", me.Name)

	_, err = svc.Me(ctx, 5)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}
