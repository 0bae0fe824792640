package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/urlopy/urlopy-backend-go/internal/domain/user"
)

type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) Create(ctx context.Context, newUser user.User) (user.User, error) {
	args := m.Called(ctx, newUser)
	return args.Get(0).(user.User), args.Error(1)
}

func (m *UserRepository) GetByID(ctx context.Context, id int64) (user.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(user.User), args.Error(1)
}

func (m *UserRepository) GetByName(ctx context.Context, name string) (user.User, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(user.User), args.Error(1)
}

func (m *UserRepository) List(ctx context.Context) ([]user.User, error) {
	args := m.Called(ctx)
	users, _ := args.Get(0).([]user.User)
	return users, args.Error(1)
}

func (m *UserRepository) ListByRole(ctx context.Context, role user.Role) ([]user.User, error) {
	args := m.Called(ctx, role)
	users, _ := args.Get(0).([]user.User)
	return users, args.Error(1)
}

type UserService struct {
	mock.Mock
}

func (m *UserService) Create(ctx context.Context, req user.CreateUserRequest) (user.User, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(user.User), args.Error(1)
}

func (m *UserService) GetByID(ctx context.Context, id int64) (user.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(user.User), args.Error(1)
}

func (m *UserService) List(ctx context.Context) ([]user.User, error) {
	args := m.Called(ctx)
	users, _ := args.Get(0).([]user.User)
	return users, args.Error(1)
}

func (m *UserService) ListAdmins(ctx context.Context) ([]user.User, error) {
	args := m.Called(ctx)
	users, _ := args.Get(0).([]user.User)
	return users, args.Error(1)
}
