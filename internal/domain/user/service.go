package user

import (
	"context"
)

type UserService interface {
	Create(ctx context.Context, req CreateUserRequest) (User, error)
	GetByID(ctx context.Context, id int64) (User, error)
	List(ctx context.Context) ([]User, error)
	ListAdmins(ctx context.Context) ([]User, error)
}
