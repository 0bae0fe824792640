package user

import "errors"

var (
	ErrUserNotFound           = errors.New("user not found")
	ErrUserExists             = errors.New("user with this email or name already exists")
	ErrAdminPrivilegeRequired = errors.New("admin privilege required")
)
