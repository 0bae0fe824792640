package user

import "time"

type Role string

const (
	RoleAdmin    Role = "admin"    // Reviews, edits and deletes leaves, manages users
	RoleEmployee Role = "employee" // Submits and views leaves
)

type User struct {
	ID           int64
	Email        string
	Name         string
	Role         Role
	PasswordHash *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin is the capability check behind every leave mutation
// other than submitting one's own leave.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// ToResponse drops the password hash.
func (u User) ToResponse() UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
		UpdatedAt: u.UpdatedAt.Format(time.RFC3339),
	}
}
