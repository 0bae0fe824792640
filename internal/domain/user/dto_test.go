package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/urlopy/urlopy-backend-go/internal/pkg/validator"
)

func TestCreateUserRequest_Validate_DefaultsRole(t *testing.T) {
	req := CreateUserRequest{Email: " anna@example.com ", Name: "Anna", Password: "password123"}

	require.NoError(t, req.Validate())
	assert.Equal(t, string(RoleEmployee), req.Role)
	assert.Equal(t, "anna@example.com", req.Email)
}

func TestCreateUserRequest_Validate_Errors(t *testing.T) {
	req := CreateUserRequest{Email: "not-an-email", Name: "", Role: "owner", Password: "short"}

	err := req.Validate()
	require.Error(t, err)

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	fields := verrs.ToMap()
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "name")
	assert.Contains(t, fields, "password")
	assert.Contains(t, fields, "role")
}

func TestUser_IsAdmin(t *testing.T) {
	admin := User{Role: RoleAdmin}
	employee := User{Role: RoleEmployee}

	assert.True(t, admin.IsAdmin())
	assert.False(t, employee.IsAdmin())
}

func TestUser_ToResponse_OmitsPassword(t *testing.T) {
	hash := "secret-hash"
	u := User{ID: 7, Email: "a@b.cd", Name: "Ala", Role: RoleAdmin, PasswordHash: &hash}

	resp := u.ToResponse()
	assert.Equal(t, int64(7), resp.ID)
	assert.Equal(t, "admin", resp.Role)
	assert.NotContains(t, resp.Email+resp.Name+resp.Role, hash)
}
