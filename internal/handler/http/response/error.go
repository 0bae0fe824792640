package response

import (
	"errors"
	"net/http"

	"github.com/urlopy/urlopy-backend-go/internal/domain/auth"
	"github.com/urlopy/urlopy-backend-go/internal/domain/leave"
	"github.com/urlopy/urlopy-backend-go/internal/domain/user"
	"github.com/urlopy/urlopy-backend-go/internal/pkg/validator"
)

// ErrorStatus maps a domain error to an HTTP status and a client-safe message.
func ErrorStatus(err error) (int, string) {
	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		return http.StatusUnauthorized, err.Error()
	case errors.Is(err, auth.ErrInvalidToken):
		return http.StatusUnauthorized, "Invalid or expired session"
	case errors.Is(err, auth.ErrTokenRevoked):
		return http.StatusUnauthorized, "Session has been logged out"

	// User domain errors
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		return http.StatusForbidden, "Admin privilege required"
	case errors.Is(err, user.ErrUserNotFound):
		return http.StatusNotFound, "User not found"
	case errors.Is(err, user.ErrUserExists):
		return http.StatusConflict, "User with this email or name already exists"

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveNotFound):
		return http.StatusNotFound, "Leave not found"
	case errors.Is(err, leave.ErrLeaveAlreadyReviewed):
		return http.StatusConflict, "Leave already reviewed"
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		return http.StatusUnprocessableEntity, "Validation failed"
	}

	return http.StatusInternalServerError, "An unexpected error occurred"
}

// HandleError writes the error envelope for err. Validation errors carry
// per-field details.
func HandleError(w http.ResponseWriter, err error) {
	status, message := ErrorStatus(err)

	var details map[string]string
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		details = validationErrs.ToMap()
	}

	Fail(w, status, message, details)
}
