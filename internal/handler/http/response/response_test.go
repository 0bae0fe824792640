package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/urlopy/urlopy-backend-go/internal/domain/auth"
	"github.com/urlopy/urlopy-backend-go/internal/domain/leave"
	"github.com/urlopy/urlopy-backend-go/internal/domain/user"
	"github.com/urlopy/urlopy-backend-go/internal/pkg/validator"
)

func TestHandleError_StatusMapping(t *testing.T) {
	var verrs validator.ValidationErrors
	verrs.Add("date_to", "date_to must not be before date_from")

	testCases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"invalid credentials", auth.ErrInvalidCredentials, http.StatusUnauthorized, "UNAUTHORIZED"},
		{"invalid token", auth.ErrInvalidToken, http.StatusUnauthorized, "UNAUTHORIZED"},
		{"admin required", user.ErrAdminPrivilegeRequired, http.StatusForbidden, "FORBIDDEN"},
		{"user exists", user.ErrUserExists, http.StatusConflict, "CONFLICT"},
		{"leave not found", leave.ErrLeaveNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"wrapped not found", fmt.Errorf("get: %w", leave.ErrLeaveNotFound), http.StatusNotFound, "NOT_FOUND"},
		{"already reviewed", leave.ErrLeaveAlreadyReviewed, http.StatusConflict, "CONFLICT"},
		{"validation", verrs, http.StatusUnprocessableEntity, "VALIDATION_ERROR"},
		{"unknown", errors.New("db down"), http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			HandleError(rec, tc.err)

			assert.Equal(t, tc.status, rec.Code)

			var body Response
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.False(t, body.Success)
			require.NotNil(t, body.Error)
			assert.Equal(t, tc.code, body.Error.Code)
		})
	}
}

func TestHandleError_ValidationDetails(t *testing.T) {
	var verrs validator.ValidationErrors
	verrs.Add("date_from", "date_from is required")

	rec := httptest.NewRecorder()
	HandleError(rec, verrs)

	var body Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, map[string]string{"date_from": "date_from is required"}, body.Error.Details)
}

func TestHandleError_HidesInternalMessage(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleError(rec, errors.New("password authentication failed for user postgres"))

	assert.NotContains(t, rec.Body.String(), "postgres")
}

func TestFail_UnknownStatusIsInternal(t *testing.T) {
	rec := httptest.NewRecorder()
	Fail(rec, http.StatusServiceUnavailable, "down", nil)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)
	assert.Equal(t, "INTERNAL_SERVER_ERROR", body.Error.Code)
	assert.Equal(t, "down", body.Error.Message)
}

func TestCreated_Envelope(t *testing.T) {
	rec := httptest.NewRecorder()
	Created(rec, "Leave submitted", map[string]int{"id": 7})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"success":true,"message":"Leave submitted","data":{"id":7}}`, rec.Body.String())
}
