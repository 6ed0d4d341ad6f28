package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studysphere/studysphere/internal/app/models/dto"
	"github.com/studysphere/studysphere/internal/pkg/apperrors"
)

func runHandleAPIError(t *testing.T, err error) (int, dto.ErrorResponse) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)

	HandleAPIError(c, err)

	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	return recorder.Code, body
}

func TestHandleAPIErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"not found", apperrors.ErrResourceNotFound, http.StatusNotFound},
		{"forbidden", apperrors.ErrPermissionDenied, http.StatusForbidden},
		{"conflict maps to 400", apperrors.ErrConflict, http.StatusBadRequest},
		{"validation", apperrors.ErrValidationFailed, http.StatusBadRequest},
		{"duplicate username", apperrors.ErrUsernameAlreadyExists, http.StatusBadRequest},
		{"duplicate email", apperrors.ErrEmailAlreadyExists, http.StatusBadRequest},
		{"bad credentials", apperrors.ErrInvalidCredentials, http.StatusUnauthorized},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := runHandleAPIError(t, tt.err)
			assert.Equal(t, tt.status, status)
			assert.NotEmpty(t, body.Detail)
		})
	}
}

func TestHandleAPIErrorUsesCustomMessage(t *testing.T) {
	err := apperrors.NewConflictError("You are already a member of this group.")

	status, body := runHandleAPIError(t, err)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "You are already a member of this group.", body.Detail)
}

func TestHandleAPIErrorFallbackDetail(t *testing.T) {
	status, body := runHandleAPIError(t, apperrors.ErrResourceNotFound)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Resource not found.", body.Detail)
}
