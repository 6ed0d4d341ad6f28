package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/studysphere/studysphere/internal/app/models/dto"
	"github.com/studysphere/studysphere/internal/pkg/apperrors"
)

// HandleAPIError maps application errors to API responses. A CustomError's
// message becomes the response detail; otherwise a generic message for the
// matched error class is used. Conflicts map to 400 to keep the error surface
// limited to 400/401/403/404/500.
func HandleAPIError(c *gin.Context, err error) {
	detail := ""
	var customErr *apperrors.CustomError
	if errors.As(err, &customErr) {
		detail = customErr.Message
	}

	switch {
	case errors.Is(err, apperrors.ErrResourceNotFound):
		respond(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, detail, "Resource not found.")
	case errors.Is(err, apperrors.ErrPermissionDenied):
		respond(c, http.StatusForbidden, dto.ErrorCodeForbidden, detail, "Permission denied.")
	case errors.Is(err, apperrors.ErrConflict):
		respond(c, http.StatusBadRequest, dto.ErrorCodeConflict, detail, "Request conflicts with existing data.")
	case errors.Is(err, apperrors.ErrValidationFailed):
		respond(c, http.StatusBadRequest, dto.ErrorCodeValidationFailed, detail, "Validation failed.")
	case errors.Is(err, apperrors.ErrUsernameAlreadyExists):
		respond(c, http.StatusBadRequest, dto.ErrorCodeConflict, detail, "A user with that username already exists.")
	case errors.Is(err, apperrors.ErrEmailAlreadyExists):
		respond(c, http.StatusBadRequest, dto.ErrorCodeConflict, detail, "A user with that email already exists.")
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		respond(c, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials, detail, "Invalid username or password.")
	case errors.Is(err, apperrors.ErrTokenExpired):
		respond(c, http.StatusUnauthorized, dto.ErrorCodeExpiredToken, detail, "Token has expired.")
	case errors.Is(err, apperrors.ErrTokenInvalid):
		respond(c, http.StatusUnauthorized, dto.ErrorCodeInvalidToken, detail, "Invalid token.")
	case errors.Is(err, apperrors.ErrUserNotFound):
		respond(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, detail, "User not found.")
	default:
		respond(c, http.StatusInternalServerError, dto.ErrorCodeInternalServer, "", "Internal server error.")
	}
}

func respond(c *gin.Context, status int, code dto.ErrorCode, detail, fallback string) {
	if detail == "" {
		detail = fallback
	}
	c.JSON(status, dto.NewErrorResponse(code, detail))
}
