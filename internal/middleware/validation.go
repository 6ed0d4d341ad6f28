package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/studysphere/studysphere/internal/app/models/dto"
)

// HandleValidationError turns a binding error into the standard 400 response.
func HandleValidationError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest,
		dto.NewErrorResponse(dto.ErrorCodeValidationFailed, formatBindingError(err)))
}

func formatBindingError(err error) string {
	var validationErrs validator.ValidationErrors
	if errors, ok := err.(validator.ValidationErrors); ok {
		validationErrs = errors
	}
	if len(validationErrs) > 0 {
		return formatValidationError(validationErrs[0])
	}
	return "Invalid request format."
}

// formatValidationError creates a human-readable validation error message
func formatValidationError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	case "email":
		return e.Field() + " must be a valid email address"
	case "oneof":
		return e.Field() + " must be one of: " + e.Param()
	default:
		return e.Field() + " validation failed: " + e.Tag()
	}
}
