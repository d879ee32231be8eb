package middleware

import (
	stderrors "errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"voice2site/internal/api/errors"
)

// ValidateRequest binds the JSON body and maps binding tag failures to a validation error
func ValidateRequest(c *gin.Context, req interface{}) error {
	if err := c.ShouldBindJSON(req); err != nil {
		validationErrors := make(map[string]string)

		var validationErrs validator.ValidationErrors
		if stderrors.As(err, &validationErrs) {
			for _, fieldError := range validationErrs {
				validationErrors[strings.ToLower(fieldError.Field())] = describe(fieldError)
			}
		} else {
			validationErrors["request"] = "invalid JSON format"
		}

		return errors.NewValidationError("Validation failed", validationErrors)
	}

	return nil
}

// ValidateQuery validates query parameters
func ValidateQuery(c *gin.Context, req interface{}) error {
	if err := c.ShouldBindQuery(req); err != nil {
		apiErr := errors.NewBadRequestError("Invalid query parameters")

		var validationErrs validator.ValidationErrors
		if stderrors.As(err, &validationErrs) {
			apiErr.Details = make(map[string]string)
			for _, fieldError := range validationErrs {
				apiErr.Details[strings.ToLower(fieldError.Field())] = describe(fieldError)
			}
		}
		return apiErr
	}

	return nil
}

func describe(fieldError validator.FieldError) string {
	switch fieldError.Tag() {
	case "required":
		return "is required"
	case "min":
		return "is too short"
	case "max":
		return "is too long"
	case "oneof":
		return "must be one of: " + fieldError.Param()
	default:
		return "is invalid"
	}
}
