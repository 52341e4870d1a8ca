package validator

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	sharedError "github.com/nkulisa-npc/membership-site/internal/shared/error"
)

// ToErrorResponse converts gin binding/validator errors into a standardized response.
func ToErrorResponse(err error) (*sharedError.ErrorResponse, bool) {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil, false
	}

	if len(validationErrors) == 0 {
		return nil, false
	}

	// Only the first validation error is returned
	fieldErr := validationErrors[0]
	message := getErrorMessage(fieldErr)

	resp := sharedError.ValidationFailed
	resp.Message = message
	return &resp, true
}

// getErrorMessage returns a user-friendly message for a validation error
func getErrorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Please fill in all required fields."
	case "email", "form_email":
		return "Please enter a valid email address."
	case "package":
		return "Please choose one of the available membership packages."
	case "min":
		return fmt.Sprintf("Must be at least %s characters.", fe.Param())
	case "max":
		return fmt.Sprintf("Must be at most %s characters.", fe.Param())
	default:
		return fmt.Sprintf("The '%s' field is not valid.", fe.Field())
	}
}
