package validator

import (
	"fmt"
	"log/slog"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// GetValidator returns the validator instance from Gin binding
func GetValidator() (*validator.Validate, error) {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil, fmt.Errorf("failed to get validator engine")
	}
	return v, nil
}

// RegisterAll registers all common validators defined in this package
func RegisterAll() error {
	v, err := GetValidator()
	if err != nil {
		return fmt.Errorf("failed to get validator engine: %w", err)
	}

	if err := v.RegisterValidation("package", ValidatePackage); err != nil {
		return fmt.Errorf("failed to register package validator: %w", err)
	}

	if err := v.RegisterValidation("form_email", ValidateFormEmail); err != nil {
		return fmt.Errorf("failed to register form_email validator: %w", err)
	}

	slog.Info("Common validators registered", "validators", "package, form_email")
	return nil
}
