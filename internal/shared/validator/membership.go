package validator

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/nkulisa-npc/membership-site/internal/model"
)

var (
	// emailRegex matches the pragmatic local@domain.tld shape; the relay
	// rejects anything more exotic anyway.
	emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

// ValidatePackage validates that the submitted membership package is one of
// the tiers offered on the registration form.
func ValidatePackage(fl validator.FieldLevel) bool {
	return model.IsValidPackage(fl.Field().String())
}

// ValidateFormEmail validates an email field as submitted from a form.
// Surrounding whitespace is ignored because fields are trimmed before
// storage, not before binding.
func ValidateFormEmail(fl validator.FieldLevel) bool {
	email := strings.TrimSpace(fl.Field().String())
	return emailRegex.MatchString(email)
}
