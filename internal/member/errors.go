package member

import (
	"net/http"

	sharedError "github.com/nkulisa-npc/membership-site/internal/shared/error"
)

const (
	memberAlreadyExists = "MEMBER_ALREADY_EXISTS" // errInfo
	registrationFailed  = "REGISTRATION_FAILED"   // errInfo
)

var (
	ErrMemberAlreadyExists = sharedError.NewDomainError(memberAlreadyExists)
	ErrRegistrationFailed  = sharedError.NewDomainError(registrationFailed)
)

func init() {
	sharedError.RegisterDomainErrorResponse(memberAlreadyExists, sharedError.ErrorResponse{
		Status:  http.StatusConflict,
		Code:    "MEMBER-001",
		Message: "Email already registered.",
	})

	sharedError.RegisterDomainErrorResponse(registrationFailed, sharedError.ErrorResponse{
		Status:  http.StatusInternalServerError,
		Code:    "MEMBER-002",
		Message: "Registration failed. Please try again.",
	})
}
