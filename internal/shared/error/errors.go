package error

import (
	"errors"
	"net/http"
)

type DomainError interface {
	error // Embed standard error interface
	Info() string
}

type domainSentinel struct {
	errInfo string
}

func (e *domainSentinel) Error() string {
	return e.errInfo
}

func (e *domainSentinel) Info() string {
	return e.errInfo
}

// ErrorResponse carries the HTTP status and the user-facing message for an
// error. For the form endpoints the Message is shown as a flash; for JSON
// endpoints the whole structure is the response body.
type ErrorResponse struct {
	Status  int    `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"` // client message
}

// Common errors
var (
	domainErrorResponses = map[string]ErrorResponse{}

	// ValidationFailed indicates the submitted form failed validation
	ValidationFailed = ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    "ERROR-001",
		Message: "Please check the submitted fields and try again.",
	}

	// InvalidRequest indicates the request format is invalid
	InvalidRequest = ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    "ERROR-002",
		Message: "Invalid request.",
	}

	// InternalServerError indicates an unexpected server error
	InternalServerError = ErrorResponse{
		Status:  http.StatusInternalServerError,
		Code:    "ERROR-003",
		Message: "Something went wrong. Please try again.",
	}
)

// NewDomainError creates a sentinel error that can participate in error chains.
func NewDomainError(errInfo string) DomainError {
	return &domainSentinel{errInfo: errInfo}
}

// RegisterDomainErrorResponse registers a mapping between a domain error errInfo and a shared error response.
func RegisterDomainErrorResponse(errInfo string, resp ErrorResponse) {
	domainErrorResponses[errInfo] = resp
}

// ResolveDomainError converts a domain error into a shared error response if a mapping exists.
func ResolveDomainError(err error) (ErrorResponse, bool) {
	if err == nil {
		return ErrorResponse{}, false
	}

	var domainErr DomainError
	if errors.As(err, &domainErr) {
		if resp, ok := domainErrorResponses[domainErr.Info()]; ok {
			return resp, true
		}
	}
	return ErrorResponse{}, false
}
