package application

import (
	"net/http"

	"github.com/Abraxas-365/stint/pkg/errx"
)

// Error Registry
var ErrRegistry = errx.NewRegistry("APPLICATION")

// Error codes
var (
	CodeNotFound             = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Application not found")
	CodeDuplicate            = ErrRegistry.Register("DUPLICATE", errx.TypeConflict, http.StatusConflict, "An active application already exists for this job and seeker")
	CodeInvalidTransition    = ErrRegistry.Register("INVALID_TRANSITION", errx.TypeBusiness, http.StatusBadRequest, "Status transition is not allowed from the current status")
	CodeForbidden            = ErrRegistry.Register("FORBIDDEN", errx.TypeAuthorization, http.StatusForbidden, "Caller is not a party to this application")
	CodeNoPendingHireRequest = ErrRegistry.Register("NO_PENDING_HIRE_REQUEST", errx.TypeBusiness, http.StatusBadRequest, "No hire request is pending a response")
	CodeNoInterviewScheduled = ErrRegistry.Register("NO_INTERVIEW_SCHEDULED", errx.TypeBusiness, http.StatusBadRequest, "No interview has been scheduled")
	CodeReasonRequired       = ErrRegistry.Register("REASON_REQUIRED", errx.TypeValidation, http.StatusBadRequest, "A reason is required for this operation")
	CodeVersionConflict      = ErrRegistry.Register("VERSION_CONFLICT", errx.TypeConflict, http.StatusConflict, "Application was modified concurrently")
	CodeInvalidRequest       = ErrRegistry.Register("INVALID_REQUEST", errx.TypeValidation, http.StatusBadRequest, "Invalid request data")
)

// Helper functions
func ErrNotFound() *errx.Error {
	return ErrRegistry.New(CodeNotFound)
}

func ErrDuplicate() *errx.Error {
	return ErrRegistry.New(CodeDuplicate)
}

func ErrInvalidTransition() *errx.Error {
	return ErrRegistry.New(CodeInvalidTransition)
}

func ErrForbidden() *errx.Error {
	return ErrRegistry.New(CodeForbidden)
}

func ErrNoPendingHireRequest() *errx.Error {
	return ErrRegistry.New(CodeNoPendingHireRequest)
}

func ErrNoInterviewScheduled() *errx.Error {
	return ErrRegistry.New(CodeNoInterviewScheduled)
}

func ErrReasonRequired() *errx.Error {
	return ErrRegistry.New(CodeReasonRequired)
}

func ErrVersionConflict() *errx.Error {
	return ErrRegistry.New(CodeVersionConflict)
}

func ErrInvalidRequest() *errx.Error {
	return ErrRegistry.New(CodeInvalidRequest)
}
