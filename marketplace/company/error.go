package company

import (
	"net/http"

	"github.com/Abraxas-365/stint/pkg/errx"
)

// Error Registry
var ErrRegistry = errx.NewRegistry("COMPANY")

// Error codes
var (
	CodeProfileNotFound  = ErrRegistry.Register("PROFILE_NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Company profile not found")
	CodeCompanySuspended = ErrRegistry.Register("SUSPENDED", errx.TypeBusiness, http.StatusForbidden, "Company profile is suspended")
	CodeTrialExpired     = ErrRegistry.Register("TRIAL_EXPIRED", errx.TypeBusiness, http.StatusForbidden, "Free trial has expired")
	CodePlanLimitReached = ErrRegistry.Register("PLAN_LIMIT_REACHED", errx.TypeBusiness, http.StatusForbidden, "Plan limit reached for this action")
	CodeInvalidRequest   = ErrRegistry.Register("INVALID_REQUEST", errx.TypeValidation, http.StatusBadRequest, "Invalid request data")
)

// Helper functions
func ErrProfileNotFound() *errx.Error {
	return ErrRegistry.New(CodeProfileNotFound)
}

func ErrCompanySuspended() *errx.Error {
	return ErrRegistry.New(CodeCompanySuspended)
}

func ErrTrialExpired() *errx.Error {
	return ErrRegistry.New(CodeTrialExpired)
}

func ErrPlanLimitReached() *errx.Error {
	return ErrRegistry.New(CodePlanLimitReached)
}

func ErrInvalidRequest() *errx.Error {
	return ErrRegistry.New(CodeInvalidRequest)
}
