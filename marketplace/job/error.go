package job

import (
	"net/http"

	"github.com/Abraxas-365/stint/pkg/errx"
)

// Error Registry
var ErrRegistry = errx.NewRegistry("JOB")

// Error codes
var (
	CodeJobNotFound              = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Job not found")
	CodeNotAcceptingApplications = ErrRegistry.Register("NOT_ACCEPTING_APPLICATIONS", errx.TypeBusiness, http.StatusBadRequest, "Job is not accepting applications")
	CodeCannotPublish            = ErrRegistry.Register("CANNOT_PUBLISH", errx.TypeBusiness, http.StatusBadRequest, "Job cannot be published in its current status")
	CodeInvalidStatusChange      = ErrRegistry.Register("INVALID_STATUS_CHANGE", errx.TypeBusiness, http.StatusBadRequest, "Invalid job status change")
	CodeNotJobOwner              = ErrRegistry.Register("NOT_OWNER", errx.TypeAuthorization, http.StatusForbidden, "Caller does not own this job")
	CodeInvalidRequest           = ErrRegistry.Register("INVALID_REQUEST", errx.TypeValidation, http.StatusBadRequest, "Invalid request data")
)

// Helper functions
func ErrJobNotFound() *errx.Error {
	return ErrRegistry.New(CodeJobNotFound)
}

func ErrJobNotAcceptingApplications() *errx.Error {
	return ErrRegistry.New(CodeNotAcceptingApplications)
}

func ErrCannotPublish() *errx.Error {
	return ErrRegistry.New(CodeCannotPublish)
}

func ErrInvalidStatusChange() *errx.Error {
	return ErrRegistry.New(CodeInvalidStatusChange)
}

func ErrNotJobOwner() *errx.Error {
	return ErrRegistry.New(CodeNotJobOwner)
}

func ErrInvalidRequest() *errx.Error {
	return ErrRegistry.New(CodeInvalidRequest)
}
