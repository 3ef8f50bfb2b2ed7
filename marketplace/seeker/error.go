package seeker

import (
	"net/http"

	"github.com/Abraxas-365/stint/pkg/errx"
)

// Error Registry
var ErrRegistry = errx.NewRegistry("SEEKER")

// Error codes
var (
	// Missing profiles are a 404: the account authenticated fine, the
	// domain profile simply does not exist.
	CodeProfileNotFound = ErrRegistry.Register("PROFILE_NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Seeker profile not found")
	CodeSeekerSuspended = ErrRegistry.Register("SUSPENDED", errx.TypeBusiness, http.StatusForbidden, "Seeker profile is suspended")
	CodeCVNotFound      = ErrRegistry.Register("CV_NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "No CV uploaded")
	CodeInvalidFileType = ErrRegistry.Register("INVALID_FILE_TYPE", errx.TypeValidation, http.StatusBadRequest, "Invalid file type")
	CodeFileTooLarge    = ErrRegistry.Register("FILE_TOO_LARGE", errx.TypeValidation, http.StatusBadRequest, "File size exceeds maximum allowed")
	CodeInvalidRequest  = ErrRegistry.Register("INVALID_REQUEST", errx.TypeValidation, http.StatusBadRequest, "Invalid request data")
)

// Helper functions
func ErrProfileNotFound() *errx.Error {
	return ErrRegistry.New(CodeProfileNotFound)
}

func ErrSeekerSuspended() *errx.Error {
	return ErrRegistry.New(CodeSeekerSuspended)
}

func ErrCVNotFound() *errx.Error {
	return ErrRegistry.New(CodeCVNotFound)
}

func ErrInvalidFileType() *errx.Error {
	return ErrRegistry.New(CodeInvalidFileType)
}

func ErrFileTooLarge() *errx.Error {
	return ErrRegistry.New(CodeFileTooLarge)
}

func ErrInvalidRequest() *errx.Error {
	return ErrRegistry.New(CodeInvalidRequest)
}
