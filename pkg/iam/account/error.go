package account

import (
	"net/http"

	"github.com/Abraxas-365/stint/pkg/errx"
)

// Error Registry
var ErrRegistry = errx.NewRegistry("ACCOUNT")

// Error codes
var (
	CodeAccountNotFound  = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Account not found")
	CodeEmailTaken       = ErrRegistry.Register("EMAIL_TAKEN", errx.TypeConflict, http.StatusConflict, "Email is already registered")
	CodeAccountSuspended = ErrRegistry.Register("SUSPENDED", errx.TypeAuthorization, http.StatusForbidden, "Account is suspended")
)

// Helper functions
func ErrAccountNotFound() *errx.Error {
	return ErrRegistry.New(CodeAccountNotFound)
}

func ErrEmailTaken() *errx.Error {
	return ErrRegistry.New(CodeEmailTaken)
}

func ErrAccountSuspended() *errx.Error {
	return ErrRegistry.New(CodeAccountSuspended)
}
