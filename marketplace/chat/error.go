package chat

import (
	"net/http"

	"github.com/Abraxas-365/stint/pkg/errx"
)

// Error Registry
var ErrRegistry = errx.NewRegistry("CHAT")

// Error codes
var (
	CodeChatNotFound = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Chat not found")
)

// Helper functions
func ErrChatNotFound() *errx.Error {
	return ErrRegistry.New(CodeChatNotFound)
}
