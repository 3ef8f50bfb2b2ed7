package interview

import (
	"net/http"

	"github.com/Abraxas-365/stint/pkg/errx"
)

// Error Registry
var ErrRegistry = errx.NewRegistry("INTERVIEW")

// Error codes
var (
	CodeInterviewNotFound   = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Interview not found")
	CodeInvalidStatusChange = ErrRegistry.Register("INVALID_STATUS_CHANGE", errx.TypeBusiness, http.StatusBadRequest, "Invalid interview status change")
	CodeInvalidSlot         = ErrRegistry.Register("INVALID_SLOT", errx.TypeValidation, http.StatusBadRequest, "Invalid interview date or time")
	CodeSlotConflict        = ErrRegistry.Register("SLOT_CONFLICT", errx.TypeConflict, http.StatusConflict, "Slot overlaps an existing interview")
	CodeNotParticipant      = ErrRegistry.Register("NOT_PARTICIPANT", errx.TypeAuthorization, http.StatusForbidden, "Caller is not a participant of this interview")
	CodeInvalidRequest      = ErrRegistry.Register("INVALID_REQUEST", errx.TypeValidation, http.StatusBadRequest, "Invalid request data")
)

// Helper functions
func ErrInterviewNotFound() *errx.Error {
	return ErrRegistry.New(CodeInterviewNotFound)
}

func ErrInvalidStatusChange() *errx.Error {
	return ErrRegistry.New(CodeInvalidStatusChange)
}

func ErrInvalidSlot() *errx.Error {
	return ErrRegistry.New(CodeInvalidSlot)
}

func ErrSlotConflict() *errx.Error {
	return ErrRegistry.New(CodeSlotConflict)
}

func ErrNotParticipant() *errx.Error {
	return ErrRegistry.New(CodeNotParticipant)
}

func ErrInvalidRequest() *errx.Error {
	return ErrRegistry.New(CodeInvalidRequest)
}
