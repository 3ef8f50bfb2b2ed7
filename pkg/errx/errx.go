package errx

import (
	"fmt"
	"net/http"
)

// Type classifies an error for transport mapping and logging
type Type string

const (
	TypeValidation     Type = "VALIDATION"
	TypeNotFound       Type = "NOT_FOUND"
	TypeAuthentication Type = "AUTHENTICATION"
	TypeAuthorization  Type = "AUTHORIZATION"
	TypeConflict       Type = "CONFLICT"
	TypeBusiness       Type = "BUSINESS"
	TypeInternal       Type = "INTERNAL"
	TypeExternal       Type = "EXTERNAL"
)

// Code is a registered error definition. Instances are created through a
// Registry so every code carries its HTTP mapping with it.
type Code struct {
	Code       string
	Type       Type
	HTTPStatus int
	Message    string
}

// Registry scopes error codes to a domain prefix (e.g. "APPLICATION")
type Registry struct {
	prefix string
}

// NewRegistry creates a registry for a domain
func NewRegistry(prefix string) *Registry {
	return &Registry{prefix: prefix}
}

// Register defines a new error code under the registry's prefix
func (r *Registry) Register(code string, t Type, httpStatus int, message string) Code {
	return Code{
		Code:       r.prefix + "." + code,
		Type:       t,
		HTTPStatus: httpStatus,
		Message:    message,
	}
}

// New instantiates an error from a registered code
func (r *Registry) New(c Code) *Error {
	return &Error{
		Code:       c.Code,
		Type:       c.Type,
		HTTPStatus: c.HTTPStatus,
		Message:    c.Message,
	}
}

// Error is the transport-aware error carried through services and handlers
type Error struct {
	Code       string         `json:"code"`
	Type       Type           `json:"type"`
	Message    string         `json:"message"`
	HTTPStatus int            `json:"-"`
	Details    map[string]any `json:"details,omitempty"`
	cause      error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.cause }

// WithDetail attaches a structured detail and returns the error for chaining
func (e *Error) WithDetail(key string, value any) *Error {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// WithCause attaches the underlying error
func (e *Error) WithCause(err error) *Error {
	e.cause = err
	return e
}

// ToHTTPResponse renders the uniform response envelope
func (e *Error) ToHTTPResponse() map[string]any {
	resp := map[string]any{
		"success": false,
		"code":    e.Code,
		"type":    e.Type,
		"message": e.Message,
	}
	if len(e.Details) > 0 {
		resp["errors"] = e.Details
	}
	return resp
}

// Wrap converts an infrastructure error into an *Error of the given type.
// Wrapped errors keep their cause for logging but expose only the message.
func Wrap(err error, message string, t Type) *Error {
	status := http.StatusInternalServerError
	if t == TypeExternal {
		status = http.StatusBadGateway
	}
	return &Error{
		Code:       string(t) + ".WRAPPED",
		Type:       t,
		HTTPStatus: status,
		Message:    message,
		cause:      err,
	}
}

// As extracts an *Error from an error chain
func As(err error) (*Error, bool) {
	e, ok := err.(*Error)
	return e, ok
}

// IsType reports whether err is an *Error of the given type
func IsType(err error, t Type) bool {
	if e, ok := As(err); ok {
		return e.Type == t
	}
	return false
}
