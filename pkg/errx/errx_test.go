package errx

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryPrefixesCodes(t *testing.T) {
	reg := NewRegistry("WIDGET")
	code := reg.Register("NOT_FOUND", TypeNotFound, http.StatusNotFound, "Widget not found")

	assert.Equal(t, "WIDGET.NOT_FOUND", code.Code)

	err := reg.New(code)
	assert.Equal(t, "WIDGET.NOT_FOUND", err.Code)
	assert.Equal(t, TypeNotFound, err.Type)
	assert.Equal(t, http.StatusNotFound, err.HTTPStatus)
	assert.Equal(t, "WIDGET.NOT_FOUND: Widget not found", err.Error())
}

func TestWithDetailChains(t *testing.T) {
	reg := NewRegistry("WIDGET")
	code := reg.Register("INVALID", TypeValidation, http.StatusBadRequest, "Invalid widget")

	err := reg.New(code).
		WithDetail("field", "name").
		WithDetail("max", 10)

	assert.Equal(t, "name", err.Details["field"])
	assert.Equal(t, 10, err.Details["max"])
}

func TestToHTTPResponse(t *testing.T) {
	reg := NewRegistry("WIDGET")
	code := reg.Register("INVALID", TypeValidation, http.StatusBadRequest, "Invalid widget")

	resp := reg.New(code).ToHTTPResponse()
	assert.Equal(t, false, resp["success"])
	assert.Equal(t, "WIDGET.INVALID", resp["code"])
	assert.Equal(t, TypeValidation, resp["type"])
	assert.Equal(t, "Invalid widget", resp["message"])
	assert.NotContains(t, resp, "errors")

	withDetails := reg.New(code).WithDetail("field", "name").ToHTTPResponse()
	assert.Contains(t, withDetails, "errors")
}

func TestWrapKeepsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(cause, "failed to reach storage", TypeInternal)

	assert.Equal(t, http.StatusInternalServerError, err.HTTPStatus)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "connection refused")

	external := Wrap(cause, "upstream failed", TypeExternal)
	assert.Equal(t, http.StatusBadGateway, external.HTTPStatus)
}

func TestAsAndIsType(t *testing.T) {
	reg := NewRegistry("WIDGET")
	code := reg.Register("CONFLICT", TypeConflict, http.StatusConflict, "Already exists")
	err := reg.New(code)

	extracted, ok := As(err)
	require.True(t, ok)
	assert.Equal(t, "WIDGET.CONFLICT", extracted.Code)

	assert.True(t, IsType(err, TypeConflict))
	assert.False(t, IsType(err, TypeNotFound))
	assert.False(t, IsType(errors.New("plain"), TypeConflict))
}
