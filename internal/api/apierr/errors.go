package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mcoot/puzzlesolver/internal/model"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest   = "INVALID_REQUEST"
	CodeUnknownPuzzle    = "UNKNOWN_PUZZLE"
	CodeMalformedNumber  = "MALFORMED_NUMBER"
	CodeMalformedRange   = "MALFORMED_RANGE"
	CodeMissingSeparator = "MISSING_SEPARATOR"
	CodeRunNotFound      = "RUN_NOT_FOUND"
	CodeInternalError    = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// Status returns the HTTP status an error maps to
func Status(err error) int {
	return toHTTPError(err).status
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	// Check for specific error types
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	// Input errors carry the offending line, so their message is passed through
	switch {
	case errors.Is(err, model.ErrMalformedRange):
		return &httpError{http.StatusUnprocessableEntity, APIError{CodeMalformedRange, err.Error()}}
	case errors.Is(err, model.ErrMalformedNumber):
		return &httpError{http.StatusUnprocessableEntity, APIError{CodeMalformedNumber, err.Error()}}
	case errors.Is(err, model.ErrMissingSeparator):
		return &httpError{http.StatusUnprocessableEntity, APIError{CodeMissingSeparator, "Missing blank line between ranges and IDs"}}
	case errors.Is(err, model.ErrEmptyInput):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, "Input is empty"}}

	// Map lookup errors
	case errors.Is(err, model.ErrUnknownPuzzle):
		return &httpError{http.StatusNotFound, APIError{CodeUnknownPuzzle, err.Error()}}
	case errors.Is(err, model.ErrRunNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeRunNotFound, "Run not found"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
