package response

import (
	"fmt"
	"net/http"
)

// HTTPError is a structured error that carries an HTTP status code and a
// client-facing message. Marshaling it produces the API error envelope:
//
//	{"error": "message"}
//
// The status code travels out of band via StatusCode, not in the body.
type HTTPError struct {
	Status  int    `json:"-"`
	Message string `json:"error"`
}

// NewHTTPError creates an HTTPError with the given status code and message.
// A zero status defaults to 500, an empty message defaults to the standard
// status text.
func NewHTTPError(status int, message string) HTTPError {
	if status == 0 {
		status = http.StatusInternalServerError
	}
	if message == "" {
		message = http.StatusText(status)
	}
	return HTTPError{Status: status, Message: message}
}

// Error implements the error interface.
func (e HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

// StatusCode returns the HTTP status code for the error.
// This allows HTTPError to work with the router's statusCode interface.
func (e HTTPError) StatusCode() int {
	return e.Status
}

// WithMessage returns a copy of the error with a custom message.
// The original error value is not modified.
func (e HTTPError) WithMessage(message string) HTTPError {
	e.Message = message
	return e
}

// Predefined HTTP errors using http.StatusText for default messages.
var (
	// 4xx Client Errors
	ErrBadRequest           = NewHTTPError(http.StatusBadRequest, "")
	ErrUnauthorized         = NewHTTPError(http.StatusUnauthorized, "")
	ErrForbidden            = NewHTTPError(http.StatusForbidden, "")
	ErrNotFound             = NewHTTPError(http.StatusNotFound, "")
	ErrMethodNotAllowed     = NewHTTPError(http.StatusMethodNotAllowed, "")
	ErrUnsupportedMediaType = NewHTTPError(http.StatusUnsupportedMediaType, "")
	ErrUnprocessableEntity  = NewHTTPError(http.StatusUnprocessableEntity, "")
	ErrTooManyRequests      = NewHTTPError(http.StatusTooManyRequests, "")

	// 5xx Server Errors
	ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, "")
	ErrServiceUnavailable  = NewHTTPError(http.StatusServiceUnavailable, "")
)
