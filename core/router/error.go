package router

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/dmitrymomot/qrforge/core/handler"
)

var (
	ErrNoContextFactory = errors.New("no context factory provided")
	ErrMethodNotAllowed error = &routeError{status: http.StatusMethodNotAllowed, msg: "method not allowed"}
	ErrNotFound         error = &routeError{status: http.StatusNotFound, msg: "not found"}
	ErrNilResponse      = errors.New("nil response")
)

// routeError is a routing sentinel that carries its HTTP status, so
// middleware and error handlers inspecting StatusCode see the status
// the client will receive instead of a generic 500.
type routeError struct {
	status int
	msg    string
}

func (e *routeError) Error() string   { return e.msg }
func (e *routeError) StatusCode() int { return e.status }

// statusCode is an unexported interface that errors can implement
// to provide a custom HTTP status code.
type statusCode interface {
	StatusCode() int
}

// defaultErrorHandler renders errors as plain text. It maps the router
// sentinels and any error implementing StatusCode to their HTTP status,
// everything else to 500.
func defaultErrorHandler[C handler.Context](ctx C, err error) {
	w := ctx.ResponseWriter()

	// Prevent double-writing responses which causes HTTP protocol errors
	if ww, ok := w.(*responseWriter); ok && ww.Written() {
		return
	}

	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, ErrMethodNotAllowed):
		status = http.StatusMethodNotAllowed
	default:
		if sc, ok := err.(statusCode); ok {
			status = sc.StatusCode()
		}
	}

	http.Error(w, err.Error(), status)
}

// PanicError allows external error handlers to detect recovered panics.
// When the router recovers a panic it wraps the value in an error that
// implements this interface, carrying the panic value and stack trace.
type PanicError interface {
	error
	// Value returns the original panic value.
	Value() any
	// Stack returns the stack trace captured at the panic point.
	Stack() []byte
}

// panicError is the private implementation of PanicError.
type panicError struct {
	value any
	stack []byte
}

func (e *panicError) Error() string {
	return fmt.Sprintf("panic: %v", e.value)
}

func (e *panicError) Value() any {
	return e.value
}

func (e *panicError) Stack() []byte {
	return e.stack
}

// Unwrap allows errors.Is/As to work with panics raised from errors.
func (e *panicError) Unwrap() error {
	if err, ok := e.value.(error); ok {
		return err
	}
	return nil
}
