package router

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/dmitrymomot/resmux/core/handler"
)

var (
	// Mux errors
	ErrNoContextFactory = errors.New("no context factory provided")
	ErrNilResponse      = errors.New("nil response")

	// Route compilation errors
	ErrEmptyVersion   = errors.New("version label must not be empty")
	ErrEmptyResource  = errors.New("resource name must not be empty")
	ErrNilHandler     = errors.New("resource declared without a handler")
	ErrNestingTooDeep = errors.New("resources nest at most one level")
)

// statusCode is an unexported interface that errors can implement
// to provide a custom HTTP status code.
type statusCode interface {
	StatusCode() int
}

// defaultErrorHandler provides default error handling.
func defaultErrorHandler[C handler.Context](ctx C, err error) {
	w := ctx.ResponseWriter()

	// Prevent double-writing responses which causes HTTP protocol errors
	if state, ok := w.(ResponseState); ok && state.Written() {
		return
	}

	status := http.StatusInternalServerError
	if sc, ok := err.(statusCode); ok {
		status = sc.StatusCode()
	}

	http.Error(w, err.Error(), status)
}

// defaultFallback responds to unrouted requests. The "type" field marks
// this as a routing-level miss so clients can tell it apart from a
// resource-level not-found produced by a handler.
func defaultFallback[C handler.Context](ctx C) handler.Response {
	return func(w http.ResponseWriter, r *http.Request) error {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusNotFound)
		return json.NewEncoder(w).Encode(map[string]string{
			"error": "not found",
			"type":  "route",
		})
	}
}

// PanicError interface allows external error handlers to detect and handle panics.
// When a panic is recovered by the router, it's wrapped in an error that implements
// this interface, providing access to the original panic value and stack trace.
type PanicError interface {
	error
	// Value returns the original panic value.
	Value() any
	// Stack returns the stack trace captured at the panic point.
	Stack() []byte
}

// panicError is the private implementation of PanicError interface.
type panicError struct {
	value any
	stack []byte
}

// Error implements the error interface.
func (e *panicError) Error() string {
	return fmt.Sprintf("panic: %v", e.value)
}

// Value returns the original panic value.
func (e *panicError) Value() any {
	return e.value
}

// Stack returns the stack trace.
func (e *panicError) Stack() []byte {
	return e.stack
}

// Unwrap allows errors.Is/As to work with wrapped panics.
func (e *panicError) Unwrap() error {
	if err, ok := e.value.(error); ok {
		return err
	}
	return nil
}
