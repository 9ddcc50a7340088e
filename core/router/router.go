package router

import (
	"net/http"

	"github.com/dmitrymomot/qrforge/core/handler"
)

// Router routes HTTP requests to typed handlers with middleware and
// centralized error handling.
type Router[C handler.Context] interface {
	http.Handler

	Get(pattern string, h handler.HandlerFunc[C])
	Post(pattern string, h handler.HandlerFunc[C])
	Put(pattern string, h handler.HandlerFunc[C])
	Delete(pattern string, h handler.HandlerFunc[C])

	// Handle registers a handler for every HTTP method.
	Handle(pattern string, h handler.HandlerFunc[C])

	// Use appends middleware to the router. All middleware must be
	// registered before the first route.
	Use(middlewares ...handler.Middleware[C])

	// Routes lists registered routes for introspection.
	Routes() []Route
}

// Route describes a registered route. Method is empty for
// method-agnostic routes.
type Route struct {
	Method  string
	Pattern string
}

// New creates a router backed by net/http.ServeMux. Patterns follow the
// ServeMux syntax, including path parameters and the {$} terminator:
//
//	r.Get("/users/{id}", showUser)     // GET /users/{id}
//	r.Get("/{$}", home)                // exactly GET /
//	r.Handle("/webhooks/github", hook) // any method
//
// Requests that match no registered pattern are routed through the
// middleware chain to the error handler with ErrNotFound, or with
// ErrMethodNotAllowed when the path is served under a different method.
func New[C handler.Context](opts ...Option[C]) Router[C] {
	return newMux[C](opts...)
}
