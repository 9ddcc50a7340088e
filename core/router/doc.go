// Package router provides a typed HTTP router built on net/http.ServeMux
// with middleware support, per-request contexts, panic recovery, and
// centralized error handling.
//
// # Features
//
//   - Standard ServeMux pattern matching, including path parameters
//   - Type-safe handlers and middleware over a custom context type
//   - Centralized error handling for handler errors and panics
//   - Method not allowed detection with Allow headers
//   - Compatible with the standard http.Handler interface
//
// # Basic Usage
//
// Create a router and define routes with handlers:
//
//	import "github.com/dmitrymomot/qrforge/core/router"
//
//	r := router.New[*router.Context]()
//
//	r.Get("/{$}", homeHandler)
//	r.Get("/users/{id}", getUserHandler)
//	r.Post("/users", createUserHandler)
//
//	http.ListenAndServe(":8080", r)
//
// Path parameters come from the route pattern:
//
//	func getUserHandler(ctx *router.Context) handler.Response {
//		id := ctx.Param("id")
//		...
//	}
//
// # Custom Contexts
//
// Applications usually define their own context type with helpers such
// as request binding, and install it with a factory:
//
//	r := router.New[*app.Context](
//		router.WithContextFactory(app.NewContext),
//		router.WithErrorHandler(app.ErrorHandler(log)),
//	)
//
// # Request Pipeline
//
// Every matched request runs through the same pipeline: the context is
// built once, middleware wraps the handler in registration order, the
// handler's Response renders the reply, and any error or recovered
// panic goes to the configured error handler. Panics recovered after
// the response has started are logged instead, since the wire already
// carries a status.
//
// Unmatched requests take the same pipeline with ErrNotFound, so
// middleware such as CORS still observes them. When the path exists
// under another method the router responds with ErrMethodNotAllowed and
// an Allow header instead.
package router
