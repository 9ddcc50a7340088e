// Package handler defines the request handling contracts used across
// the application: typed handler functions, composable responses, error
// handlers, and middleware.
//
// Handlers return a Response instead of writing to the ResponseWriter
// directly, which separates deciding what to respond from rendering it:
//
//	func showProfile(ctx *app.Context) handler.Response {
//		profile, err := loadProfile(ctx, ctx.Param("id"))
//		if err != nil {
//			return response.Error(err)
//		}
//		return response.JSON(profile)
//	}
//
// # Typed Contexts
//
// HandlerFunc is generic over a Context implementation, so applications
// define their own context type with request-scoped helpers and get it
// back fully typed in every handler:
//
//	type Context struct { ... } // implements handler.Context
//
//	func create(ctx *Context) handler.Response {
//		var req createRequest
//		if err := ctx.Bind(&req); err != nil {
//			return response.Error(err)
//		}
//		...
//	}
//
// The router builds one context per request through a factory and passes
// it to the middleware chain, the handler, and the error handler, so all
// of them observe the same request state.
//
// # Middleware
//
// Middleware wraps a HandlerFunc and returns a new one. It can short-
// circuit by returning its own Response, or delegate to next:
//
//	func requireHeader[C handler.Context](name string) handler.Middleware[C] {
//		return func(next handler.HandlerFunc[C]) handler.HandlerFunc[C] {
//			return func(ctx C) handler.Response {
//				if ctx.Request().Header.Get(name) == "" {
//					return response.Error(response.ErrBadRequest)
//				}
//				return next(ctx)
//			}
//		}
//	}
//
// # Error Handling
//
// Errors returned by a Response, and panics recovered by the router, are
// routed to the ErrorHandler configured on the router. The error handler
// renders the final response, typically by mapping errors to
// response.HTTPError values.
package handler
