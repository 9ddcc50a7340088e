// Package response provides HTTP response builders that return handler.Response
// closures, keeping handlers declarative: a handler decides WHAT to send and the
// closure takes care of headers, status codes, and encoding.
//
// # Features
//
//   - JSON responses with proper Content-Type headers
//   - Plain text and HTML responses
//   - HTML template rendering with buffered output
//   - File downloads with Content-Disposition and MIME detection
//   - Structured HTTP errors that marshal to the API error envelope
//
// # Basic Usage
//
// The package provides functions that return handler.Response for use in HTTP handlers:
//
//	import "github.com/dmitrymomot/qrforge/core/response"
//
//	// JSON responses
//	func statusHandler(ctx handler.Context) handler.Response {
//		return response.JSON(map[string]string{"status": "ok"})
//	}
//
//	// File downloads
//	func downloadHandler(ctx handler.Context) handler.Response {
//		return response.Attachment(data, "qrcode.png")
//	}
//
//	// Template rendering
//	func indexHandler(ctx handler.Context) handler.Response {
//		return response.Template(indexTmpl, nil)
//	}
//
// # Error Responses
//
// HTTPError carries a status code and a client-facing message. Marshaling it
// produces the {"error": "message"} envelope, and StatusCode lets the router's
// error handling pick the right status automatically:
//
//	func createHandler(ctx handler.Context) handler.Response {
//		if err := validate(ctx); err != nil {
//			return response.Error(response.ErrBadRequest.WithMessage("URL is required"))
//		}
//		// ...
//	}
//
// Predefined errors cover the common status codes (ErrBadRequest, ErrNotFound,
// ErrInternalServerError, ...) and WithMessage customizes the message without
// mutating the shared value.
//
// # Template Rendering
//
// Template buffers the rendered output before touching the response writer, so
// a template failure returns an error to the router instead of leaving the
// client with half a page:
//
//	var indexTmpl = template.Must(template.ParseFS(templatesFS, "templates/index.html"))
//
//	func landingHandler(ctx handler.Context) handler.Response {
//		return response.Template(indexTmpl, nil)
//	}
package response
