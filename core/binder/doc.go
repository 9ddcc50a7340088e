// Package binder provides HTTP request data binding utilities.
// It binds JSON request bodies to Go structs with size limits and
// Content-Type validation.
//
// # Features
//
//   - JSON binding with size limits and trailing-data rejection
//   - Content-Type validation with charset parameter handling
//   - Lenient field matching: unknown JSON fields are ignored
//   - Empty bodies bind to the zero value for handler-side validation
//   - Context cancellation handling to avoid processing doomed requests
//
// # Usage
//
//	import "github.com/dmitrymomot/qrforge/core/binder"
//
//	type GenerateRequest struct {
//		URL    string `json:"url"`
//		Format string `json:"format"`
//		Theme  string `json:"theme"`
//	}
//
//	func handler(w http.ResponseWriter, r *http.Request) {
//		var req GenerateRequest
//		if err := binder.JSON()(r, &req); err != nil {
//			http.Error(w, err.Error(), http.StatusBadRequest)
//			return
//		}
//		// req is now populated from JSON body
//	}
//
// # Error Handling
//
// Binding failures wrap sentinel errors so callers can map them to HTTP
// status codes:
//
//	switch {
//	case errors.Is(err, binder.ErrMissingContentType):
//		// 415 Unsupported Media Type
//	case errors.Is(err, binder.ErrUnsupportedMediaType):
//		// 415 Unsupported Media Type
//	case errors.Is(err, binder.ErrFailedToParseJSON):
//		// 400 Bad Request
//	}
package binder
