package response

import (
	"net/http"

	"github.com/dmitrymomot/qrforge/core/handler"
)

// Error returns a handler response that propagates the given error.
// Useful when a handler wants to hand an error straight to the
// router's error handler instead of rendering anything itself.
func Error(err error) handler.Response {
	return func(w http.ResponseWriter, r *http.Request) error {
		return err
	}
}
