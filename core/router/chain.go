package router

import "github.com/dmitrymomot/qrforge/core/handler"

// chain composes middlewares around an endpoint in registration order:
// the first registered middleware becomes the outermost wrapper.
func chain[C handler.Context](middlewares []handler.Middleware[C], endpoint handler.HandlerFunc[C]) handler.HandlerFunc[C] {
	if len(middlewares) == 0 {
		return endpoint
	}

	h := endpoint
	for i := len(middlewares) - 1; i >= 0; i-- {
		h = middlewares[i](h)
	}
	return h
}
