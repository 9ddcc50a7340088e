package handler

import "net/http"

// Response renders an HTTP response. It owns headers, status code, and
// body; errors returned from rendering go to the router's error handler.
type Response func(w http.ResponseWriter, r *http.Request) error

// HandlerFunc processes a request through a typed context and returns
// the response to render.
type HandlerFunc[C Context] func(ctx C) Response

// ErrorHandler turns errors raised during request processing into
// responses.
type ErrorHandler[C Context] func(ctx C, err error)

// Middleware wraps handlers to add cross-cutting behavior.
type Middleware[C Context] func(next HandlerFunc[C]) HandlerFunc[C]
