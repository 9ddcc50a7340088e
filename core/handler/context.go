package handler

import (
	"context"
	"net/http"
)

// Context is the request context contract shared by handlers,
// middleware, and error handlers. Implementations carry the request and
// response writer and behave as a standard context.Context scoped to
// the request.
type Context interface {
	context.Context
	Request() *http.Request
	ResponseWriter() http.ResponseWriter
	Param(key string) string
	SetValue(key, val any)
}
