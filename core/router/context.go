package router

import (
	"context"
	"net/http"
	"time"
)

// Context is the default request context used when no custom factory is
// configured. Applications that need request-scoped helpers define their
// own handler.Context implementation and install it with
// WithContextFactory.
type Context struct {
	w http.ResponseWriter
	r *http.Request
}

func newContext(w http.ResponseWriter, r *http.Request) *Context {
	return &Context{w: w, r: r}
}

func (c *Context) Deadline() (time.Time, bool) { return c.r.Context().Deadline() }
func (c *Context) Done() <-chan struct{}       { return c.r.Context().Done() }
func (c *Context) Err() error                  { return c.r.Context().Err() }
func (c *Context) Value(key any) any           { return c.r.Context().Value(key) }

func (c *Context) Request() *http.Request              { return c.r }
func (c *Context) ResponseWriter() http.ResponseWriter { return c.w }

// Param returns the path parameter bound by the route pattern, or the
// empty string when the pattern has no such parameter.
func (c *Context) Param(key string) string { return c.r.PathValue(key) }

// SetValue stores a request-scoped value, visible to later reads through
// this context and through the request context.
func (c *Context) SetValue(key, val any) {
	ctx := context.WithValue(c.r.Context(), key, val)
	c.r = c.r.WithContext(ctx)
}
