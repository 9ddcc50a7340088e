package main

import (
	"context"
	"net/http"
	"time"

	"github.com/dmitrymomot/qrforge/core/binder"
)

// Context carries one request through the handler pipeline.
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

// Param returns the named path parameter.
func (c *Context) Param(key string) string { return c.r.PathValue(key) }

// SetValue stores a value in the request context for downstream handlers.
func (c *Context) SetValue(key, val any) {
	c.r = c.r.WithContext(context.WithValue(c.r.Context(), key, val))
}

// Bind decodes the JSON request body into v.
func (c *Context) Bind(v any) error {
	return binder.JSON()(c.r, v)
}
