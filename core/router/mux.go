package router

import (
	"io"
	"log/slog"
	"net/http"
	"runtime/debug"
	"strings"

	"github.com/dmitrymomot/qrforge/core/handler"
)

// fallbackPattern catches every request no other pattern claims, so
// unmatched requests still flow through the middleware chain and reach
// the error handler instead of ServeMux's plain text responses.
const fallbackPattern = "/"

// mux is the private implementation of Router.
type mux[C handler.Context] struct {
	mux          *http.ServeMux
	middlewares  []handler.Middleware[C]
	errorHandler handler.ErrorHandler[C]
	newContext   func(http.ResponseWriter, *http.Request) C
	logger       *slog.Logger
	routes       []Route
	routed       bool
}

// newMux creates a new router instance.
func newMux[C handler.Context](opts ...Option[C]) *mux[C] {
	m := &mux[C]{
		mux:          http.NewServeMux(),
		errorHandler: defaultErrorHandler[C],
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)), // No-op logger by default
	}

	for _, opt := range opts {
		opt(m)
	}

	// Without a factory only the default *Context type is supported.
	if m.newContext == nil {
		m.newContext = func(w http.ResponseWriter, r *http.Request) C {
			var zero C
			if _, ok := any(zero).(*Context); ok {
				return any(newContext(w, r)).(C)
			}
			panic(ErrNoContextFactory)
		}
	}

	m.mux.HandleFunc(fallbackPattern, func(w http.ResponseWriter, r *http.Request) {
		m.serve(w, r, m.fallback)
	})

	return m
}

// ServeHTTP implements http.Handler.
func (m *mux[C]) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	m.mux.ServeHTTP(w, r)
}

// serve runs the per-request pipeline: context construction, panic
// recovery, the middleware chain, and response rendering.
func (m *mux[C]) serve(w http.ResponseWriter, r *http.Request, fn handler.HandlerFunc[C]) {
	ww := newResponseWriter(w)
	ctx := m.newContext(ww, r)

	defer func() {
		if p := recover(); p != nil {
			panicErr := &panicError{
				value: p,
				stack: debug.Stack(),
			}

			if ww.Written() {
				// Too late for an error response, just log the panic.
				m.logger.Error("panic after response written",
					"value", panicErr.value,
					"stack", string(panicErr.stack),
					"path", r.URL.Path,
					"method", r.Method,
					"status", ww.Status(),
				)
				return
			}
			m.errorHandler(ctx, panicErr)
		}
	}()

	if len(m.middlewares) > 0 {
		fn = chain(m.middlewares, fn)
	}

	response := fn(ctx)
	if response == nil {
		m.errorHandler(ctx, ErrNilResponse)
		return
	}

	if err := response(ww, r); err != nil {
		m.errorHandler(ctx, err)
	}
}

// fallback terminates requests that matched no registered route. It
// distinguishes unknown paths from known paths requested with the wrong
// method, setting the Allow header per RFC 9110 for the latter.
func (m *mux[C]) fallback(ctx C) handler.Response {
	return func(w http.ResponseWriter, r *http.Request) error {
		if allowed := m.allowedMethods(r); len(allowed) > 0 {
			w.Header().Set("Allow", strings.Join(allowed, ", "))
			return ErrMethodNotAllowed
		}
		return ErrNotFound
	}
}

// allowedMethods probes the underlying ServeMux for methods that serve
// the request path through a pattern more specific than the fallback.
func (m *mux[C]) allowedMethods(r *http.Request) []string {
	probes := []string{
		http.MethodGet,
		http.MethodHead,
		http.MethodPost,
		http.MethodPut,
		http.MethodPatch,
		http.MethodDelete,
	}

	var allowed []string
	for _, method := range probes {
		if method == r.Method {
			continue
		}
		probe := r.Clone(r.Context())
		probe.Method = method
		if _, pattern := m.mux.Handler(probe); pattern != "" && pattern != fallbackPattern {
			allowed = append(allowed, method)
		}
	}
	return allowed
}

// Get registers a handler for GET requests.
func (m *mux[C]) Get(pattern string, h handler.HandlerFunc[C]) {
	m.handle(http.MethodGet, pattern, h)
}

// Post registers a handler for POST requests.
func (m *mux[C]) Post(pattern string, h handler.HandlerFunc[C]) {
	m.handle(http.MethodPost, pattern, h)
}

// Put registers a handler for PUT requests.
func (m *mux[C]) Put(pattern string, h handler.HandlerFunc[C]) {
	m.handle(http.MethodPut, pattern, h)
}

// Delete registers a handler for DELETE requests.
func (m *mux[C]) Delete(pattern string, h handler.HandlerFunc[C]) {
	m.handle(http.MethodDelete, pattern, h)
}

// Handle registers a handler for all HTTP methods.
func (m *mux[C]) Handle(pattern string, h handler.HandlerFunc[C]) {
	m.handle("", pattern, h)
}

// Use appends middleware to the router.
func (m *mux[C]) Use(middlewares ...handler.Middleware[C]) {
	if m.routed {
		panic("router: all middlewares must be defined before routes")
	}
	m.middlewares = append(m.middlewares, middlewares...)
}

// Routes returns all registered routes in registration order.
func (m *mux[C]) Routes() []Route {
	routes := make([]Route, len(m.routes))
	copy(routes, m.routes)
	return routes
}

// handle registers fn on the underlying ServeMux. Pattern syntax and
// conflict rules are ServeMux's own; invalid patterns panic at
// registration time.
func (m *mux[C]) handle(method, pattern string, fn handler.HandlerFunc[C]) {
	p := pattern
	if method != "" {
		p = method + " " + pattern
	}

	m.mux.HandleFunc(p, func(w http.ResponseWriter, r *http.Request) {
		m.serve(w, r, fn)
	})

	m.routes = append(m.routes, Route{Method: method, Pattern: pattern})
	m.routed = true
}
