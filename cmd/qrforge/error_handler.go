package main

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/qrforge/core/binder"
	"github.com/dmitrymomot/qrforge/core/handler"
	"github.com/dmitrymomot/qrforge/core/logger"
	"github.com/dmitrymomot/qrforge/core/response"
	"github.com/dmitrymomot/qrforge/core/router"
)

// newErrorHandler maps handler errors to the API error envelope. Every
// non-2xx JSON response has the shape {"error": <message>}.
func newErrorHandler(log *slog.Logger) handler.ErrorHandler[*Context] {
	return func(ctx *Context, err error) {
		w := ctx.ResponseWriter()
		if ww, ok := w.(interface{ Written() bool }); ok && ww.Written() {
			return
		}

		httpErr := toHTTPError(err)

		var panicErr router.PanicError
		if errors.As(err, &panicErr) {
			log.ErrorContext(ctx, "Panic recovered",
				logger.Component("error_handler"),
				logger.Error(err),
				logger.Method(ctx.Request().Method),
				logger.Path(ctx.Request().URL.Path),
				slog.String("stack", string(panicErr.Stack())),
			)
		} else if httpErr.Status >= http.StatusInternalServerError {
			log.ErrorContext(ctx, "Request failed",
				logger.Component("error_handler"),
				logger.Error(err),
				logger.Method(ctx.Request().Method),
				logger.Path(ctx.Request().URL.Path),
			)
		}

		if renderErr := response.JSONWithStatus(httpErr, httpErr.Status)(w, ctx.Request()); renderErr != nil {
			log.ErrorContext(ctx, "Failed to write error response", logger.Error(renderErr))
		}
	}
}

// toHTTPError normalizes anything a handler can return into an HTTPError.
// Panic messages never reach the client; unexpected errors keep their
// message so composition failures surface to the caller.
func toHTTPError(err error) response.HTTPError {
	var httpErr response.HTTPError
	var panicErr router.PanicError

	switch {
	case errors.As(err, &panicErr):
		return response.ErrInternalServerError
	case errors.As(err, &httpErr):
		return httpErr
	case errors.Is(err, router.ErrNotFound):
		return response.ErrNotFound
	case errors.Is(err, router.ErrMethodNotAllowed):
		return response.ErrMethodNotAllowed
	case errors.Is(err, binder.ErrMissingContentType), errors.Is(err, binder.ErrUnsupportedMediaType):
		return response.ErrUnsupportedMediaType.WithMessage(err.Error())
	case errors.Is(err, binder.ErrFailedToParseJSON):
		return response.ErrBadRequest.WithMessage(err.Error())
	default:
		return response.ErrInternalServerError.WithMessage(err.Error())
	}
}
