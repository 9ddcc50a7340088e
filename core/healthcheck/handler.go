package healthcheck

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/qrforge/core/handler"
	"github.com/dmitrymomot/qrforge/core/logger"
	"github.com/dmitrymomot/qrforge/core/response"
)

// Handler creates a health check handler function that can serve as both a liveness
// and readiness probe depending on the provided dependency functions.
//
// When no dependency functions are provided, it acts as a liveness probe and
// returns "ALIVE" to indicate the service is running.
//
// When dependency functions are provided, it acts as a readiness probe and
// executes each function in sequence. All checks run even after a failure so
// a single probe reports every unhealthy dependency at once. If all succeed,
// it returns "READY"; otherwise the failures are logged together and a
// service unavailable error is returned.
//
// Example:
//
//	// Liveness probe - no dependencies
//	livenessHandler := healthcheck.Handler[*app.Context](logger)
//
//	// Readiness probe - with dependency checks
//	readinessHandler := healthcheck.Handler[*app.Context](
//		logger,
//		storageCheck,
//		upstreamCheck,
//	)
//
//	r.Get("/health", livenessHandler)
//	r.Get("/health/ready", readinessHandler)
func Handler[C handler.Context](log *slog.Logger, fn ...func(context.Context) error) handler.HandlerFunc[C] {
	return func(ctx C) handler.Response {
		// Liveness probe: no dependency functions supplied.
		if len(fn) == 0 {
			return response.String("ALIVE")
		}

		// Readiness probe: verify all dependency functions succeed.
		var failed []error
		for _, f := range fn {
			if err := f(ctx); err != nil {
				failed = append(failed, err)
			}
		}
		if len(failed) > 0 {
			log.ErrorContext(ctx, "Readiness check failed",
				logger.Component("healthcheck"),
				logger.Errors(failed...),
			)
			return response.Error(response.ErrServiceUnavailable)
		}

		return response.String("READY")
	}
}
