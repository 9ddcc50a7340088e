// Package middleware provides HTTP middleware components for common
// cross-cutting concerns: request ID generation, CORS handling, and
// structured request logging.
//
// All middleware follow a consistent pattern:
//   - Generic functions that accept a handler.Context type parameter
//   - Configuration structs for customization
//   - Default constructors for common use cases
//   - WithConfig constructors for advanced configuration
//   - Context helpers for retrieving stored values
//
// # Request ID Middleware
//
// RequestID assigns a unique identifier to each request for tracing and
// correlation. The ID is stored in context and added to response headers.
//
//	// Basic usage - generates UUID v4
//	r.Use(middleware.RequestID[*YourContext]())
//
//	// Custom configuration
//	r.Use(middleware.RequestIDWithConfig[*YourContext](middleware.RequestIDConfig{
//		HeaderName:  "X-Trace-ID",
//		UseExisting: true, // Reuse an incoming header if present
//	}))
//
//	// Retrieve request ID in handlers
//	func handler(ctx *YourContext) handler.Response {
//		if requestID, ok := middleware.GetRequestID(ctx); ok {
//			log.Printf("Processing request: %s", requestID)
//		}
//		return response.JSON(map[string]any{"status": "ok"})
//	}
//
// # CORS Middleware
//
// CORS handles Cross-Origin Resource Sharing, including preflight OPTIONS
// requests. The default configuration allows all origins, which suits public
// APIs; restrict origins for anything carrying credentials.
//
//	// Allow all origins
//	r.Use(middleware.CORS[*YourContext]())
//
//	// Restrict origins and cache preflights
//	r.Use(middleware.CORSWithConfig[*YourContext](middleware.CORSConfig{
//		AllowOrigins: []string{"https://myapp.com"},
//		MaxAge:       86400,
//	}))
//
// # Logging Middleware
//
// Logging emits one structured record per request once the response is
// written, with method, path, status, size, and elapsed time. Server errors
// log at error level, client errors and slow requests at warning.
//
//	r.Use(middleware.LoggingWithConfig[*YourContext](middleware.LoggingConfig{
//		Logger: log,
//		Skip: func(ctx handler.Context) bool {
//			return ctx.Request().URL.Path == "/health"
//		},
//	}))
//
// # Middleware Order
//
// Register RequestID before Logging so log records carry the request ID, and
// CORS before any handler that should answer preflight requests:
//
//	r.Use(middleware.RequestID[*YourContext]())
//	r.Use(middleware.CORS[*YourContext]())
//	r.Use(middleware.LoggingWithConfig[*YourContext](loggingConfig))
package middleware
