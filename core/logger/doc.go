// Package logger provides structured logging utilities built on Go's standard
// slog package. It offers environment-specific presets and a set of pre-built
// attribute helpers for common logging scenarios.
//
// # Features
//
//   - Built on Go's standard slog for compatibility and performance
//   - Environment presets for development and production
//   - Support for both JSON and text output formats
//   - Attribute helpers with nil safety for common logging patterns
//
// # Basic Usage
//
// Create loggers using the factory function with configuration options:
//
//	import "github.com/dmitrymomot/qrforge/core/logger"
//
//	// Development: text format, debug level, stdout
//	log := logger.New(logger.WithDevelopment("qrforge"))
//
//	// Production: JSON format, info level, stdout
//	log := logger.New(logger.WithProduction("qrforge"))
//
//	// Custom configuration
//	log := logger.New(
//		logger.WithLevel(slog.LevelWarn),
//		logger.WithJSONFormatter(),
//		logger.WithAttr(slog.String("service", "api")),
//		logger.WithOutput(os.Stderr),
//	)
//
// # Attribute Helpers
//
// Helpers keep attribute keys consistent across the application:
//
//	log.Error("Request failed",
//		logger.Error(err),
//		logger.Method("POST"),
//		logger.Path("/generate"),
//		logger.StatusCode(500),
//	)
//
//	log.Info("Request processed",
//		logger.RequestID(id),
//		logger.StatusCode(200),
//		logger.Duration(elapsed),
//		logger.BytesOut(written),
//	)
//
// Error and RequestID return an empty attribute for nil/empty input, so
// callers never need to guard them.
//
// # Global Logger Setup
//
// Install a logger as the process-wide default so package-level slog calls
// route through it:
//
//	log := logger.New(logger.WithProduction("qrforge"))
//	logger.SetAsDefault(log)
//
//	slog.Info("using the default logger", logger.Component("startup"))
//
// # Testing with Custom Output
//
// Capture logs during testing:
//
//	var buf bytes.Buffer
//	log := logger.New(
//		logger.WithJSONFormatter(),
//		logger.WithOutput(&buf),
//	)
//
//	log.Info("Test message", logger.Component("test"))
//	assert.Contains(t, buf.String(), `"component":"test"`)
package logger
