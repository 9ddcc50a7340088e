// Package server provides an HTTP server implementation with graceful shutdown,
// configurable options, and production-ready defaults. It wraps the standard
// http.Server with enhanced functionality for reliable web applications.
//
// # Key Features
//
//   - Graceful shutdown with configurable timeout
//   - Thread-safe concurrent access protection
//   - Structured logging integration
//   - Production-ready default timeouts
//   - Simple configuration via functional options
//   - Environment-driven configuration via Config
//
// # Basic Usage
//
// Create and run a server with default configuration:
//
//	import (
//		"context"
//		"net/http"
//		"github.com/dmitrymomot/qrforge/core/server"
//	)
//
//	func main() {
//		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
//			w.Write([]byte("Hello, World!"))
//		})
//
//		ctx := context.Background()
//		if err := server.Run(ctx, ":8080", handler); err != nil {
//			log.Fatal(err)
//		}
//	}
//
// # Server Configuration
//
// Configure server with custom options:
//
//	srv := server.New(":8080",
//		server.WithShutdownTimeout(60*time.Second),
//		server.WithLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil))),
//	)
//
// Or load configuration from the environment and combine with options:
//
//	var cfg server.Config
//	config.MustLoad(&cfg)
//
//	srv, err := server.NewFromConfig(cfg, server.WithLogger(logger))
//	if err != nil {
//		log.Fatal(err)
//	}
//
// # Coordinated Lifecycle
//
// Run returns an errgroup-compatible closure that starts the server and shuts
// it down when the context is cancelled:
//
//	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
//	defer stop()
//
//	eg, ctx := errgroup.WithContext(ctx)
//	eg.Go(srv.Run(ctx, handler))
//
//	if err := eg.Wait(); err != nil {
//		logger.Error("server failed", "error", err)
//	}
//
// # Server Defaults
//
// The server includes production-ready defaults:
//
//   - ReadTimeout: 15 seconds
//   - WriteTimeout: 15 seconds
//   - IdleTimeout: 60 seconds
//   - MaxHeaderBytes: 1MB
//   - Graceful shutdown timeout: 30 seconds
//   - Logger: discards output until one is provided
//
// # Thread Safety
//
// The Server type is safe for concurrent use. All methods properly synchronize
// access to internal state using read-write mutexes.
package server
