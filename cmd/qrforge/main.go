package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/qrforge/core/config"
	"github.com/dmitrymomot/qrforge/core/handler"
	"github.com/dmitrymomot/qrforge/core/healthcheck"
	"github.com/dmitrymomot/qrforge/core/logger"
	"github.com/dmitrymomot/qrforge/core/router"
	"github.com/dmitrymomot/qrforge/core/server"
	"github.com/dmitrymomot/qrforge/middleware"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var cfg appConfig
	config.MustLoad(&cfg)

	logOpt := logger.WithDevelopment(cfg.AppName)
	if cfg.Env == "production" {
		logOpt = logger.WithProduction(cfg.AppName)
	}
	log := logger.New(logOpt)
	logger.SetAsDefault(log)

	srv, err := server.NewFromConfig(cfg.Server, server.WithLogger(log))
	if err != nil {
		log.ErrorContext(ctx, "Failed to configure server", logger.Error(err))
		os.Exit(1)
	}

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(srv.Run(ctx, newRouter(log)))

	log.InfoContext(ctx, "Application started",
		slog.String("addr", cfg.Server.Addr),
		slog.String("env", cfg.Env),
	)

	if err := eg.Wait(); err != nil {
		log.ErrorContext(ctx, "Application stopped with error", logger.Error(err))
		os.Exit(1)
	}

	log.InfoContext(ctx, "Application stopped")
}

// newRouter assembles the route table behind the middleware stack.
// RequestID runs first so both CORS responses and log records carry it.
func newRouter(log *slog.Logger) router.Router[*Context] {
	r := router.New[*Context](
		router.WithContextFactory[*Context](newContext),
		router.WithErrorHandler[*Context](newErrorHandler(log)),
		router.WithLogger[*Context](log),
	)

	r.Use(
		middleware.RequestID[*Context](),
		middleware.CORS[*Context](),
		middleware.LoggingWithConfig[*Context](middleware.LoggingConfig{
			Logger: log,
			Skip: func(ctx handler.Context) bool {
				return ctx.Request().URL.Path == "/health"
			},
		}),
	)

	r.Get("/{$}", landingHandler)
	r.Get("/health", healthcheck.Handler[*Context](log))
	r.Post("/generate", generateHandler)
	r.Post("/download", downloadHandler)

	return r
}
