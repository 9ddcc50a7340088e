package logger

import (
	"io"
	"log/slog"
	"os"
)

type config struct {
	level  slog.Level
	json   bool
	output io.Writer
	attrs  []slog.Attr
}

// Option configures the logger created by New.
type Option func(*config)

// WithDevelopment configures a text logger at debug level writing to stdout,
// tagged with the application name.
func WithDevelopment(app string) Option {
	return func(c *config) {
		c.json = false
		c.level = slog.LevelDebug
		c.output = os.Stdout
		c.attrs = append(c.attrs, slog.String("app", app))
	}
}

// WithProduction configures a JSON logger at info level writing to stdout,
// tagged with the application name.
func WithProduction(app string) Option {
	return func(c *config) {
		c.json = true
		c.level = slog.LevelInfo
		c.output = os.Stdout
		c.attrs = append(c.attrs, slog.String("app", app))
	}
}

// WithLevel sets the minimum level a record must have to be logged.
func WithLevel(level slog.Level) Option {
	return func(c *config) {
		c.level = level
	}
}

// WithJSONFormatter switches the output format to JSON.
func WithJSONFormatter() Option {
	return func(c *config) {
		c.json = true
	}
}

// WithOutput sets the destination writer.
func WithOutput(w io.Writer) Option {
	return func(c *config) {
		c.output = w
	}
}

// WithAttr attaches attributes to every record the logger produces.
func WithAttr(attrs ...slog.Attr) Option {
	return func(c *config) {
		c.attrs = append(c.attrs, attrs...)
	}
}

// New creates a logger from the given options. Without options it produces
// a text logger at info level on stdout. Options apply in order, so later
// options override earlier ones:
//
//	log := logger.New(
//		logger.WithProduction("qrforge"),
//		logger.WithLevel(slog.LevelDebug), // production preset, debug level
//	)
func New(opts ...Option) *slog.Logger {
	cfg := &config{
		level:  slog.LevelInfo,
		output: os.Stdout,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	handlerOpts := &slog.HandlerOptions{Level: cfg.level}

	var h slog.Handler
	if cfg.json {
		h = slog.NewJSONHandler(cfg.output, handlerOpts)
	} else {
		h = slog.NewTextHandler(cfg.output, handlerOpts)
	}

	if len(cfg.attrs) > 0 {
		h = h.WithAttrs(cfg.attrs)
	}

	return slog.New(h)
}

// SetAsDefault installs l as the process-wide default, so package-level
// slog calls and code using slog.Default() route through it.
func SetAsDefault(l *slog.Logger) {
	slog.SetDefault(l)
}
