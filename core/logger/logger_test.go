package logger_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/qrforge/core/logger"
)

func TestNewDefaults(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(logger.WithOutput(&buf))

	log.Debug("hidden")
	log.Info("visible")

	output := buf.String()
	assert.NotContains(t, output, "hidden")
	assert.Contains(t, output, "visible")
	// Default format is text, key=value style.
	assert.Contains(t, output, "msg=visible")
}

func TestNewJSONFormatter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(
		logger.WithJSONFormatter(),
		logger.WithOutput(&buf),
	)

	log.Info("structured message", slog.String("key", "value"))

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "structured message", record["msg"])
	assert.Equal(t, "value", record["key"])
	assert.Equal(t, "INFO", record["level"])
}

func TestWithDevelopment(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(
		logger.WithDevelopment("qrforge"),
		logger.WithOutput(&buf),
	)

	log.Debug("debug enabled")

	output := buf.String()
	assert.Contains(t, output, "debug enabled")
	assert.Contains(t, output, "app=qrforge")
}

func TestWithProduction(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(
		logger.WithProduction("qrforge"),
		logger.WithOutput(&buf),
	)

	log.Debug("hidden in production")
	log.Info("visible in production")

	require.NotContains(t, buf.String(), "hidden in production")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "visible in production", record["msg"])
	assert.Equal(t, "qrforge", record["app"])
}

func TestWithLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(
		logger.WithOutput(&buf),
		logger.WithLevel(slog.LevelWarn),
	)

	log.Info("filtered")
	log.Warn("logged")

	output := buf.String()
	assert.NotContains(t, output, "filtered")
	assert.Contains(t, output, "logged")
}

func TestWithAttr(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(
		logger.WithJSONFormatter(),
		logger.WithOutput(&buf),
		logger.WithAttr(slog.String("service", "api"), slog.String("version", "1.0.0")),
	)

	log.Info("first")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "api", record["service"])
	assert.Equal(t, "1.0.0", record["version"])
}

func TestOptionOrderLastWins(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(
		logger.WithProduction("qrforge"),
		logger.WithOutput(&buf),
		logger.WithLevel(slog.LevelDebug),
	)

	log.Debug("debug after production preset")

	assert.Contains(t, buf.String(), "debug after production preset")
}

func TestSetAsDefault(t *testing.T) {
	prev := slog.Default()
	defer slog.SetDefault(prev)

	var buf bytes.Buffer
	log := logger.New(logger.WithOutput(&buf))
	logger.SetAsDefault(log)

	slog.Info("routed through default")

	assert.Contains(t, buf.String(), "routed through default")
}
