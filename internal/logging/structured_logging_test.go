package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStructuredLogger(t *testing.T) {
	t.Run("creates JSON logger with proper configuration", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewStructuredLogger(&buf, slog.LevelInfo)

		logger.Info("test message",
			slog.String("component", "test"),
			slog.Int("count", 42))

		output := buf.String()

		assert.Contains(t, output, `"level":"INFO"`)
		assert.Contains(t, output, `"msg":"test message"`)
		assert.Contains(t, output, `"component":"test"`)
		assert.Contains(t, output, `"count":42`)
		assert.Contains(t, output, `"time":`)
	})

	t.Run("respects log level configuration", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewStructuredLogger(&buf, slog.LevelWarn)

		logger.Debug("debug message")
		logger.Info("info message")
		logger.Warn("warning message")

		output := buf.String()
		assert.NotContains(t, output, "debug message")
		assert.NotContains(t, output, "info message")
		assert.Contains(t, output, "warning message")
	})
}

func TestLoggerHelpers(t *testing.T) {
	t.Run("LogError creates structured error log", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewStructuredLogger(&buf, slog.LevelInfo)

		LogError(logger, "failed to fetch archive", assert.AnError,
			slog.String("url", "http://example.com/data.zip"),
			slog.String("component", "provisioning"))

		output := buf.String()
		assert.Contains(t, output, `"level":"ERROR"`)
		assert.Contains(t, output, `"msg":"failed to fetch archive"`)
		assert.Contains(t, output, `"url":"http://example.com/data.zip"`)
		assert.Contains(t, output, `"component":"provisioning"`)
		assert.Contains(t, output, `"error":`)
	})

	t.Run("LogError handles nil logger", func(t *testing.T) {
		assert.NotPanics(t, func() {
			LogError(nil, "message", assert.AnError)
		})
	})

	t.Run("LogOperation skips zero durations", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewStructuredLogger(&buf, slog.LevelInfo)

		LogOperation(logger, "member_extracted",
			slog.String("member", "1year.arff"),
			slog.Duration("duration", 0))

		output := buf.String()
		assert.Contains(t, output, `"msg":"member_extracted"`)
		assert.Contains(t, output, `"member":"1year.arff"`)
		assert.NotContains(t, output, `"duration"`)
	})

	t.Run("LogOperation keeps nonzero durations", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewStructuredLogger(&buf, slog.LevelInfo)

		LogOperation(logger, "training_complete",
			slog.Duration("duration", 3*time.Second))

		assert.Contains(t, buf.String(), `"duration"`)
	})

	t.Run("LogDownload records transfer details", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewStructuredLogger(&buf, slog.LevelInfo)

		LogDownload(logger, "http://example.com/data.zip", 200, 1024, 12.5)

		output := buf.String()
		assert.Contains(t, output, `"msg":"archive_download"`)
		assert.Contains(t, output, `"url":"http://example.com/data.zip"`)
		assert.Contains(t, output, `"status":200`)
		assert.Contains(t, output, `"bytes":1024`)
		assert.Contains(t, output, `"duration_ms":12.5`)
	})
}

func TestLoggerContext(t *testing.T) {
	t.Run("round-trips a logger through context", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewStructuredLogger(&buf, slog.LevelInfo)

		ctx := WithLogger(context.Background(), logger)
		retrieved := FromContext(ctx)

		require.Equal(t, logger, retrieved)
	})

	t.Run("falls back to the default logger", func(t *testing.T) {
		assert.NotNil(t, FromContext(context.Background()))
	})
}
