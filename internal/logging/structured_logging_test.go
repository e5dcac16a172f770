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

func TestNewLogger(t *testing.T) {
	t.Run("json output", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLogger(&buf, "json", slog.LevelInfo)
		logger.Info("schedule ready", slog.Int("rows", 10))

		output := buf.String()
		assert.Contains(t, output, `"level":"INFO"`)
		assert.Contains(t, output, `"msg":"schedule ready"`)
		assert.Contains(t, output, `"rows":10`)
	})

	t.Run("text output", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLogger(&buf, "TEXT", slog.LevelInfo)
		logger.Info("schedule ready", slog.Int("rows", 10))

		output := buf.String()
		assert.Contains(t, output, "level=INFO")
		assert.Contains(t, output, `msg="schedule ready"`)
		assert.Contains(t, output, "rows=10")
	})

	t.Run("respects level", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewStructuredLogger(&buf, slog.LevelWarn)
		logger.Info("hidden")
		logger.Warn("shown")

		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), "shown")
	})
}

func TestParseLevel(t *testing.T) {
	testCases := []struct {
		input    string
		expected slog.Level
	}{
		{"", slog.LevelInfo},
		{"info", slog.LevelInfo},
		{"DEBUG", slog.LevelDebug},
		{" warn ", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			level, err := ParseLevel(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, level)
		})
	}

	_, err := ParseLevel("verbose")
	assert.Error(t, err)
}

func TestLoggerHelpers(t *testing.T) {
	t.Run("LogError includes the error and attributes", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewStructuredLogger(&buf, slog.LevelInfo)

		LogError(logger, "failed to load schedule", assert.AnError,
			slog.String("source", "schedule.xlsx"),
			slog.String("component", "schedule_loader"))

		output := buf.String()
		assert.Contains(t, output, `"level":"ERROR"`)
		assert.Contains(t, output, `"msg":"failed to load schedule"`)
		assert.Contains(t, output, `"error":"assert.AnError general error for testing"`)
		assert.Contains(t, output, `"source":"schedule.xlsx"`)
	})

	t.Run("LogError tolerates nil logger and nil error", func(t *testing.T) {
		assert.NotPanics(t, func() { LogError(nil, "nothing", assert.AnError) })

		var buf bytes.Buffer
		LogError(NewStructuredLogger(&buf, slog.LevelInfo), "no cause", nil)
		assert.NotContains(t, buf.String(), `"error"`)
	})

	t.Run("LogOperation drops zero durations", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewStructuredLogger(&buf, slog.LevelInfo)

		LogOperation(logger, "schedule_loaded",
			slog.Int("rows", 10),
			slog.Duration("duration", 0),
			slog.Duration("parse", 2*time.Millisecond))

		output := buf.String()
		assert.Contains(t, output, `"msg":"schedule_loaded"`)
		assert.Contains(t, output, `"rows":10`)
		assert.NotContains(t, output, `"duration"`)
		assert.Contains(t, output, `"parse"`)
	})

	t.Run("LogQuery", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewStructuredLogger(&buf, slog.LevelInfo)

		LogQuery(logger, "first bus svc 10", "10", "First Bus", "answered", 1)

		output := buf.String()
		assert.Contains(t, output, `"msg":"query_answered"`)
		assert.Contains(t, output, `"query":"first bus svc 10"`)
		assert.Contains(t, output, `"service":"10"`)
		assert.Contains(t, output, `"metric":"First Bus"`)
		assert.Contains(t, output, `"outcome":"answered"`)
		assert.Contains(t, output, `"lines":1`)
		assert.Contains(t, output, `"component":"query_engine"`)
	})

	t.Run("LogHTTPRequest", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewStructuredLogger(&buf, slog.LevelInfo)

		LogHTTPRequest(logger, "GET", "/api/query.json", 200, 1.5,
			slog.String("request_id", "abc"))

		output := buf.String()
		assert.Contains(t, output, `"msg":"http_request"`)
		assert.Contains(t, output, `"method":"GET"`)
		assert.Contains(t, output, `"path":"/api/query.json"`)
		assert.Contains(t, output, `"status":200`)
		assert.Contains(t, output, `"duration_ms":1.5`)
		assert.Contains(t, output, `"request_id":"abc"`)
	})
}

func TestContextLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewStructuredLogger(&buf, slog.LevelInfo)

	ctx := WithLogger(context.Background(), logger)
	FromContext(ctx).Info("from context")
	assert.Contains(t, buf.String(), "from context")

	assert.Equal(t, slog.Default(), FromContext(context.Background()))
}
