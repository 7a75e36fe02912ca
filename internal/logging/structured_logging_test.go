package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLogLine(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()
	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNewStructuredLoggerWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewStructuredLogger(&buf, slog.LevelInfo)

	logger.Info("hello", slog.String("component", "test"))

	entry := decodeLogLine(t, &buf)
	assert.Equal(t, "hello", entry["msg"])
	assert.Equal(t, "test", entry["component"])
}

func TestLogErrorIncludesErrorAttr(t *testing.T) {
	var buf bytes.Buffer
	logger := NewStructuredLogger(&buf, slog.LevelInfo)

	LogError(logger, "search failed", errors.New("boom"), slog.String("from", "NDLS"))

	entry := decodeLogLine(t, &buf)
	assert.Equal(t, "search failed", entry["msg"])
	assert.Equal(t, "boom", entry["error"])
	assert.Equal(t, "NDLS", entry["from"])
}

func TestLogErrorNilLoggerDoesNotPanic(t *testing.T) {
	assert.NotPanics(t, func() {
		LogError(nil, "ignored", errors.New("boom"))
	})
}

func TestLogOperationSkipsZeroDuration(t *testing.T) {
	var buf bytes.Buffer
	logger := NewStructuredLogger(&buf, slog.LevelInfo)

	LogOperation(logger, "reload_schedule",
		slog.Duration("duration", 0),
		slog.Int("trains", 12))

	entry := decodeLogLine(t, &buf)
	assert.Equal(t, "reload_schedule", entry["msg"])
	assert.NotContains(t, entry, "duration")
	assert.Equal(t, float64(12), entry["trains"])
}

func TestLogOperationKeepsNonZeroDuration(t *testing.T) {
	var buf bytes.Buffer
	logger := NewStructuredLogger(&buf, slog.LevelInfo)

	LogOperation(logger, "reload_schedule", slog.Duration("duration", 5*time.Millisecond))

	entry := decodeLogLine(t, &buf)
	assert.Contains(t, entry, "duration")
}

func TestLogScheduleAnomaly(t *testing.T) {
	var buf bytes.Buffer
	logger := NewStructuredLogger(&buf, slog.LevelInfo)

	LogScheduleAnomaly(logger, "12951", "non-increasing stop sequence")

	entry := decodeLogLine(t, &buf)
	assert.Equal(t, "schedule_anomaly", entry["msg"])
	assert.Equal(t, "12951", entry["train"])
	assert.Equal(t, "non-increasing stop sequence", entry["detail"])
	assert.Equal(t, "WARN", entry["level"])
}

func TestContextLoggerRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	logger := NewStructuredLogger(&buf, slog.LevelInfo)

	ctx := WithLogger(context.Background(), logger)
	assert.Same(t, logger, FromContext(ctx))
}

func TestFromContextFallsBackToDefault(t *testing.T) {
	assert.NotNil(t, FromContext(context.Background()))
}

func TestWrapStartupError(t *testing.T) {
	var buf bytes.Buffer
	logger := NewStructuredLogger(&buf, slog.LevelInfo)

	cause := errors.New("dial failed")
	err := WrapStartupError(logger, "opening schedule store", cause)

	require.Error(t, err)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "opening schedule store")
}
