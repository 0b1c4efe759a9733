package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStructuredLoggerEmitsJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewStructuredLogger(&buf, slog.LevelInfo)

	logger.Info("snapshot loaded", "tables", 6)

	var record map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "snapshot loaded", record["msg"])
	assert.Equal(t, float64(6), record["tables"])
}

func TestLogErrorIncludesError(t *testing.T) {
	var buf bytes.Buffer
	logger := NewStructuredLogger(&buf, slog.LevelInfo)

	LogError(logger, "load failed", errors.New("missing table"), slog.String("table", "births"))

	var record map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "load failed", record["msg"])
	assert.Equal(t, "missing table", record["error"])
	assert.Equal(t, "births", record["table"])
}

func TestLogErrorNilLoggerIsNoOp(t *testing.T) {
	assert.NotPanics(t, func() {
		LogError(nil, "ignored", errors.New("ignored"))
	})
}

func TestLogHTTPRequest(t *testing.T) {
	var buf bytes.Buffer
	logger := NewStructuredLogger(&buf, slog.LevelInfo)

	LogHTTPRequest(logger, "GET", "/api/demand/subzones.json", 200, 1.5)

	var record map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "http_request", record["msg"])
	assert.Equal(t, "GET", record["method"])
	assert.Equal(t, float64(200), record["status"])
}

func TestLoggerContextRoundTrip(t *testing.T) {
	logger := NewStructuredLogger(&bytes.Buffer{}, slog.LevelInfo)
	ctx := WithLogger(context.Background(), logger)

	assert.Same(t, logger, FromContext(ctx))
	assert.NotNil(t, FromContext(context.Background()))
}
