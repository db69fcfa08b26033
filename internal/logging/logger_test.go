package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_WritesJSONWithTimestampKey(t *testing.T) {
	var buf bytes.Buffer
	loc := time.FixedZone("UTC+7", 7*60*60)
	logger := New(&buf, loc, slog.LevelInfo)

	logger.Info("server_started", "component", "http", "port", "8080")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "server_started", entry["msg"])
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "http", entry["component"])
	_, hasTime := entry["time"]
	assert.False(t, hasTime)

	ts, ok := entry["ts"].(string)
	require.True(t, ok)
	parsed, err := time.Parse(time.RFC3339Nano, ts)
	require.NoError(t, err)
	_, offset := parsed.Zone()
	assert.Equal(t, 7*60*60, offset)
}

func TestNew_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, nil, slog.LevelWarn)

	logger.Info("dropped")
	assert.Zero(t, buf.Len())

	logger.Warn("kept")
	assert.Contains(t, buf.String(), "kept")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
	assert.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}

func TestLoadLocation(t *testing.T) {
	assert.Equal(t, time.UTC, LoadLocation(""))
	assert.Equal(t, time.UTC, LoadLocation("Not/AZone"))
	assert.Equal(t, "UTC", LoadLocation("UTC").String())
}
