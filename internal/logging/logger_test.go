package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in       string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"info", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}
	for _, tt := range tests {
		if got := parseLevel(tt.in); got != tt.expected {
			t.Errorf("parseLevel(%q) = %v, expected %v", tt.in, got, tt.expected)
		}
	}
}

func TestSetupJSONWithRunID(t *testing.T) {
	prev := slog.Default()
	defer slog.SetDefault(prev)

	var buf bytes.Buffer
	Setup(&buf, "warn", "json")

	ctx := WithRunID(context.Background(), "run-1")
	WithFields(ctx, "file", "a.csv").Info("dropped")
	WithFields(ctx, "file", "a.csv").Warn("kept")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry), "exactly one JSON line expected: %s", buf.String())
	assert.Equal(t, "kept", entry["msg"])
	assert.Equal(t, "run-1", entry["run_id"])
	assert.Equal(t, "a.csv", entry["file"])
}

func TestFromContextWithoutRunID(t *testing.T) {
	prev := slog.Default()
	defer slog.SetDefault(prev)

	var buf bytes.Buffer
	Setup(&buf, "info", "text")
	FromContext(context.Background()).Info("hello")

	assert.Contains(t, buf.String(), "msg=hello")
	assert.NotContains(t, buf.String(), "run_id")
	assert.Equal(t, "", RunID(context.Background()))
}
