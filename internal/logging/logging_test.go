package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name       string
		format     string
		level      string
		logLevel   slog.Level // level to log at
		wantOutput bool
		wantJSON   bool
	}{
		{"text format info level", "text", "info", slog.LevelInfo, true, false},
		{"json format info level", "json", "info", slog.LevelInfo, true, true},
		{"debug level logs debug", "text", "debug", slog.LevelDebug, true, false},
		{"info level filters debug", "text", "info", slog.LevelDebug, false, false},
		{"warn level filters info", "text", "warn", slog.LevelInfo, false, false},
		{"error level filters warn", "text", "error", slog.LevelWarn, false, false},
		{"unknown format defaults to text", "banana", "info", slog.LevelInfo, true, false},
		{"unknown level defaults to info", "text", "banana", slog.LevelDebug, false, false},
		{"case insensitive", "JSON", "DEBUG", slog.LevelDebug, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := New(tt.format, tt.level, &buf)
			logger.Log(context.Background(), tt.logLevel, "expand", "vertex", "S")

			output := strings.TrimSpace(buf.String())
			assert.Equal(t, tt.wantOutput, output != "", "output=%q", output)

			if tt.wantJSON && output != "" {
				var m map[string]any
				require.NoError(t, json.Unmarshal([]byte(output), &m))
				assert.Equal(t, "S", m["vertex"])
			}
		})
	}
}

func TestNew_NilWriter(t *testing.T) {
	// Should not panic with nil writer (defaults to stderr).
	assert.NotNil(t, New("text", "info", nil))
}
