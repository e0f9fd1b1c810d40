package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in  string
		exp slog.Level
	}{
		{in: "debug", exp: slog.LevelDebug},
		{in: "INFO", exp: slog.LevelInfo},
		{in: "warning", exp: slog.LevelWarn},
		{in: "error", exp: slog.LevelError},
		{in: "", exp: slog.LevelInfo},
		{in: "verbose", exp: slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tt.exp, ParseLevel(tt.in))
		})
	}
}

func TestNew_JSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	New(&buf, "info", "json").Info("hello", slog.String("path", "/cities"))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "hello", entry["msg"])
	require.Equal(t, "/cities", entry["path"])
}

func TestNew_TextFiltersBelowLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger := New(&buf, "warn", "text")
	logger.Info("dropped")
	logger.Warn("kept")

	require.NotContains(t, buf.String(), "dropped")
	require.Contains(t, buf.String(), "msg=kept")
}
