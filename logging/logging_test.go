package logging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/0xalexb/srcfg/logging"

	"github.com/stretchr/testify/require"
)

func TestNewLogger_JSONByDefault(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger := logging.NewLogger(logging.LoggerConfig{}, &buf)

	logger.Info("import merged", slog.String("target", "base.srcfg"))

	var logEntry map[string]any

	err := json.Unmarshal(buf.Bytes(), &logEntry)
	require.NoError(t, err, "output should be valid JSON")
	require.Equal(t, "import merged", logEntry["msg"])
	require.Equal(t, "base.srcfg", logEntry["target"])
	require.Equal(t, "INFO", logEntry["level"], "default level should be INFO")
}

func TestNewLogger_TextFormat(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger := logging.NewLogger(logging.LoggerConfig{Level: "debug", Format: "TEXT"}, &buf)

	logger.Debug("looking up section", slog.String("path", "a.b"))

	out := buf.String()
	require.Contains(t, out, "level=DEBUG")
	require.Contains(t, out, `msg="looking up section"`)
	require.Contains(t, out, "path=a.b")
}

func TestNewLogger_Levels(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name        string
		configLevel string
		logLevel    slog.Level
		shouldLog   bool
	}{
		{name: "debug logs debug", configLevel: "DEBUG", logLevel: slog.LevelDebug, shouldLog: true},
		{name: "lowercase is accepted", configLevel: "debug", logLevel: slog.LevelDebug, shouldLog: true},
		{name: "warning alias", configLevel: "WARNING", logLevel: slog.LevelWarn, shouldLog: true},
		{name: "info drops debug", configLevel: "INFO", logLevel: slog.LevelDebug, shouldLog: false},
		{name: "error drops warn", configLevel: "ERROR", logLevel: slog.LevelWarn, shouldLog: false},
		{name: "invalid falls back to info", configLevel: "LOUD", logLevel: slog.LevelInfo, shouldLog: true},
	}

	for _, testCase := range testCases {
		testCase := testCase
		for _, format := range []string{logging.FormatJSON, logging.FormatText} {
			format := format
			t.Run(testCase.name+"/"+format, func(t *testing.T) {
				t.Parallel()

				var buf bytes.Buffer

				config := logging.LoggerConfig{Level: testCase.configLevel, Format: format}
				logger := logging.NewLogger(config, &buf)

				logger.Log(context.Background(), testCase.logLevel, "test message")

				if testCase.shouldLog {
					require.NotEmpty(t, buf.String(), "log should be written")
				} else {
					require.Empty(t, buf.String(), "log should not be written")
				}
			})
		}
	}
}

func TestDiscard(t *testing.T) {
	t.Parallel()

	logger := logging.Discard()

	require.False(t, logger.Enabled(context.Background(), slog.LevelError))
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	require.Equal(t, slog.LevelWarn, logging.ParseLevel("warning"))
	require.Equal(t, slog.LevelError, logging.ParseLevel("Error"))
	require.Equal(t, slog.LevelInfo, logging.ParseLevel(""))
}
