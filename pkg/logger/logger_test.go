package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNewReopenableWriteSyncer(t *testing.T) {
	logFilePath := filepath.Join(t.TempDir(), "ritual.log")

	t.Run("creates the log file", func(t *testing.T) {
		ws, err := NewReopenableWriteSyncer(logFilePath)
		require.NoError(t, err)
		require.NotNil(t, ws)
		defer ws.Close()

		_, err = os.Stat(logFilePath)
		assert.NoError(t, err)
	})
	t.Run("path is a directory", func(t *testing.T) {
		ws, err := NewReopenableWriteSyncer(t.TempDir())
		assert.Error(t, err)
		assert.Nil(t, ws)
	})
}

func TestReopenableWriteSyncer_Reload(t *testing.T) {
	tempDir := t.TempDir()
	logFilePath := filepath.Join(tempDir, "ritual.log")
	rotatedPath := filepath.Join(tempDir, "ritual.log.1")

	ws, err := NewReopenableWriteSyncer(logFilePath)
	require.NoError(t, err)
	defer ws.Close()

	_, err = ws.Write([]byte("before rotate\n"))
	require.NoError(t, err)

	require.NoError(t, os.Rename(logFilePath, rotatedPath))
	require.NoError(t, ws.Reload())

	_, err = ws.Write([]byte("after rotate\n"))
	require.NoError(t, err)
	ws.Sync()

	rotated, err := os.ReadFile(rotatedPath)
	require.NoError(t, err)
	assert.Equal(t, "before rotate\n", string(rotated))

	current, err := os.ReadFile(logFilePath)
	require.NoError(t, err)
	assert.Equal(t, "after rotate\n", string(current))
}

func TestNewLogger(t *testing.T) {
	ws, err := NewReopenableWriteSyncer(os.DevNull)
	require.NoError(t, err)
	defer ws.Close()

	testCases := []struct {
		name          string
		logLevel      string
		expectedLevel zapcore.Level
	}{
		{"debug level", "debug", zap.DebugLevel},
		{"info level", "info", zap.InfoLevel},
		{"warn level", "warn", zap.WarnLevel},
		{"error level", "error", zap.ErrorLevel},
		{"fatal level", "fatal", zap.FatalLevel},
		{"unknown level falls back to info", "verbose", zap.InfoLevel},
		{"empty level falls back to info", "", zap.InfoLevel},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			logger := NewLogger(tc.logLevel, ws)
			require.NotNil(t, logger)
			assert.True(t, logger.Core().Enabled(tc.expectedLevel))
		})
	}
}
