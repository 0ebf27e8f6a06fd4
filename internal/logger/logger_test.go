package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestVerbosityToLevel(t *testing.T) {
	tests := []struct {
		verbosity int
		want      zapcore.Level
	}{
		{verbosity: -1, want: zapcore.WarnLevel},
		{verbosity: 0, want: zapcore.WarnLevel},
		{verbosity: 1, want: zapcore.InfoLevel},
		{verbosity: 2, want: zapcore.DebugLevel},
		{verbosity: 7, want: zapcore.DebugLevel},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, VerbosityToLevel(tt.verbosity), "verbosity %d", tt.verbosity)
	}
}

func TestInitializeWithWriter_Console(t *testing.T) {
	t.Cleanup(func() { Logger = zap.NewNop().Sugar() })

	var buf bytes.Buffer
	require.NoError(t, InitializeWithWriter(&buf, VerbosityInfo, false))

	Logger.Debugw("hidden")
	Logger.Infow("rendered objects", "count", 3)

	out := buf.String()
	assert.False(t, JSONOutput)
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "rendered objects")
	assert.Contains(t, out, `"count": 3`)
}

func TestInitializeWithWriter_JSON(t *testing.T) {
	t.Cleanup(func() { Logger = zap.NewNop().Sugar() })

	var buf bytes.Buffer
	require.NoError(t, InitializeWithWriter(&buf, VerbosityDebug, true))

	Logger.Debugw("dispatch", "index", 1)

	line := strings.TrimSpace(buf.String())
	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(line), &entry))
	assert.True(t, JSONOutput)
	assert.Equal(t, "dispatch", entry["msg"])
	assert.EqualValues(t, 1, entry["index"])
}

func TestDefaultLoggerIsNop(t *testing.T) {
	assert.NotNil(t, Logger)
	assert.NotPanics(t, func() {
		Logger.Infow("discarded")
		Cleanup()
	})
}
