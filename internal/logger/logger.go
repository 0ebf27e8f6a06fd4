// Package logger holds the process-wide structured logger.
package logger

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Verbosity levels for the repeated -v flag.
const (
	VerbosityQuiet = 0 // warnings and errors only
	VerbosityInfo  = 1 // -v: workflow steps
	VerbosityDebug = 2 // -vv: resolved settings and load steps
)

var (
	// Logger is the global logger. It is a no-op until Initialize is called.
	Logger *zap.SugaredLogger
	// JSONOutput reports whether the last Initialize selected JSON encoding.
	JSONOutput bool
)

func init() {
	Logger = zap.NewNop().Sugar()
}

// Initialize installs a logger writing to stderr. Stdout is reserved for
// command output.
func Initialize(verbosity int, jsonOutput bool) error {
	return InitializeWithWriter(os.Stderr, verbosity, jsonOutput)
}

// InitializeWithWriter installs a logger writing to w.
func InitializeWithWriter(w io.Writer, verbosity int, jsonOutput bool) error {
	JSONOutput = jsonOutput

	var encoder zapcore.Encoder
	if jsonOutput {
		encoder = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	} else {
		cfg := zap.NewDevelopmentEncoderConfig()
		cfg.TimeKey = ""
		cfg.CallerKey = ""
		encoder = zapcore.NewConsoleEncoder(cfg)
	}

	core := zapcore.NewCore(encoder, zapcore.AddSync(w), VerbosityToLevel(verbosity))
	Logger = zap.New(core).Sugar()

	return nil
}

// VerbosityToLevel maps the -v count to a zap level.
//
//	0     -> WarnLevel
//	1     -> InfoLevel
//	2+    -> DebugLevel
func VerbosityToLevel(verbosity int) zapcore.Level {
	switch {
	case verbosity <= VerbosityQuiet:
		return zapcore.WarnLevel
	case verbosity == VerbosityInfo:
		return zapcore.InfoLevel
	default:
		return zapcore.DebugLevel
	}
}

// Cleanup flushes buffered entries.
func Cleanup() {
	if Logger != nil {
		_ = Logger.Sync()
	}
}
