package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger wraps a sugared zap logger so callers only import this package.
type Logger struct {
	*zap.SugaredLogger
}

// NewLogger builds a console logger writing to stderr. With verbose set,
// debug-level output is enabled.
func NewLogger(verbose bool) *Logger {
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.DisableStacktrace = true
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	} else {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	}

	logger, err := cfg.Build()
	if err != nil {
		// zap's development config cannot fail to build with the
		// settings above; fall back to a no-op logger anyway.
		logger = zap.NewNop()
	}

	return &Logger{logger.Sugar()}
}
