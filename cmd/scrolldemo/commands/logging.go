package commands

import (
	"fmt"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// newLogger builds a zap-backed logr.Logger writing to path. The terminal
// belongs to the UI, so without a path logs are discarded. Verbosity n
// enables logr V(n), which zap sees as level -n.
func newLogger(path string, verbosity int) (logr.Logger, func(), error) {
	if path == "" {
		return logr.Discard(), func() {}, nil
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	cfg.Level = zap.NewAtomicLevelAt(zapcore.Level(-verbosity))
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	zl, err := cfg.Build(zap.AddCaller())
	if err != nil {
		return logr.Discard(), func() {}, fmt.Errorf("failed to open log file %s: %w", path, err)
	}
	return zapr.NewLogger(zl), func() { _ = zl.Sync() }, nil
}
