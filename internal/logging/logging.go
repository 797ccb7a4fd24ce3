// Package logging builds the zap logger shared by the store, services and commands.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options controls logger construction.
type Options struct {
	// Verbose enables human-readable debug logging on stderr.
	Verbose bool
	// File, when set, receives JSON logs at Level.
	File string
	// Level is the minimum level for File (debug, info, warn, error).
	Level string
}

// New returns a logger for opts. With neither Verbose nor File set, the
// logger discards everything so command output stays clean.
func New(opts Options) (*zap.Logger, error) {
	switch {
	case opts.Verbose:
		cfg := zap.NewDevelopmentConfig()
		cfg.OutputPaths = []string{"stderr"}
		cfg.DisableStacktrace = true
		if opts.File != "" {
			cfg.OutputPaths = append(cfg.OutputPaths, opts.File)
		}
		return build(cfg)

	case opts.File != "":
		level, err := zapcore.ParseLevel(opts.Level)
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", opts.Level, err)
		}
		cfg := zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(level)
		cfg.OutputPaths = []string{opts.File}
		cfg.ErrorOutputPaths = []string{opts.File}
		cfg.Sampling = nil
		return build(cfg)

	default:
		return zap.NewNop(), nil
	}
}

func build(cfg zap.Config) (*zap.Logger, error) {
	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return logger, nil
}
