// Package logging builds the zap logger shared by the calculator.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Rorical/RoriCalc/internal/config"
)

// Target selects where log output goes.
type Target int

const (
	// Stderr suits one-shot commands.
	Stderr Target = iota
	// File keeps the terminal clear for the interactive keypad.
	File
)

// New builds a production logger at the configured level.
func New(cfg config.LoggingConfig, target Target) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	if target == File && cfg.File != "" {
		zc.OutputPaths = []string{cfg.File}
		zc.ErrorOutputPaths = []string{cfg.File}
	}

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}
