// Package logger wires the process-wide zap logger.
package logger

import (
	"fmt"

	"go.uber.org/zap"
)

// Init builds a zap logger for the given level and installs it as the
// global logger.
func Init(level string) error {
	cfg := zap.NewProductionConfig()

	switch level {
	case "debug":
		cfg.Level.SetLevel(zap.DebugLevel)
	case "info":
		cfg.Level.SetLevel(zap.InfoLevel)
	case "warn":
		cfg.Level.SetLevel(zap.WarnLevel)
	case "error":
		cfg.Level.SetLevel(zap.ErrorLevel)
	default:
		cfg.Level.SetLevel(zap.InfoLevel)
	}

	lgr, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}

	zap.ReplaceGlobals(lgr)
	return nil
}
