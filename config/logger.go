package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger builds a zap logger from cfg. A non-empty levelOverride
// (usually a CLI flag) wins over cfg.Level.
func NewLogger(cfg LoggingConfig, levelOverride string) (*zap.Logger, error) {
	level := cfg.Level
	if levelOverride != "" {
		level = levelOverride
	}
	if level == "" {
		level = "info"
	}

	var zapLevel zapcore.Level
	switch strings.ToLower(level) {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn", "warning":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		return nil, fmt.Errorf("invalid log level: %s", level)
	}

	format := cfg.Format
	if format == "" {
		format = "json"
	}

	var zc zap.Config
	switch format {
	case "console":
		zc = zap.NewDevelopmentConfig()
	case "json":
		zc = zap.NewProductionConfig()
	default:
		return nil, fmt.Errorf("invalid log format: %s", format)
	}
	zc.Level = zap.NewAtomicLevelAt(zapLevel)

	if cfg.OutputFile != "" {
		if dir := filepath.Dir(cfg.OutputFile); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create log directory %s: %w", dir, err)
			}
		}
		zc.OutputPaths = []string{cfg.OutputFile}
		zc.ErrorOutputPaths = []string{cfg.OutputFile}
	}

	return zc.Build()
}
