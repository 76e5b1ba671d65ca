// Package logging builds the zap logger. The terminal is owned by the UI, so
// logs only go to a file; without one every call is a no-op.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Config struct {
	Level string // "debug", "info", "warn", "error"
	File  string
}

func New(cfg Config) (*zap.Logger, error) {
	if strings.TrimSpace(cfg.File) == "" {
		return zap.NewNop(), nil
	}

	level, err := parseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}

	development := level == zapcore.DebugLevel
	zapCfg := zap.Config{
		Level:             zap.NewAtomicLevelAt(level),
		Development:       development,
		Encoding:          encodingFormat(development),
		EncoderConfig:     encoderConfig(development),
		OutputPaths:       []string{cfg.File},
		ErrorOutputPaths:  []string{cfg.File},
		DisableStacktrace: !development,
	}
	logger, err := zapCfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}

func parseLevel(level string) (zapcore.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zapcore.DebugLevel, nil
	case "", "info":
		return zapcore.InfoLevel, nil
	case "warn", "warning":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	default:
		return zapcore.InfoLevel, fmt.Errorf("unknown log level %q", level)
	}
}

func encodingFormat(development bool) string {
	if development {
		return "console"
	}
	return "json"
}

func encoderConfig(development bool) zapcore.EncoderConfig {
	if development {
		cfg := zap.NewDevelopmentEncoderConfig()
		cfg.EncodeLevel = zapcore.CapitalLevelEncoder
		return cfg
	}
	cfg := zap.NewProductionEncoderConfig()
	cfg.TimeKey = "timestamp"
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	return cfg
}
