package logger

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds logger settings.
type Config struct {
	Level    string // debug, info, warn, error
	Encoding string // json or console
}

// New builds a zap.Logger from the configuration.
func New(cfg Config) (*zap.Logger, error) {
	level := zap.NewAtomicLevel()
	logLevel := strings.ToLower(cfg.Level)
	if logLevel == "" {
		logLevel = "info"
	}
	if err := level.UnmarshalText([]byte(logLevel)); err != nil {
		// The logger does not exist yet, so the complaint goes to stderr.
		fmt.Fprintf(os.Stderr, "Invalid log level '%s', using 'info'. Error: %v\n", cfg.Level, err)
		level.SetLevel(zap.InfoLevel)
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "timestamp"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	encoding := strings.ToLower(cfg.Encoding)
	if encoding != "console" && encoding != "json" {
		encoding = "json"
	}

	zapConfig := zap.Config{
		Level:             level,
		Development:       false,
		DisableCaller:     true,
		DisableStacktrace: true,
		Encoding:          encoding,
		EncoderConfig:     encoderCfg,
		OutputPaths:       []string{"stdout"},
		ErrorOutputPaths:  []string{"stderr"},
	}

	logger, err := zapConfig.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}

	return logger, nil
}
