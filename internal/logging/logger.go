// Package logging builds the zap logger used for diagnostics. Diagnostics
// always go to stderr so that stdout carries nothing but the report.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/pranshuparmar/ipcs/internal/config"
)

// New creates a logger from the ipcs configuration.
func New(cfg *config.Config) (*zap.Logger, error) {
	level, err := parseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	zapCfg := zap.Config{
		Level:             zap.NewAtomicLevelAt(level),
		Development:       cfg.LogDev,
		Encoding:          "console",
		EncoderConfig:     encoderConfig(cfg.LogDev),
		OutputPaths:       []string{"stderr"},
		ErrorOutputPaths:  []string{"stderr"},
		DisableCaller:     !cfg.LogDev,
		DisableStacktrace: true,
	}

	return zapCfg.Build()
}

func parseLevel(level string) (zapcore.Level, error) {
	var l zapcore.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return zapcore.WarnLevel, err
	}
	return l, nil
}

func encoderConfig(development bool) zapcore.EncoderConfig {
	enc := zapcore.EncoderConfig{
		LevelKey:       "L",
		NameKey:        "N",
		MessageKey:     "M",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
	}
	if development {
		enc.TimeKey = "T"
		enc.CallerKey = "C"
		enc.EncodeLevel = zapcore.CapitalColorLevelEncoder
		enc.EncodeTime = zapcore.ISO8601TimeEncoder
		enc.EncodeCaller = zapcore.ShortCallerEncoder
	}
	return enc
}
