// Package logging builds the zap logger shared by the commands.
// Diagnostics go to stderr so they never mix with calculation output.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config returns the logger configuration. Verbose enables debug logs of every calculation.
func Config(verbose bool) zap.Config {
	level := zapcore.WarnLevel
	if verbose {
		level = zapcore.DebugLevel
	}

	return zap.Config{
		Level:       zap.NewAtomicLevelAt(level),
		Development: false,
		Encoding:    "console",
		EncoderConfig: zapcore.EncoderConfig{
			TimeKey:        "time",
			LevelKey:       "level",
			NameKey:        "logger",
			CallerKey:      "caller",
			MessageKey:     "msg",
			StacktraceKey:  "stacktrace",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeLevel:    zapcore.LowercaseLevelEncoder,
			EncodeTime:     zapcore.ISO8601TimeEncoder,
			EncodeDuration: zapcore.SecondsDurationEncoder,
			EncodeCaller:   zapcore.ShortCallerEncoder,
		},
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}
}

// New builds the logger named "ojcalc".
func New(verbose bool) (*zap.Logger, error) {
	log, err := Config(verbose).Build()
	if err != nil {
		return nil, err
	}
	return log.Named("ojcalc"), nil
}
