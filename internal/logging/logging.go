// Package logging wires the process-wide zap logger.
package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Logger is the global logger instance.
	Logger *zap.Logger

	// Sugar is the sugared logger for printf-style call sites.
	Sugar *zap.SugaredLogger
)

// Initialize sets up the global logger. level and format come from
// LOG_LEVEL / LOG_FORMAT; format "console" is meant for local development,
// everything else logs JSON.
func Initialize(level, format string) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var encoder zapcore.Encoder
	if format == "console" {
		encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	} else {
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	}

	core := zapcore.NewCore(encoder, zapcore.AddSync(os.Stdout), lvl)
	Logger = zap.New(core, zap.AddCaller())
	Sugar = Logger.Sugar()
}

// InitializeFromEnv reads LOG_LEVEL and LOG_FORMAT.
func InitializeFromEnv() {
	Initialize(os.Getenv("LOG_LEVEL"), os.Getenv("LOG_FORMAT"))
}

// Sync flushes buffered log entries.
func Sync() {
	if Logger != nil {
		_ = Logger.Sync()
	}
}

func init() {
	InitializeFromEnv()
}
