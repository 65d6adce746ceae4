package main

import (
	"log"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	Logger      *zap.SugaredLogger
	AtomicLevel = zap.NewAtomicLevelAt(zap.InfoLevel)
)

func init() {
	Logger = NewLogger(StringEnv("LOG_LEVEL", "INFO"), AtomicLevel)
}

// NewLogger builds a console logger on stderr; stdout is reserved for rows.
// An unknown level falls back to INFO.
func NewLogger(level string, atomicLevel zap.AtomicLevel) *zap.SugaredLogger {
	parsed, err := zapcore.ParseLevel(level)
	if err != nil {
		log.Printf("failed to parse log level, fallback to INFO: %v", err)
		parsed = zapcore.InfoLevel
	}
	atomicLevel.SetLevel(parsed)

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.MessageKey = "M"
	encoderConfig.LevelKey = "L"
	encoderConfig.TimeKey = "T"
	encoderConfig.NameKey = "N"
	encoderConfig.CallerKey = zapcore.OmitKey
	encoderConfig.StacktraceKey = zapcore.OmitKey
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeDuration = zapcore.StringDurationEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.Lock(os.Stderr),
		atomicLevel,
	)
	return zap.New(core).Sugar()
}
