package main

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// newLogger returns a console logger on stderr. Stdout stays free for
// compiled CSS and check reports.
func newLogger() *zap.Logger {
	if getBoolWithFallback("quiet", false) {
		return zap.NewNop()
	}

	level := zapcore.InfoLevel
	if getBoolWithFallback("verbose", false) {
		level = zapcore.DebugLevel
	}

	ec := zap.NewDevelopmentEncoderConfig()
	ec.EncodeCaller = nil
	ec.TimeKey = zapcore.OmitKey
	if getBoolWithFallback("color", false) {
		ec.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		ec.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(ec), zapcore.Lock(os.Stderr), level)
	return zap.New(core)
}
