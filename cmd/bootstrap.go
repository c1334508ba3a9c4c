package cmd

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// bootstrapLogger 启动阶段日志器
// Used before the config file is read and the main logger exists
var bootstrapLogger = newBootstrapLogger()

// newBootstrapLogger builds a colored console logger on stderr.
// LOG_LEVEL (debug / info / warn / error) sets the level; DEBUG=1 is a shortcut for debug.
func newBootstrapLogger() *zap.Logger {
	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	level := zapcore.InfoLevel
	if os.Getenv("DEBUG") != "" {
		level = zapcore.DebugLevel
	}
	if raw := os.Getenv("LOG_LEVEL"); raw != "" {
		if l, err := zapcore.ParseLevel(raw); err == nil {
			level = l
		}
	}

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig), zapcore.Lock(os.Stderr), level)
	return zap.New(core, zap.AddCaller()).Named("bootstrap")
}

// BootstrapLogger 获取启动阶段日志器
func BootstrapLogger() *zap.Logger {
	return bootstrapLogger
}
