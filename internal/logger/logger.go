// Package logger builds the zap logger: JSON production output by
// default, a colorized console in the local env.
package logger

import (
	"os"
	"strings"

	"github.com/fatih/color"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Setup returns a logger for the given environment and level string.
func Setup(env, level string) *zap.Logger {
	zapLevel := parseLogLevel(level)

	if strings.ToLower(strings.TrimSpace(env)) == "local" {
		return consoleLogger(zapLevel)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapLevel)

	log, err := cfg.Build()
	if err != nil {
		panic(err)
	}
	return log
}

func consoleLogger(level zapcore.Level) *zap.Logger {
	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.EncodeLevel = colorLevelEncoder
	encCfg.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.Lock(os.Stdout),
		level,
	)
	return zap.New(core, zap.AddCaller())
}

func colorLevelEncoder(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	var paint func(a ...interface{}) string
	switch l {
	case zapcore.DebugLevel:
		paint = color.New(color.FgMagenta).SprintFunc()
	case zapcore.InfoLevel:
		paint = color.New(color.FgBlue).SprintFunc()
	case zapcore.WarnLevel:
		paint = color.New(color.FgYellow).SprintFunc()
	case zapcore.ErrorLevel, zapcore.DPanicLevel, zapcore.PanicLevel, zapcore.FatalLevel:
		paint = color.New(color.FgRed).SprintFunc()
	default:
		paint = color.New(color.FgWhite).SprintFunc()
	}
	enc.AppendString(paint(l.CapitalString()))
}

func parseLogLevel(level string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
