// Package logx is a thin leveled logging facade over zap. Packages log
// through it so the backend stays swappable and tests stay quiet.
package logx

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Level = zapcore.Level

const (
	LevelDebug = zapcore.DebugLevel
	LevelInfo  = zapcore.InfoLevel
	LevelWarn  = zapcore.WarnLevel
	LevelError = zapcore.ErrorLevel
)

var (
	atomicLevel = zap.NewAtomicLevelAt(LevelInfo)
	sugar       *zap.SugaredLogger
)

func init() {
	cfg := zap.NewProductionConfig()
	cfg.Level = atomicLevel
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	logger, _ := cfg.Build(zap.AddCallerSkip(1))
	sugar = logger.Sugar()
}

// SetLevel adjusts the global log level at runtime
func SetLevel(level Level) {
	atomicLevel.SetLevel(level)
}

// ParseLevel maps a config string to a level, defaulting to info
func ParseLevel(s string) Level {
	var l zapcore.Level
	if err := l.Set(s); err != nil {
		return LevelInfo
	}
	return l
}

func Debug(args ...any)                 { sugar.Debug(args...) }
func Debugf(format string, args ...any) { sugar.Debugf(format, args...) }
func Info(args ...any)                  { sugar.Info(args...) }
func Infof(format string, args ...any)  { sugar.Infof(format, args...) }
func Warn(args ...any)                  { sugar.Warn(args...) }
func Warnf(format string, args ...any)  { sugar.Warnf(format, args...) }
func Error(args ...any)                 { sugar.Error(args...) }
func Errorf(format string, args ...any) { sugar.Errorf(format, args...) }
func Fatal(args ...any)                 { sugar.Fatal(args...) }
func Fatalf(format string, args ...any) { sugar.Fatalf(format, args...) }
