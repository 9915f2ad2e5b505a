// Package logging builds the zap loggers used by the commands.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ParseLevel maps a level name to a zap level. DEBUG in the environment
// forces debug output.
func ParseLevel(name string) zapcore.Level {
	if os.Getenv("DEBUG") != "" {
		return zapcore.DebugLevel
	}
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(strings.ToLower(strings.TrimSpace(name)))); err != nil {
		return zapcore.InfoLevel
	}
	return lvl
}

// New returns a console logger writing to w.
func New(w io.Writer, level zapcore.Level, color bool) *zap.Logger {
	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if color {
		encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig), zapcore.Lock(zapcore.AddSync(w)), level)
	return zap.New(core, zap.AddCaller())
}

// Stderr logs to standard error. The terminal must not be owned by a UI.
func Stderr(level string) *zap.Logger {
	return New(os.Stderr, ParseLevel(level), true)
}

// File appends to path. An empty path yields a no-op logger. The returned
// close function flushes and closes the file.
func File(path, level string) (*zap.Logger, func(), error) {
	if strings.TrimSpace(path) == "" {
		return zap.NewNop(), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "logging: open %s", path)
	}
	log := New(f, ParseLevel(level), false)
	return log, func() {
		_ = log.Sync()
		_ = f.Close()
	}, nil
}
