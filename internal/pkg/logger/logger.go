// Package logger builds the zap logger shared by every component.
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// LogFileName is the name of the rotated log file inside Options.Path.
const LogFileName = "tailor.log"

// Options configure New.
type Options struct {
	// Level is one of debug, info, warn, error. Unknown values mean info.
	Level string
	// Path enables a rotated log file in that directory.
	Path string
	// Env "test" returns a no-op logger.
	Env string
	// Output receives console output; nil means os.Stdout.
	Output io.Writer
}

// New returns a console logger, teed into a lumberjack-rotated file when
// opts.Path is set.
func New(opts Options) (*zap.Logger, error) {
	if opts.Env == "test" {
		return zap.NewNop(), nil
	}

	level := ParseLevel(opts.Level)
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.MessageKey = "msg"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoder := zapcore.NewConsoleEncoder(encCfg)

	out := opts.Output
	if out == nil {
		out = os.Stdout
	}
	core := zapcore.NewCore(encoder, zapcore.AddSync(out), level)

	if opts.Path != "" {
		if err := os.MkdirAll(opts.Path, 0o755); err != nil {
			return nil, fmt.Errorf("create log directory: %w", err)
		}
		file := zapcore.AddSync(&lumberjack.Logger{
			Filename:   filepath.Join(opts.Path, LogFileName),
			MaxSize:    100, // megabytes
			MaxBackups: 3,
			MaxAge:     7, // days
			LocalTime:  true,
			Compress:   true,
		})
		core = zapcore.NewTee(core, zapcore.NewCore(encoder, file, level))
	}

	return zap.New(core,
		zap.AddCaller(),
		zap.AddStacktrace(zap.ErrorLevel),
		zap.Fields(zap.Int("pid", os.Getpid())),
	), nil
}

// ParseLevel maps a level name to a zap level, defaulting to info.
func ParseLevel(raw string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		return zap.DebugLevel
	case "warn", "warning":
		return zap.WarnLevel
	case "error":
		return zap.ErrorLevel
	default:
		return zap.InfoLevel
	}
}
