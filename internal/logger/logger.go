// Package logger builds the zap logger shared by githelper commands.
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Rotation settings for the optional log file.
const (
	LogMaxSizeMB  = 10
	LogMaxBackups = 3
	LogMaxAgeDays = 28
	logDirPerm    = 0o750
)

// Options configures New. Verbose forces debug regardless of Level; File enables
// a rotating JSON log next to the console output.
type Options struct {
	Level   string
	Verbose bool
	File    string
	Console io.Writer
}

// New creates a console logger and, when Options.File is set, tees into a
// rotating JSON file. The returned cleanup flushes and closes the file.
func New(opts Options) (*zap.Logger, func() error, error) {
	level, err := parseLevel(opts.Level, opts.Verbose)
	if err != nil {
		return nil, nil, err
	}
	console := opts.Console
	if console == nil {
		console = os.Stderr
	}
	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.TimeKey = ""
	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(console), level),
	}
	var file *lumberjack.Logger
	if opts.File != "" {
		if err := os.MkdirAll(filepath.Dir(opts.File), logDirPerm); err != nil {
			return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		file = &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    LogMaxSizeMB,
			MaxBackups: LogMaxBackups,
			MaxAge:     LogMaxAgeDays,
		}
		// the file always records debug output
		cores = append(cores, zapcore.NewCore(
			zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
			zapcore.AddSync(file),
			zapcore.DebugLevel,
		))
	}
	log := zap.New(zapcore.NewTee(cores...))
	cleanup := func() error {
		_ = log.Sync()
		if file != nil {
			return file.Close()
		}
		return nil
	}
	return log, cleanup, nil
}

func parseLevel(text string, verbose bool) (zapcore.Level, error) {
	if verbose {
		return zapcore.DebugLevel, nil
	}
	if text == "" {
		return zapcore.WarnLevel, nil
	}
	level, err := zapcore.ParseLevel(text)
	if err != nil {
		return zapcore.WarnLevel, fmt.Errorf("invalid log level: %w", err)
	}
	return level, nil
}
