// Package logging builds the application's zap logger. Output goes to a
// rotating file so it never interferes with the terminal UI.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/abhisek/brainquiz/internal/config"
)

// DefaultLogPath returns $XDG_STATE_HOME/brainquiz/brainquiz.log, falling
// back to ~/.local/state/brainquiz/brainquiz.log.
func DefaultLogPath() (string, error) {
	dir := os.Getenv("XDG_STATE_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dir = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(dir, "brainquiz", "brainquiz.log"), nil
}

// New returns a JSON file logger and a cleanup func that flushes and
// closes it. The cleanup func is never nil.
func New(cfg config.Log) (*zap.Logger, func(), error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return zap.NewNop(), func() {}, fmt.Errorf("parse log level: %w", err)
	}

	path := cfg.File
	if path == "" {
		if path, err = DefaultLogPath(); err != nil {
			return zap.NewNop(), func() {}, err
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return zap.NewNop(), func() {}, fmt.Errorf("create log dir: %w", err)
	}

	sink := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   cfg.Compress,
	}

	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig()), zapcore.AddSync(sink), level)
	logger := zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel)).
		With(zap.Int("pid", os.Getpid()))

	cleanup := func() {
		_ = logger.Sync()
		_ = sink.Close()
	}
	return logger, cleanup, nil
}

func encoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
}
