// Package logging holds the process-wide slog logger used by the command
// line tools. The container packages never log; they report through
// result codes.
package logging

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

var (
	logger   *slog.Logger
	mu       sync.RWMutex
	logFile  *os.File
	isInited bool
)

var ErrAlreadyInitialized = errors.New("logging: logger already initialized")

type Level string

const (
	LevelDebug Level = "DEBUG"
	LevelInfo  Level = "INFO"
	LevelWarn  Level = "WARN"
	LevelError Level = "ERROR"
)

type Config struct {
	Level Level
	// OutputPath is a file to append to. Empty means stderr.
	OutputPath string
	// Format is "json" or "text".
	Format string
}

func (l Level) slog() slog.Level {
	switch Level(strings.ToUpper(string(l))) {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	}
	return slog.LevelInfo
}

// Init installs the global logger. It fails with ErrAlreadyInitialized until
// Close is called.
func Init(cfg Config) error {
	mu.Lock()
	defer mu.Unlock()

	if isInited {
		return ErrAlreadyInitialized
	}

	var w io.Writer = os.Stderr
	if cfg.OutputPath != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.OutputPath), 0o750); err != nil {
			return err
		}
		f, err := os.OpenFile(cfg.OutputPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return err
		}
		w = f
		logFile = f
	}

	opts := &slog.HandlerOptions{Level: cfg.Level.slog()}
	var h slog.Handler
	if cfg.Format == "json" {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}

	logger = slog.New(h)
	isInited = true
	return nil
}

// Close releases the log file, if any. Init may be called again afterwards.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	if !isInited {
		return nil
	}
	var err error
	if logFile != nil {
		err = logFile.Close()
		logFile = nil
	}
	logger = nil
	isInited = false
	return err
}

// GetLogger returns the global logger, creating an INFO level stderr logger
// on first use if Init was never called.
func GetLogger() *slog.Logger {
	mu.RLock()
	if isInited {
		l := logger
		mu.RUnlock()
		return l
	}
	mu.RUnlock()

	mu.Lock()
	defer mu.Unlock()
	if !isInited {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
		isInited = true
	}
	return logger
}

// WithOp tags log lines with the container operation being run.
func WithOp(op string) *slog.Logger {
	return GetLogger().With("op", op)
}

func WithError(err error) *slog.Logger {
	return GetLogger().With("error", err.Error())
}
