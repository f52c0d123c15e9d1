package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/binary-breaker/internal/config"
	"github.com/vovakirdan/binary-breaker/internal/storage"
)

// loadConfig builds the effective configuration: file, then environment,
// then flags.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if err := config.ApplyEnv(&cfg, os.Getenv); err != nil {
		return cfg, err
	}
	applyFlags(&cfg)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// applyFlags overrides settings with the flags that were given.
func applyFlags(cfg *config.Config) {
	if flagDBPath != "" {
		cfg.Storage.Path = flagDBPath
	}
	if flagLogFile != "" {
		cfg.Log.File = flagLogFile
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
}

// newLogger builds the logger described by cfg. The returned closer
// releases the log file.
func newLogger(cfg config.Config) (*log.Logger, io.Closer, error) {
	level, err := cfg.LogLevel()
	if err != nil {
		return nil, nil, err
	}

	var out io.Writer = os.Stderr
	var closer io.Closer = io.NopCloser(nil)

	if cfg.Log.File != "" {
		path, err := storage.ExpandHome(cfg.Log.File)
		if err != nil {
			return nil, nil, err
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out, closer = f, f
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "breaker",
		Level:           level,
	})
	return logger, closer, nil
}

// openBackend opens the configured high score store.
func openBackend(cfg config.Config) (storage.Backend, error) {
	return storage.OpenBackend(cfg.Storage.Driver, cfg.Storage.Path)
}

// fail prints an error and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
