package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/vovakirdan/binary-breaker/internal/breaker"
)

// Storage drivers accepted by OpenBackend.
const (
	DriverSQLite = "sqlite"
	DriverFile   = "file"
	DriverMemory = "memory"
)

// Backend is a high-score store the CLI can open, clear and close.
type Backend interface {
	breaker.HighScores
	Clear() error
	Close() error
}

// OpenBackend opens the store for the named driver.
func OpenBackend(driver, path string) (Backend, error) {
	switch driver {
	case DriverSQLite:
		return Open(path)
	case DriverFile:
		return OpenFile(path)
	case DriverMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("storage: unknown driver %q", driver)
	}
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("storage: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

// prepare expands the path and creates its parent directories.
func prepare(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("storage: empty path")
	}
	path, err := ExpandHome(path)
	if err != nil {
		return "", err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}
	return path, nil
}
