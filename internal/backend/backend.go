// Package backend selects and opens the configured persistence adapter.
package backend

import (
	"fmt"

	"mymoney/internal/config"
	applog "mymoney/internal/log"
	"mymoney/internal/storage"
)

// Type represents the kind of persistence backend
type Type string

const (
	MemoryBackend Type = "memory"
	FileBackend   Type = "file"
	SQLiteBackend Type = "sqlite"
)

// String implements fmt.Stringer
func (t Type) String() string {
	return string(t)
}

// IsValid returns true if the backend type is valid
func (t Type) IsValid() bool {
	switch t {
	case MemoryBackend, FileBackend, SQLiteBackend:
		return true
	default:
		return false
	}
}

// CleanupFunc releases backend resources on shutdown.
type CleanupFunc func() error

// Result contains the opened store and an optional cleanup function.
type Result struct {
	Store   storage.Store
	Cleanup CleanupFunc
}

// Open creates the store named by the config.
func Open(cfg *config.Config, logger *applog.Logger) (*Result, error) {
	t := Type(cfg.DataBackend)
	if !t.IsValid() {
		return nil, fmt.Errorf("invalid backend type: %s", cfg.DataBackend)
	}

	switch t {
	case MemoryBackend:
		logger.Info("Initialized memory backend")
		return &Result{Store: storage.NewMemoryStore()}, nil

	case FileBackend:
		store, err := storage.NewFileStore(cfg.LedgerFilePath)
		if err != nil {
			return nil, fmt.Errorf("initialize file backend: %w", err)
		}
		logger.Info("Initialized file backend", "path", cfg.LedgerFilePath)
		return &Result{Store: store}, nil

	case SQLiteBackend:
		store, err := storage.NewSQLiteStore(cfg.SQLiteDBPath)
		if err != nil {
			return nil, fmt.Errorf("initialize sqlite backend: %w", err)
		}
		logger.Info("Initialized sqlite backend", "db_path", cfg.SQLiteDBPath)
		return &Result{Store: store, Cleanup: store.Close}, nil

	default:
		return nil, fmt.Errorf("unsupported backend type: %s", t)
	}
}
