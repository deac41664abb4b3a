package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"mymoney/internal/core"
)

// FileStore persists the serialized ledger as a single JSON file. Writes go
// through a temp file and rename so a crash mid-write leaves the previous
// ledger intact.
type FileStore struct {
	path string
}

func NewFileStore(path string) (*FileStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create ledger directory: %w", err)
	}
	return &FileStore{path: path}, nil
}

func (s *FileStore) Load(ctx context.Context) ([]core.Transaction, error) {
	raw, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read ledger file: %w", err)
	}
	return decodeLedger(ctx, raw), nil
}

func (s *FileStore) Save(_ context.Context, ts []core.Transaction) error {
	raw, err := encodeLedger(ts)
	if err != nil {
		return fmt.Errorf("encode ledger: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0644); err != nil {
		return fmt.Errorf("write ledger file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace ledger file: %w", err)
	}
	return nil
}
