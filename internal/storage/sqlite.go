package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"mymoney/internal/core"

	_ "modernc.org/sqlite"
)

// SQLiteStore persists the serialized ledger in a key-value table. The whole
// sequence is one row: the upsert is the storage primitive whose atomicity
// the write-through contract leans on.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStore) Load(ctx context.Context) ([]core.Transaction, error) {
	var raw []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM kv WHERE key = ?`, LedgerKey).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read ledger row: %w", err)
	}
	return decodeLedger(ctx, raw), nil
}

func (s *SQLiteStore) Save(ctx context.Context, ts []core.Transaction) error {
	raw, err := encodeLedger(ts)
	if err != nil {
		return fmt.Errorf("encode ledger: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO kv (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		LedgerKey, raw)
	if err != nil {
		return fmt.Errorf("upsert ledger row: %w", err)
	}

	slog.DebugContext(ctx, "Ledger saved to SQLite",
		"key", LedgerKey,
		"transactions", len(ts),
		"bytes", len(raw))
	return nil
}
