// Package storage provides the durable-state adapters for the ledger. Every
// adapter stores the full transaction sequence as one JSON array under the
// same fixed key, with full-replace write-through semantics.
package storage

import (
	"context"

	"mymoney/internal/core"
)

// LedgerKey is the fixed key the serialized ledger lives under. It is shared
// by all adapters so a ledger written by one can be read by another.
const LedgerKey = "expenseTracker"

// Store is the persistence port the ledger writes through.
type Store interface {
	// Load returns the previously saved sequence. Nothing saved yet is
	// (nil, nil), not an error. Unparseable saved data is treated the same
	// way: the adapter logs and reports no prior data rather than failing.
	Load(ctx context.Context) ([]core.Transaction, error)

	// Save replaces the stored sequence with the given one.
	Save(ctx context.Context, ts []core.Transaction) error
}
