package storage

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"mymoney/internal/core"
)

// MemoryStore keeps the serialized ledger in an in-process key-value map. It
// goes through the same JSON layout as the durable adapters so tests exercise
// the real round trip.
type MemoryStore struct {
	mu   sync.Mutex
	data map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

func (s *MemoryStore) Load(ctx context.Context) ([]core.Transaction, error) {
	s.mu.Lock()
	raw, ok := s.data[LedgerKey]
	s.mu.Unlock()
	if !ok {
		return nil, nil
	}
	return decodeLedger(ctx, raw), nil
}

func (s *MemoryStore) Save(_ context.Context, ts []core.Transaction) error {
	raw, err := encodeLedger(ts)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.data[LedgerKey] = raw
	s.mu.Unlock()
	return nil
}

// Seed stores raw bytes under the ledger key, bypassing encoding. Tests use
// it to simulate corrupt or foreign saved data.
func (s *MemoryStore) Seed(raw []byte) {
	s.mu.Lock()
	s.data[LedgerKey] = append([]byte(nil), raw...)
	s.mu.Unlock()
}

func encodeLedger(ts []core.Transaction) ([]byte, error) {
	if ts == nil {
		ts = []core.Transaction{}
	}
	return json.Marshal(ts)
}

// decodeLedger parses a saved payload. Corrupt data degrades to "no saved
// data" instead of an error: the contract is that a bad payload never stops
// the ledger from starting.
func decodeLedger(ctx context.Context, raw []byte) []core.Transaction {
	var ts []core.Transaction
	if err := json.Unmarshal(raw, &ts); err != nil {
		slog.WarnContext(ctx, "Saved ledger is not parseable, treating as empty",
			"error", err, "bytes", len(raw))
		return nil
	}
	return ts
}
