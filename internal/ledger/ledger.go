// Package ledger owns the ordered transaction sequence and its mutation
// operations. Persistence and event publishing are injected collaborators;
// the ledger never reaches for ambient state.
package ledger

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"mymoney/internal/core"
	"mymoney/internal/storage"
)

// EventPublisher receives a notification after each successful mutation.
// Publishing is best-effort: failures are logged and never fail the mutation.
type EventPublisher interface {
	PublishAdded(ctx context.Context, id int64) error
	PublishRemoved(ctx context.Context, id int64) error
}

// Ledger is the single source of truth for the transaction sequence, ordered
// newest-first by insertion. A back-dated entry still lands at the top: the
// order is insertion order, not date order.
type Ledger struct {
	store  storage.Store
	events EventPublisher

	mu     sync.Mutex
	txns   []core.Transaction
	lastID int64
}

type Option func(*Ledger)

// WithEvents attaches a mutation-event publisher.
func WithEvents(p EventPublisher) Option {
	return func(l *Ledger) { l.events = p }
}

func New(store storage.Store, opts ...Option) *Ledger {
	l := &Ledger{store: store}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load initializes the sequence from the store. Anything unusable counts as
// "no saved data": the ledger starts empty and the failure is logged, never
// surfaced. The ID high-water mark is restored so a reloaded ledger keeps
// issuing fresh IDs.
func (l *Ledger) Load(ctx context.Context) {
	ts, err := l.store.Load(ctx)
	if err != nil {
		slog.WarnContext(ctx, "Could not load saved ledger, starting empty", "error", err)
		ts = nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.txns = ts
	for _, t := range ts {
		if t.ID > l.lastID {
			l.lastID = t.ID
		}
	}
}

// Add validates the draft, assigns a fresh ID and prepends the transaction,
// then write-through saves the full sequence. A rejected draft leaves the
// ledger unchanged and returns the validation sentinel for the caller to
// surface.
func (l *Ledger) Add(ctx context.Context, d core.Draft) (core.Transaction, error) {
	if err := d.Validate(); err != nil {
		return core.Transaction{}, err
	}

	t := core.Transaction{
		Description: strings.TrimSpace(d.Description),
		Amount:      d.Amount,
		Category:    d.Category,
		Type:        d.Type,
		Date:        d.Date,
	}
	if t.Date.IsZero() {
		t.Date = core.Today()
	}

	l.mu.Lock()
	t.ID = l.nextID()
	l.txns = append([]core.Transaction{t}, l.txns...)
	l.persist(ctx, l.snapshotLocked())
	l.mu.Unlock()

	if l.events != nil {
		if err := l.events.PublishAdded(ctx, t.ID); err != nil {
			slog.ErrorContext(ctx, "Failed to publish ledger event",
				"op", "add", "id", t.ID, "error", err)
		}
	}

	slog.InfoContext(ctx, "Transaction added",
		"id", t.ID,
		"type", t.Type,
		"category", t.Category,
		"amount", t.Amount)
	return t, nil
}

// Remove deletes the transaction with the given ID and saves. A missing ID is
// a no-op, not an error: nothing is saved and false is returned. Confirmation
// before calling is the presentation layer's responsibility.
func (l *Ledger) Remove(ctx context.Context, id int64) bool {
	l.mu.Lock()
	idx := -1
	for i, t := range l.txns {
		if t.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		l.mu.Unlock()
		return false
	}
	l.txns = append(l.txns[:idx], l.txns[idx+1:]...)
	l.persist(ctx, l.snapshotLocked())
	l.mu.Unlock()

	if l.events != nil {
		if err := l.events.PublishRemoved(ctx, id); err != nil {
			slog.ErrorContext(ctx, "Failed to publish ledger event",
				"op", "remove", "id", id, "error", err)
		}
	}

	slog.InfoContext(ctx, "Transaction removed", "id", id)
	return true
}

// All returns a copy of the full ordered sequence.
func (l *Ledger) All() []core.Transaction {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.snapshotLocked()
}

// Totals recomputes the income/expense/balance triple from the full ledger.
// Derivations are always recomputed, never cached: ledgers here are small and
// a stale cache is the worse failure mode.
func (l *Ledger) Totals() core.Totals {
	return core.Sum(l.All())
}

// Breakdown recomputes the expense-by-category grouping over the full ledger.
func (l *Ledger) Breakdown() core.Breakdown {
	return core.ExpensesByCategory(l.All())
}

// Filtered returns the view subset for a filter value. Filtering never
// affects Totals, which always reflect the entire ledger.
func (l *Ledger) Filtered(v string) []core.Transaction {
	return core.Filter(l.All(), v)
}

// nextID issues a strictly increasing identifier. The millisecond wall clock
// keeps IDs in the same range as previously saved ledgers; the high-water
// check breaks collisions under rapid successive adds. Callers hold l.mu.
func (l *Ledger) nextID() int64 {
	id := time.Now().UnixMilli()
	if id <= l.lastID {
		id = l.lastID + 1
	}
	l.lastID = id
	return id
}

func (l *Ledger) snapshotLocked() []core.Transaction {
	return append([]core.Transaction(nil), l.txns...)
}

// persist write-through saves the full sequence. Called with l.mu held so
// saves reach the store in mutation order. A failing save is logged and
// otherwise ignored: the in-memory mutation stands and reads keep working.
func (l *Ledger) persist(ctx context.Context, ts []core.Transaction) {
	if err := l.store.Save(ctx, ts); err != nil {
		slog.ErrorContext(ctx, "Write-through save failed",
			"error", err, "transactions", len(ts))
	}
}
