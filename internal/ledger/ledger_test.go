package ledger

import (
	"context"
	"errors"
	"sync"
	"testing"

	"mymoney/internal/core"
	"mymoney/internal/storage"
)

// recordingStore captures every saved snapshot in arrival order.
type recordingStore struct {
	mu    sync.Mutex
	saves [][]core.Transaction
}

func (s *recordingStore) Load(ctx context.Context) ([]core.Transaction, error) {
	return nil, nil
}

func (s *recordingStore) Save(ctx context.Context, ts []core.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saves = append(s.saves, append([]core.Transaction(nil), ts...))
	return nil
}

func draft(desc string, amount float64, cat string, typ core.TransactionType) core.Draft {
	return core.Draft{
		Description: desc,
		Amount:      amount,
		Category:    cat,
		Type:        typ,
		Date:        core.NewDate(2024, 1, 1),
	}
}

func TestAddPrependsAndAssignsUniqueIDs(t *testing.T) {
	l := New(storage.NewMemoryStore())
	ctx := context.Background()

	seen := map[int64]bool{}
	var prev int64
	for i := 0; i < 50; i++ {
		tx, err := l.Add(ctx, draft("entry", 1, "Other", core.TypeExpense))
		if err != nil {
			t.Fatalf("add %d: %v", i, err)
		}
		if seen[tx.ID] {
			t.Fatalf("duplicate id %d at add %d", tx.ID, i)
		}
		if tx.ID <= prev {
			t.Fatalf("ids not strictly increasing: %d after %d", tx.ID, prev)
		}
		seen[tx.ID] = true
		prev = tx.ID

		all := l.All()
		if len(all) != i+1 {
			t.Fatalf("expected %d rows, got %d", i+1, len(all))
		}
		if all[0].ID != tx.ID {
			t.Fatalf("new transaction not first: %+v", all[0])
		}
	}
}

func TestAddTrimsDescriptionAndDefaultsDate(t *testing.T) {
	l := New(storage.NewMemoryStore())
	tx, err := l.Add(context.Background(), core.Draft{
		Description: "  Coffee  ",
		Amount:      4.50,
		Category:    "Food & Dining",
		Type:        core.TypeExpense,
	})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if tx.Description != "Coffee" {
		t.Fatalf("description not trimmed: %q", tx.Description)
	}
	if tx.Date.IsZero() {
		t.Fatalf("date not defaulted")
	}
}

func TestAddRejectsInvalidDrafts(t *testing.T) {
	l := New(storage.NewMemoryStore())
	ctx := context.Background()

	cases := []struct {
		name string
		d    core.Draft
		want error
	}{
		{"empty description", draft("", 10, "Other", core.TypeExpense), core.ErrEmptyDescription},
		{"whitespace description", draft("   ", 10, "Other", core.TypeExpense), core.ErrEmptyDescription},
		{"zero amount", draft("a", 0, "Other", core.TypeExpense), core.ErrInvalidAmount},
		{"negative amount", draft("a", -5, "Other", core.TypeIncome), core.ErrInvalidAmount},
		{"bad type", draft("a", 5, "Other", "transfer"), core.ErrInvalidType},
	}
	for _, tc := range cases {
		if _, err := l.Add(ctx, tc.d); !errors.Is(err, tc.want) {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, err)
		}
		if n := len(l.All()); n != 0 {
			t.Fatalf("%s: ledger changed, %d rows", tc.name, n)
		}
	}
}

func TestRemove(t *testing.T) {
	l := New(storage.NewMemoryStore())
	ctx := context.Background()

	a, _ := l.Add(ctx, draft("first", 1, "Other", core.TypeExpense))
	b, _ := l.Add(ctx, draft("second", 2, "Other", core.TypeExpense))
	c, _ := l.Add(ctx, draft("third", 3, "Other", core.TypeExpense))

	if !l.Remove(ctx, b.ID) {
		t.Fatalf("expected removal of %d", b.ID)
	}
	all := l.All()
	if len(all) != 2 || all[0].ID != c.ID || all[1].ID != a.ID {
		t.Fatalf("unexpected sequence after remove: %+v", all)
	}

	// Missing ID is a no-op, not an error.
	before := l.All()
	if l.Remove(ctx, 424242) {
		t.Fatalf("removal of missing id reported true")
	}
	after := l.All()
	if len(after) != len(before) {
		t.Fatalf("no-op remove changed the ledger")
	}
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("no-op remove changed row %d", i)
		}
	}
}

func TestWriteThroughRoundTrip(t *testing.T) {
	store := storage.NewMemoryStore()
	ctx := context.Background()

	l := New(store)
	l.Add(ctx, draft("Coffee", 4.50, "Food & Dining", core.TypeExpense))
	l.Add(ctx, draft("Paycheck", 1000, "Salary", core.TypeIncome))
	want := l.All()

	// A fresh ledger over the same store restores the identical sequence.
	restored := New(store)
	restored.Load(ctx)
	got := restored.All()
	if len(got) != len(want) {
		t.Fatalf("expected %d rows, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("row %d mismatch: got %+v want %+v", i, got[i], want[i])
		}
	}
}

func TestSavesLandInMutationOrder(t *testing.T) {
	store := &recordingStore{}
	l := New(store)
	ctx := context.Background()

	const workers, addsEach = 8, 5
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < addsEach; i++ {
				if _, err := l.Add(ctx, draft("entry", 1, "Other", core.TypeExpense)); err != nil {
					t.Errorf("add: %v", err)
				}
			}
		}()
	}
	wg.Wait()

	store.mu.Lock()
	saves := store.saves
	store.mu.Unlock()

	// Each mutation runs to completion including its save, so the store sees
	// one snapshot per add, each exactly one row longer than the last.
	if len(saves) != workers*addsEach {
		t.Fatalf("expected %d saves, got %d", workers*addsEach, len(saves))
	}
	for i, s := range saves {
		if len(s) != i+1 {
			t.Fatalf("save %d has %d rows, expected %d", i, len(s), i+1)
		}
	}

	// The final snapshot is the live sequence.
	last, all := saves[len(saves)-1], l.All()
	if len(last) != len(all) {
		t.Fatalf("last save has %d rows, ledger has %d", len(last), len(all))
	}
	for i := range all {
		if last[i] != all[i] {
			t.Fatalf("last save row %d mismatch: got %+v want %+v", i, last[i], all[i])
		}
	}
}

func TestLoadRestoresIDHighWater(t *testing.T) {
	store := storage.NewMemoryStore()
	ctx := context.Background()

	future := int64(1) << 62 // id far beyond any wall clock
	store.Save(ctx, []core.Transaction{{
		ID: future, Description: "old", Amount: 1,
		Category: "Other", Type: core.TypeExpense, Date: core.NewDate(2024, 1, 1),
	}})

	l := New(store)
	l.Load(ctx)
	tx, err := l.Add(ctx, draft("new", 1, "Other", core.TypeExpense))
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if tx.ID <= future {
		t.Fatalf("id %d not above restored high-water %d", tx.ID, future)
	}
}

func TestLoadRecoversFromCorruptData(t *testing.T) {
	store := storage.NewMemoryStore()
	store.Seed([]byte("][ not a ledger"))

	l := New(store)
	l.Load(context.Background())
	if n := len(l.All()); n != 0 {
		t.Fatalf("expected empty ledger after corrupt load, got %d rows", n)
	}

	// The ledger stays usable after recovery.
	if _, err := l.Add(context.Background(), draft("fresh", 1, "Other", core.TypeExpense)); err != nil {
		t.Fatalf("add after recovery: %v", err)
	}
}

func TestEndToEndScenario(t *testing.T) {
	l := New(storage.NewMemoryStore())
	ctx := context.Background()

	coffee, err := l.Add(ctx, core.Draft{
		Description: "Coffee", Amount: 4.50, Category: "Food & Dining",
		Type: core.TypeExpense, Date: core.NewDate(2024, 1, 1),
	})
	if err != nil {
		t.Fatalf("add coffee: %v", err)
	}
	if _, err := l.Add(ctx, core.Draft{
		Description: "Paycheck", Amount: 1000, Category: "Salary",
		Type: core.TypeIncome, Date: core.NewDate(2024, 1, 2),
	}); err != nil {
		t.Fatalf("add paycheck: %v", err)
	}

	totals := l.Totals()
	if totals.Income != 1000 || totals.Expenses != 4.50 || totals.Balance != 995.50 {
		t.Fatalf("unexpected totals: %+v", totals)
	}

	b := l.Breakdown()
	if len(b) != 1 || b[0].Name != "Food & Dining" || b[0].Amount != 4.50 {
		t.Fatalf("unexpected breakdown: %+v", b)
	}

	view := l.Filtered("expense")
	if len(view) != 1 || view[0].ID != coffee.ID {
		t.Fatalf("unexpected expense view: %+v", view)
	}
}

func TestEndToEndRejection(t *testing.T) {
	l := New(storage.NewMemoryStore())
	if _, err := l.Add(context.Background(), core.Draft{
		Description: "", Amount: 10, Category: "Other", Type: core.TypeExpense,
	}); !errors.Is(err, core.ErrEmptyDescription) {
		t.Fatalf("expected ErrEmptyDescription, got %v", err)
	}
	if n := len(l.All()); n != 0 {
		t.Fatalf("ledger length expected 0, got %d", n)
	}
}
