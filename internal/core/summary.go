package core

// Totals is the income/expense/balance triple derived from the full ledger.
type Totals struct {
	Income   float64 `json:"income"`
	Expenses float64 `json:"expenses"`
	Balance  float64 `json:"balance"`
}

// CategoryAmount is an amount aggregated under one category label.
type CategoryAmount struct {
	Name   string
	Amount float64
}

// Breakdown is expense amounts grouped by category, ordered by the first
// occurrence of each label in the source sequence. The order only affects how
// chart segments are laid out.
type Breakdown []CategoryAmount

// Sum derives the totals from the full sequence. An empty sequence yields all
// zeros. No rounding is applied; display rounding is a presentation concern.
func Sum(ts []Transaction) Totals {
	var t Totals
	for _, tx := range ts {
		switch tx.Type {
		case TypeIncome:
			t.Income += tx.Amount
		case TypeExpense:
			t.Expenses += tx.Amount
		}
	}
	t.Balance = t.Income - t.Expenses
	return t
}

// ExpensesByCategory groups expense amounts by exact category string.
// Income entries are excluded. Labels absent from the current catalog are
// grouped like any other; the match is case-sensitive.
func ExpensesByCategory(ts []Transaction) Breakdown {
	idx := make(map[string]int)
	var b Breakdown
	for _, tx := range ts {
		if tx.Type != TypeExpense {
			continue
		}
		i, ok := idx[tx.Category]
		if !ok {
			i = len(b)
			idx[tx.Category] = i
			b = append(b, CategoryAmount{Name: tx.Category})
		}
		b[i].Amount += tx.Amount
	}
	return b
}

// Labels returns the category names in breakdown order, for chart rendering.
func (b Breakdown) Labels() []string {
	out := make([]string, len(b))
	for i, ca := range b {
		out[i] = ca.Name
	}
	return out
}

// Amounts returns the per-category sums parallel to Labels.
func (b Breakdown) Amounts() []float64 {
	out := make([]float64, len(b))
	for i, ca := range b {
		out[i] = ca.Amount
	}
	return out
}
