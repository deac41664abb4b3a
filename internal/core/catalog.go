package core

// The two catalogs are fixed and ordered; the first entry of each is the
// entry-form default for its type. Both end in a generic "Other".
var (
	ExpenseCategories = []string{
		"Food & Dining", "Transportation", "Shopping", "Entertainment",
		"Bills & Utilities", "Healthcare", "Education", "Other",
	}

	IncomeCategories = []string{
		"Salary", "Freelance", "Investments", "Gifts", "Other",
	}
)

// CategoriesFor returns the catalog matching the transaction type.
func CategoriesFor(t TransactionType) []string {
	if t == TypeIncome {
		return append([]string(nil), IncomeCategories...)
	}
	return append([]string(nil), ExpenseCategories...)
}

// FilterCategories returns the deduplicated union of both catalogs in
// first-occurrence order. It populates the filter selector, so a label shared
// across types (currently "Other") appears once and matches records of either
// type.
func FilterCategories() []string {
	seen := map[string]struct{}{}
	out := make([]string, 0, len(ExpenseCategories)+len(IncomeCategories))
	for _, list := range [][]string{ExpenseCategories, IncomeCategories} {
		for _, c := range list {
			if _, ok := seen[c]; ok {
				continue
			}
			seen[c] = struct{}{}
			out = append(out, c)
		}
	}
	return out
}
