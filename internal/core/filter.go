package core

// FilterAll selects every transaction.
const FilterAll = "all"

// Filter selects the view subset for a selector value: "all" keeps everything,
// "income"/"expense" select by type, and any other value selects by exact
// category label. Values matching nothing yield an empty view, never an
// error. The input is not mutated and relative order is preserved.
func Filter(ts []Transaction, v string) []Transaction {
	out := make([]Transaction, 0, len(ts))
	for _, tx := range ts {
		switch v {
		case FilterAll:
			out = append(out, tx)
		case string(TypeIncome), string(TypeExpense):
			if tx.Type == TransactionType(v) {
				out = append(out, tx)
			}
		default:
			if tx.Category == v {
				out = append(out, tx)
			}
		}
	}
	return out
}
