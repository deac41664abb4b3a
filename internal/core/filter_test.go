package core

import "testing"

func TestFilter(t *testing.T) {
	ts := []Transaction{
		tx(1, "Coffee", 4.50, "Food & Dining", TypeExpense),
		tx(2, "Paycheck", 1000, "Salary", TypeIncome),
		tx(3, "Lunch", 12, "Food & Dining", TypeExpense),
		tx(4, "Retro gadget", 30, "Gadgets", TypeExpense),
	}

	cases := []struct {
		name string
		v    string
		ids  []int64
	}{
		{"all", "all", []int64{1, 2, 3, 4}},
		{"income only", "income", []int64{2}},
		{"expense only", "expense", []int64{1, 3, 4}},
		{"by category", "Food & Dining", []int64{1, 3}},
		{"category outside catalog", "Gadgets", []int64{4}},
		{"unknown value", "Nonsense", nil},
	}
	for _, tc := range cases {
		got := Filter(ts, tc.v)
		if len(got) != len(tc.ids) {
			t.Fatalf("%s: expected %d rows, got %d", tc.name, len(tc.ids), len(got))
		}
		for i, id := range tc.ids {
			if got[i].ID != id {
				t.Fatalf("%s: position %d expected id %d, got %d", tc.name, i, id, got[i].ID)
			}
		}
	}

	// The source sequence is never mutated.
	if len(ts) != 4 || ts[0].ID != 1 {
		t.Fatalf("filter mutated the input: %+v", ts)
	}
}
