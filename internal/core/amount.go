// Package core holds the pure domain of the ledger: the transaction model,
// the category catalogs, amount parsing, and the derivation functions for
// totals, category breakdowns and filtered views.
package core

import (
	"math"
	"strconv"
	"strings"
)

// ParseAmount converts a form amount string to a positive currency value.
//
// It accepts both dot (12.34) and comma (12,34) decimal separators. Explicit
// signs, non-numeric input, zero and negative values are rejected with
// ErrInvalidAmount.
func ParseAmount(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidAmount
	}
	// Normalize decimal comma to dot
	s = strings.ReplaceAll(s, ",", ".")
	if strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-") {
		// Only positive values allowed
		return 0, ErrInvalidAmount
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	if v <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrInvalidAmount
	}
	return v, nil
}

// FormatAmount renders a value for display with two decimals and a dollar
// prefix (e.g. "$12.34"). Rounding happens only here; stored amounts are
// never rounded.
func FormatAmount(v float64) string {
	neg := v < 0
	if neg {
		v = -v
	}
	s := strconv.FormatFloat(v, 'f', 2, 64)
	if neg {
		return "-$" + s
	}
	return "$" + s
}
