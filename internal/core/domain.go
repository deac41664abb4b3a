package core

import (
	"errors"
	"strings"
	"time"
)

const (
	TypeExpense TransactionType = "expense"
	TypeIncome  TransactionType = "income"
)

type (
	TransactionType string

	Date struct {
		time.Time
	}

	// Transaction is a single recorded income or expense entry. The JSON field
	// names are the durable layout: saved ledgers carry no schema version and
	// are read back verbatim.
	Transaction struct {
		ID          int64           `json:"id"`
		Description string          `json:"description"`
		Amount      float64         `json:"amount"`
		Category    string          `json:"category"`
		Type        TransactionType `json:"type"`
		Date        Date            `json:"date"`
	}

	// Draft is an entry-form candidate before an ID is assigned.
	Draft struct {
		Description string
		Amount      float64
		Category    string
		Type        TransactionType
		Date        Date
	}
)

var (
	ErrEmptyDescription = errors.New("empty description")
	ErrInvalidAmount    = errors.New("invalid amount")
	ErrInvalidType      = errors.New("invalid transaction type")
	ErrInvalidDate      = errors.New("invalid date")
)

func (t TransactionType) Valid() bool {
	switch t {
	case TypeExpense, TypeIncome:
		return true
	}
	return false
}

const dateLayout = "2006-01-02"

// Today returns the current calendar date, the entry-form default.
func Today() Date {
	now := time.Now()
	return NewDate(now.Year(), int(now.Month()), now.Day())
}

// NewDate creates a Date from year, month, day
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses an ISO YYYY-MM-DD date string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	return Date{Time: t}, nil
}

func (d Date) String() string {
	return d.Format(dateLayout)
}

// MarshalJSON writes the date as a bare YYYY-MM-DD string, matching the
// layout of previously saved ledgers.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return ErrInvalidDate
	}
	d.Time = t
	return nil
}

// Validate checks the entry preconditions: trimmed description is non-empty,
// amount is strictly positive, type is one of the two variants. Catalog
// membership is deliberately not checked here — stored categories may predate
// a catalog change and must keep flowing through aggregation and filtering.
func (dr Draft) Validate() error {
	if len(strings.TrimSpace(dr.Description)) == 0 {
		return ErrEmptyDescription
	}
	if dr.Amount <= 0 {
		return ErrInvalidAmount
	}
	if !dr.Type.Valid() {
		return ErrInvalidType
	}
	return nil
}
