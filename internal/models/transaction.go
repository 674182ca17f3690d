package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Type classifies a transaction and determines how its amount is applied
// during aggregation.
type Type string

const (
	// TypeIncome is money received.
	TypeIncome Type = "income"

	// TypeExpense is money spent.
	TypeExpense Type = "expense"

	// TypeLend is money given to a person; it increases their balance
	// (they owe the tracker owner).
	TypeLend Type = "lend"

	// TypeBorrow is money taken from a person; it decreases their balance
	// (the tracker owner owes them).
	TypeBorrow Type = "borrow"

	// TypeAdjustment is a reserved type recognized by the aggregation
	// engine (it contributes to a bucket's net). No entry path produces it
	// today.
	TypeAdjustment Type = "adjustment"
)

// ParseType parses a transaction type entered at the boundary.
// Adjustment is deliberately excluded: it has no creation path.
func ParseType(s string) (Type, bool) {
	switch Type(strings.ToLower(strings.TrimSpace(s))) {
	case TypeIncome:
		return TypeIncome, true
	case TypeExpense:
		return TypeExpense, true
	case TypeLend:
		return TypeLend, true
	case TypeBorrow:
		return TypeBorrow, true
	}
	return "", false
}

// Transaction is a single money movement in the log.
type Transaction struct {
	// ID is the unique identifier for the transaction (UUID format),
	// immutable.
	ID string `json:"id"`

	// Title is a free-text description, non-empty after trim.
	Title string `json:"title"`

	// Amount is the non-negative magnitude. The sign/effect comes from
	// Type, never from the amount itself.
	Amount decimal.Decimal `json:"amount"`

	// Date is when the movement happened.
	Date time.Time `json:"date"`

	// Type determines how Amount is applied during aggregation.
	Type Type `json:"type"`

	// Person is the denormalized display name of the referenced person at
	// write time. Rewritten when the person is renamed or merged.
	Person string `json:"person,omitempty"`

	// PersonID references a Person in the registry. Empty when the
	// transaction involves no person; required at the boundary for
	// lend/borrow.
	PersonID string `json:"personId,omitempty"`
}

// ParseAmount parses a decimal amount magnitude, treating unparseable input
// as zero. Aggregation must never fail on a bad amount.
func ParseAmount(s string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero
	}
	return d
}
