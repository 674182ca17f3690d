// Package aggregate derives read-only views from the two core collections.
//
// Every function here is pure: it folds over the current persons and
// transactions and returns a fresh result. Nothing is cached or updated
// incrementally; at personal-finance scale a full recompute per mutation is
// cheaper than invalidation bookkeeping.
package aggregate

import (
	"github.com/shopspring/decimal"

	"github.com/mkhatri/moneyman/internal/models"
)

// Totals holds the running sum of amounts per transaction type.
type Totals struct {
	Income     decimal.Decimal
	Expense    decimal.Decimal
	Lend       decimal.Decimal
	Borrow     decimal.Decimal
	Adjustment decimal.Decimal
}

// CalculateTotals sums transaction amounts per type over the whole log.
// Unknown types are ignored.
func CalculateTotals(txs []models.Transaction) Totals {
	var t Totals
	for _, tx := range txs {
		switch tx.Type {
		case models.TypeIncome:
			t.Income = t.Income.Add(tx.Amount)
		case models.TypeExpense:
			t.Expense = t.Expense.Add(tx.Amount)
		case models.TypeLend:
			t.Lend = t.Lend.Add(tx.Amount)
		case models.TypeBorrow:
			t.Borrow = t.Borrow.Add(tx.Amount)
		case models.TypeAdjustment:
			t.Adjustment = t.Adjustment.Add(tx.Amount)
		}
	}
	return t
}
