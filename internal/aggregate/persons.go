package aggregate

import (
	"github.com/shopspring/decimal"

	"github.com/mkhatri/moneyman/internal/models"
)

// UnknownPersonName labels a placeholder entry synthesized for a transaction
// whose PersonID no longer resolves and which carries no denormalized name.
const UnknownPersonName = "(unknown)"

// PersonSummary is one person's aggregated view: their current balance and
// every transaction referencing them.
type PersonSummary struct {
	ID   string
	Name string

	// Balance is lend total minus borrow total. Positive means the person
	// owes the tracker owner; negative means the owner owes them.
	Balance decimal.Decimal

	// Items are the person's transactions in the order encountered in the
	// log (all types, not just lend/borrow).
	Items []models.Transaction
}

// CalculatePersonBalances folds the transaction log into a per-person view.
//
// Every person in the registry gets an entry, even with no transactions.
// A transaction whose PersonID is unknown (orphaned reference) synthesizes a
// placeholder entry named from its denormalized Person field, falling back to
// UnknownPersonName; it never fails. Only lend and borrow move the balance.
func CalculatePersonBalances(persons []models.Person, txs []models.Transaction) map[string]*PersonSummary {
	m := make(map[string]*PersonSummary, len(persons))
	for _, p := range persons {
		m[p.ID] = &PersonSummary{ID: p.ID, Name: p.Name, Items: []models.Transaction{}}
	}

	for _, tx := range txs {
		if tx.PersonID == "" {
			continue
		}
		entry, ok := m[tx.PersonID]
		if !ok {
			name := tx.Person
			if name == "" {
				name = UnknownPersonName
			}
			entry = &PersonSummary{ID: tx.PersonID, Name: name, Items: []models.Transaction{}}
			m[tx.PersonID] = entry
		}

		switch tx.Type {
		case models.TypeLend:
			entry.Balance = entry.Balance.Add(tx.Amount)
		case models.TypeBorrow:
			entry.Balance = entry.Balance.Sub(tx.Amount)
		}
		entry.Items = append(entry.Items, tx)
	}

	return m
}
