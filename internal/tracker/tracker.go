// Package tracker owns the application state: the person registry and the
// transaction log. It implements the mutation surface (add/remove
// transactions, rename/merge/delete people) while keeping the two
// collections referentially consistent, and exposes the derived views from
// the aggregate package.
//
// Every mutation works on in-memory state and then persists the affected
// collections best-effort: a failed save is logged and never surfaced. The
// tracker assumes a single logical writer; it is not safe for concurrent
// use.
package tracker

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/mkhatri/moneyman/internal/aggregate"
	"github.com/mkhatri/moneyman/internal/identity"
	"github.com/mkhatri/moneyman/internal/models"
	"github.com/mkhatri/moneyman/internal/storage"
)

// Tracker is the single writer over the two core collections.
// Both collections are kept most-recent-first.
type Tracker struct {
	store        storage.Store
	persons      []models.Person
	transactions []models.Transaction
}

// New loads both collections from the store. A load failure is not fatal:
// the affected collection starts empty and the error is logged.
func New(ctx context.Context, store storage.Store) *Tracker {
	t := &Tracker{store: store}

	persons, err := store.LoadPersons(ctx)
	if err != nil {
		slog.Warn("Failed to load persons, starting empty", "error", err)
		persons = []models.Person{}
	}
	t.persons = persons

	txs, err := store.LoadTransactions(ctx)
	if err != nil {
		slog.Warn("Failed to load transactions, starting empty", "error", err)
		txs = []models.Transaction{}
	}
	t.transactions = txs

	return t
}

// Persons returns the person registry, newest first.
func (t *Tracker) Persons() []models.Person { return t.persons }

// Transactions returns the transaction log, newest first.
func (t *Tracker) Transactions() []models.Transaction { return t.transactions }

// PersonTransactions returns the transactions referencing personID, newest
// first.
func (t *Tracker) PersonTransactions(personID string) []models.Transaction {
	var out []models.Transaction
	for _, tx := range t.transactions {
		if tx.PersonID == personID {
			out = append(out, tx)
		}
	}
	return out
}

// Totals sums amounts per transaction type over the whole log.
func (t *Tracker) Totals() aggregate.Totals {
	return aggregate.CalculateTotals(t.transactions)
}

// Balances returns the per-person aggregated view.
func (t *Tracker) Balances() map[string]*aggregate.PersonSummary {
	return aggregate.CalculatePersonBalances(t.persons, t.transactions)
}

// Report buckets the log by calendar period, most recent first.
func (t *Tracker) Report(g aggregate.Granularity, limit int) []aggregate.Bucket {
	return aggregate.GroupByPeriod(t.transactions, g, limit)
}

// AddTransaction prepends tx to the log. If tx carries a person name, the
// name is resolved to a stable identity first (creating the person when
// unknown) and the transaction's Person/PersonID fields are normalized to
// the resolved identity. The tracker fills a missing ID.
//
// The core performs no validation; drafts are validated at the boundary.
func (t *Tracker) AddTransaction(ctx context.Context, tx models.Transaction) models.Transaction {
	if tx.ID == "" {
		tx.ID = uuid.New().String()
	}

	if strings.TrimSpace(tx.Person) != "" {
		res := identity.Resolve(tx.Person, t.persons)
		if res.Created {
			t.persons = append([]models.Person{res.Person}, t.persons...)
			t.savePersons(ctx)
			slog.Info("Person created", "person_id", res.Person.ID, "name", res.Person.Name)
		}
		tx.PersonID = res.Person.ID
		tx.Person = res.Person.Name
	}

	t.transactions = append([]models.Transaction{tx}, t.transactions...)
	t.saveTransactions(ctx)

	slog.Info("Transaction added",
		"transaction_id", tx.ID,
		"type", tx.Type,
		"amount", tx.Amount,
	)
	return tx
}

// RemoveTransaction deletes the transaction with the given id.
// Silent no-op if absent.
func (t *Tracker) RemoveTransaction(ctx context.Context, id string) {
	kept := t.transactions[:0:0]
	for _, tx := range t.transactions {
		if tx.ID != id {
			kept = append(kept, tx)
		}
	}
	if len(kept) == len(t.transactions) {
		return
	}
	t.transactions = kept
	t.saveTransactions(ctx)

	slog.Info("Transaction removed", "transaction_id", id)
}

// RenamePerson updates a person's name and propagates it to the
// denormalized Person field of every transaction referencing them.
// Silent no-op when newName trims to empty or id is unknown.
func (t *Tracker) RenamePerson(ctx context.Context, id, newName string) {
	trimmed := strings.TrimSpace(newName)
	if trimmed == "" {
		return
	}

	found := false
	for i := range t.persons {
		if t.persons[i].ID == id {
			t.persons[i].Name = trimmed
			found = true
			break
		}
	}
	if !found {
		return
	}

	for i := range t.transactions {
		if t.transactions[i].PersonID == id {
			t.transactions[i].Person = trimmed
		}
	}

	t.savePersons(ctx)
	t.saveTransactions(ctx)

	slog.Info("Person renamed", "person_id", id, "name", trimmed)
}

// MergePeople reassigns every transaction from source to target, rewriting
// the denormalized name to target's current name, then removes source from
// the registry. Silent no-op when either id is empty, both are equal, or
// either person is missing.
func (t *Tracker) MergePeople(ctx context.Context, sourceID, targetID string) {
	if sourceID == "" || targetID == "" || sourceID == targetID {
		return
	}
	target, ok := t.findPerson(targetID)
	if !ok {
		return
	}
	if _, ok := t.findPerson(sourceID); !ok {
		return
	}

	for i := range t.transactions {
		if t.transactions[i].PersonID == sourceID {
			t.transactions[i].PersonID = targetID
			t.transactions[i].Person = target.Name
		}
	}
	t.removePerson(sourceID)

	t.savePersons(ctx)
	t.saveTransactions(ctx)

	slog.Info("People merged", "source_id", sourceID, "target_id", targetID)
}

// DeletePerson removes the person and every transaction referencing them,
// as one state transition. Silent no-op when id is empty. An unknown id
// still sweeps the log, so orphaned references can be cleaned up this way.
func (t *Tracker) DeletePerson(ctx context.Context, id string) {
	if id == "" {
		return
	}

	t.removePerson(id)

	kept := t.transactions[:0:0]
	for _, tx := range t.transactions {
		if tx.PersonID != id {
			kept = append(kept, tx)
		}
	}
	t.transactions = kept

	t.savePersons(ctx)
	t.saveTransactions(ctx)

	slog.Info("Person deleted", "person_id", id)
}

func (t *Tracker) findPerson(id string) (models.Person, bool) {
	for _, p := range t.persons {
		if p.ID == id {
			return p, true
		}
	}
	return models.Person{}, false
}

func (t *Tracker) removePerson(id string) {
	kept := t.persons[:0:0]
	for _, p := range t.persons {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	t.persons = kept
}

// savePersons persists the registry best-effort.
func (t *Tracker) savePersons(ctx context.Context) {
	if err := t.store.SavePersons(ctx, t.persons); err != nil {
		slog.Error("Failed to save persons", "error", err)
	}
}

// saveTransactions persists the log best-effort.
func (t *Tracker) saveTransactions(ctx context.Context) {
	if err := t.store.SaveTransactions(ctx, t.transactions); err != nil {
		slog.Error("Failed to save transactions", "error", err)
	}
}
