// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"

	"github.com/mkhatri/moneyman/internal/models"
)

// Store persists the two core collections as opaque wholes.
// This abstraction allows swapping storage backends (SQLite, plain JSON
// files, etc.) without changing the tracker.
//
// Persistence is best-effort from the tracker's point of view: a load
// failure degrades to an empty collection and a save failure is logged and
// swallowed. The Store itself still reports errors so callers can decide.
type Store interface {
	// LoadPersons returns the person registry. A store with no saved
	// registry returns an empty slice and no error.
	LoadPersons(ctx context.Context) ([]models.Person, error)

	// SavePersons replaces the stored person registry.
	SavePersons(ctx context.Context, persons []models.Person) error

	// LoadTransactions returns the transaction log, most recent first.
	// A store with no saved log returns an empty slice and no error.
	LoadTransactions(ctx context.Context) ([]models.Transaction, error)

	// SaveTransactions replaces the stored transaction log.
	SaveTransactions(ctx context.Context, txs []models.Transaction) error

	// Close releases any resources held by the store.
	Close() error
}
