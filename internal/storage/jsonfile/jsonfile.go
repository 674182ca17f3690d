// Package jsonfile provides a plain-file implementation of the storage.Store
// interface: each collection is one JSON file in a directory. Useful for
// inspecting or hand-editing the data, and as a dependency-free fallback.
package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mkhatri/moneyman/internal/models"
	"github.com/mkhatri/moneyman/internal/storage"
)

const (
	personsFile      = "persons.json"
	transactionsFile = "transactions.json"
)

// Ensure JSONFileStore implements storage.Store
var _ storage.Store = (*JSONFileStore)(nil)

// JSONFileStore implements storage.Store with one JSON file per collection.
type JSONFileStore struct {
	dir string
}

// New creates a JSONFileStore rooted at dir, creating it if needed.
func New(dir string) (*JSONFileStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return &JSONFileStore{dir: dir}, nil
}

// Close is a no-op; files are opened per call.
func (s *JSONFileStore) Close() error { return nil }

// LoadPersons reads the person registry file.
func (s *JSONFileStore) LoadPersons(ctx context.Context) ([]models.Person, error) {
	persons := []models.Person{}
	if err := s.load(personsFile, &persons); err != nil {
		return nil, fmt.Errorf("failed to load persons: %w", err)
	}
	return persons, nil
}

// SavePersons writes the person registry file.
func (s *JSONFileStore) SavePersons(ctx context.Context, persons []models.Person) error {
	if persons == nil {
		persons = []models.Person{}
	}
	if err := s.save(personsFile, persons); err != nil {
		return fmt.Errorf("failed to save persons: %w", err)
	}
	return nil
}

// LoadTransactions reads the transaction log file.
func (s *JSONFileStore) LoadTransactions(ctx context.Context) ([]models.Transaction, error) {
	txs := []models.Transaction{}
	if err := s.load(transactionsFile, &txs); err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}
	return txs, nil
}

// SaveTransactions writes the transaction log file.
func (s *JSONFileStore) SaveTransactions(ctx context.Context, txs []models.Transaction) error {
	if txs == nil {
		txs = []models.Transaction{}
	}
	if err := s.save(transactionsFile, txs); err != nil {
		return fmt.Errorf("failed to save transactions: %w", err)
	}
	return nil
}

// load unmarshals the named file into dst. A missing file means the
// collection was never saved; dst is left as-is.
func (s *JSONFileStore) load(name string, dst any) error {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("failed to decode %s: %w", name, err)
	}
	return nil
}

// save writes the collection to a temp file and renames it into place, so a
// crash mid-write never leaves a truncated collection behind.
func (s *JSONFileStore) save(name string, collection any) error {
	data, err := json.MarshalIndent(collection, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", name, err)
	}

	tmp := filepath.Join(s.dir, name+".tmp")
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	if err := os.Rename(tmp, filepath.Join(s.dir, name)); err != nil {
		return fmt.Errorf("failed to replace %s: %w", name, err)
	}
	return nil
}
