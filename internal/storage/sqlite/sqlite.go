// Package sqlite provides a SQLite-backed implementation of the storage.Store interface.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/mkhatri/moneyman/internal/models"
	"github.com/mkhatri/moneyman/internal/storage"
)

// Collection keys. These match the localStorage keys used by earlier
// versions of the tracker so an imported dump stays recognizable.
const (
	personsKey      = "persons_v1"
	transactionsKey = "transactions_v1"
)

// Ensure SQLiteStore implements storage.Store
var _ storage.Store = (*SQLiteStore)(nil)

// SQLiteStore implements storage.Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// New creates a new SQLiteStore with the given database path.
// It creates the parent directories and runs migrations automatically.
func New(dbPath string) (*SQLiteStore, error) {
	// Create parent directory if it doesn't exist
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	// Open database with pure Go driver
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Run migrations
	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// LoadPersons retrieves the person registry.
func (s *SQLiteStore) LoadPersons(ctx context.Context) ([]models.Person, error) {
	persons := []models.Person{}
	if err := s.load(ctx, personsKey, &persons); err != nil {
		return nil, fmt.Errorf("failed to load persons: %w", err)
	}
	return persons, nil
}

// SavePersons replaces the stored person registry.
func (s *SQLiteStore) SavePersons(ctx context.Context, persons []models.Person) error {
	if persons == nil {
		persons = []models.Person{}
	}
	if err := s.save(ctx, personsKey, persons); err != nil {
		return fmt.Errorf("failed to save persons: %w", err)
	}
	return nil
}

// LoadTransactions retrieves the transaction log.
func (s *SQLiteStore) LoadTransactions(ctx context.Context) ([]models.Transaction, error) {
	txs := []models.Transaction{}
	if err := s.load(ctx, transactionsKey, &txs); err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}
	return txs, nil
}

// SaveTransactions replaces the stored transaction log.
func (s *SQLiteStore) SaveTransactions(ctx context.Context, txs []models.Transaction) error {
	if txs == nil {
		txs = []models.Transaction{}
	}
	if err := s.save(ctx, transactionsKey, txs); err != nil {
		return fmt.Errorf("failed to save transactions: %w", err)
	}
	return nil
}

// load unmarshals the collection stored under key into dst.
// A missing row means the collection was never saved; dst is left as-is.
func (s *SQLiteStore) load(ctx context.Context, key string, dst any) error {
	var raw string
	err := s.db.QueryRowContext(ctx,
		"SELECT value FROM collections WHERE key = ?", key,
	).Scan(&raw)
	if err == sql.ErrNoRows {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read collection %q: %w", key, err)
	}

	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return fmt.Errorf("failed to decode collection %q: %w", key, err)
	}
	return nil
}

// save serializes the collection and upserts it under key.
func (s *SQLiteStore) save(ctx context.Context, key string, collection any) error {
	raw, err := json.Marshal(collection)
	if err != nil {
		return fmt.Errorf("failed to encode collection %q: %w", key, err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO collections (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, string(raw), time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to write collection %q: %w", key, err)
	}
	return nil
}
