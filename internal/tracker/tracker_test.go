package tracker

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mkhatri/moneyman/internal/aggregate"
	"github.com/mkhatri/moneyman/internal/models"
	"github.com/mkhatri/moneyman/internal/storage/jsonfile"
	"github.com/mkhatri/moneyman/internal/storage/sqlite"
)

// setupTracker creates a tracker backed by a temp SQLite store.
func setupTracker(t *testing.T) *Tracker {
	t.Helper()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return New(context.Background(), store)
}

func draft(typ models.Type, amount, person string) models.Transaction {
	return models.Transaction{
		Title:  "test",
		Amount: decimal.RequireFromString(amount),
		Date:   time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		Type:   typ,
		Person: person,
	}
}

func TestAddTransaction(t *testing.T) {
	ctx := context.Background()

	t.Run("creates the person implicitly and normalizes the draft", func(t *testing.T) {
		tr := setupTracker(t)

		tx := tr.AddTransaction(ctx, draft(models.TypeLend, "50", "  Bob "))

		if tx.ID == "" {
			t.Error("expected a generated transaction ID")
		}
		if tx.Person != "Bob" {
			t.Errorf("person = %q, want %q", tx.Person, "Bob")
		}
		if tx.PersonID == "" {
			t.Fatal("expected a person ID on the transaction")
		}

		persons := tr.Persons()
		if len(persons) != 1 || persons[0].ID != tx.PersonID || persons[0].Name != "Bob" {
			t.Errorf("persons = %+v, want one entry matching the transaction", persons)
		}
	})

	t.Run("case-insensitive name reuses the existing identity", func(t *testing.T) {
		tr := setupTracker(t)

		first := tr.AddTransaction(ctx, draft(models.TypeLend, "50", "Bob"))
		second := tr.AddTransaction(ctx, draft(models.TypeBorrow, "20", "bob"))

		if second.PersonID != first.PersonID {
			t.Errorf("second PersonID = %q, want %q", second.PersonID, first.PersonID)
		}
		if second.Person != "Bob" {
			t.Errorf("second Person = %q, want normalized %q", second.Person, "Bob")
		}
		if len(tr.Persons()) != 1 {
			t.Errorf("persons = %d, want 1", len(tr.Persons()))
		}
	})

	t.Run("no person field leaves the reference empty", func(t *testing.T) {
		tr := setupTracker(t)

		tx := tr.AddTransaction(ctx, draft(models.TypeExpense, "9.99", ""))
		if tx.PersonID != "" {
			t.Errorf("PersonID = %q, want empty", tx.PersonID)
		}
		if len(tr.Persons()) != 0 {
			t.Errorf("persons = %d, want 0", len(tr.Persons()))
		}
	})

	t.Run("log is newest first", func(t *testing.T) {
		tr := setupTracker(t)

		tr.AddTransaction(ctx, draft(models.TypeIncome, "1", ""))
		tr.AddTransaction(ctx, draft(models.TypeIncome, "2", ""))

		txs := tr.Transactions()
		if len(txs) != 2 {
			t.Fatalf("got %d transactions, want 2", len(txs))
		}
		if !txs[0].Amount.Equal(decimal.NewFromInt(2)) {
			t.Errorf("head amount = %s, want 2 (most recent)", txs[0].Amount)
		}
	})
}

func TestRemoveTransaction(t *testing.T) {
	ctx := context.Background()
	tr := setupTracker(t)

	kept := tr.AddTransaction(ctx, draft(models.TypeIncome, "1", ""))
	gone := tr.AddTransaction(ctx, draft(models.TypeIncome, "2", ""))

	tr.RemoveTransaction(ctx, gone.ID)
	if len(tr.Transactions()) != 1 || tr.Transactions()[0].ID != kept.ID {
		t.Errorf("transactions = %+v, want only %s", tr.Transactions(), kept.ID)
	}

	// Unknown id is a silent no-op.
	tr.RemoveTransaction(ctx, "nope")
	if len(tr.Transactions()) != 1 {
		t.Errorf("transactions = %d after no-op remove, want 1", len(tr.Transactions()))
	}
}

func TestRenamePerson(t *testing.T) {
	ctx := context.Background()

	t.Run("propagates to every referencing transaction", func(t *testing.T) {
		tr := setupTracker(t)

		t1 := tr.AddTransaction(ctx, draft(models.TypeLend, "50", "Bob"))
		tr.AddTransaction(ctx, draft(models.TypeBorrow, "20", "bob"))
		tr.AddTransaction(ctx, draft(models.TypeExpense, "5", ""))

		tr.RenamePerson(ctx, t1.PersonID, " Robert ")

		if tr.Persons()[0].Name != "Robert" {
			t.Errorf("person name = %q, want %q", tr.Persons()[0].Name, "Robert")
		}
		for _, tx := range tr.PersonTransactions(t1.PersonID) {
			if tx.Person != "Robert" {
				t.Errorf("transaction %s person = %q, want %q", tx.ID, tx.Person, "Robert")
			}
		}
	})

	t.Run("empty or unknown are silent no-ops", func(t *testing.T) {
		tr := setupTracker(t)
		tx := tr.AddTransaction(ctx, draft(models.TypeLend, "50", "Bob"))

		tr.RenamePerson(ctx, tx.PersonID, "   ")
		tr.RenamePerson(ctx, "nope", "Robert")

		if tr.Persons()[0].Name != "Bob" {
			t.Errorf("person name = %q, want unchanged %q", tr.Persons()[0].Name, "Bob")
		}
	})
}

func TestMergePeople(t *testing.T) {
	ctx := context.Background()

	t.Run("moves transactions and removes the source", func(t *testing.T) {
		tr := setupTracker(t)

		src := tr.AddTransaction(ctx, draft(models.TypeLend, "50", "Bobby"))
		dst := tr.AddTransaction(ctx, draft(models.TypeLend, "10", "Bob"))

		tr.MergePeople(ctx, src.PersonID, dst.PersonID)

		if len(tr.Persons()) != 1 || tr.Persons()[0].ID != dst.PersonID {
			t.Fatalf("persons = %+v, want only target", tr.Persons())
		}
		if got := tr.PersonTransactions(src.PersonID); len(got) != 0 {
			t.Errorf("source still has %d transactions", len(got))
		}
		moved := tr.PersonTransactions(dst.PersonID)
		if len(moved) != 2 {
			t.Fatalf("target has %d transactions, want 2", len(moved))
		}
		for _, tx := range moved {
			if tx.Person != "Bob" {
				t.Errorf("transaction %s person = %q, want target name %q", tx.ID, tx.Person, "Bob")
			}
		}

		// Merged balance folds both histories.
		bal := tr.Balances()[dst.PersonID]
		if !bal.Balance.Equal(decimal.NewFromInt(60)) {
			t.Errorf("merged balance = %s, want 60", bal.Balance)
		}
	})

	t.Run("equal, empty or missing ids are silent no-ops", func(t *testing.T) {
		tr := setupTracker(t)
		tx := tr.AddTransaction(ctx, draft(models.TypeLend, "50", "Bob"))

		tr.MergePeople(ctx, tx.PersonID, tx.PersonID)
		tr.MergePeople(ctx, "", tx.PersonID)
		tr.MergePeople(ctx, tx.PersonID, "")
		tr.MergePeople(ctx, tx.PersonID, "nope")
		tr.MergePeople(ctx, "nope", tx.PersonID)

		if len(tr.Persons()) != 1 {
			t.Errorf("persons = %d, want 1", len(tr.Persons()))
		}
		if got := tr.PersonTransactions(tx.PersonID); len(got) != 1 {
			t.Errorf("transactions = %d, want 1", len(got))
		}
	})
}

func TestDeletePerson(t *testing.T) {
	ctx := context.Background()
	tr := setupTracker(t)

	bob := tr.AddTransaction(ctx, draft(models.TypeLend, "50", "Bob"))
	tr.AddTransaction(ctx, draft(models.TypeBorrow, "20", "Bob"))
	other := tr.AddTransaction(ctx, draft(models.TypeExpense, "5", ""))

	tr.DeletePerson(ctx, bob.PersonID)

	if len(tr.Persons()) != 0 {
		t.Errorf("persons = %d, want 0", len(tr.Persons()))
	}
	txs := tr.Transactions()
	if len(txs) != 1 || txs[0].ID != other.ID {
		t.Errorf("transactions = %+v, want only the unrelated one", txs)
	}

	// Empty id is a silent no-op.
	tr.DeletePerson(ctx, "")
	if len(tr.Transactions()) != 1 {
		t.Errorf("transactions = %d after no-op delete, want 1", len(tr.Transactions()))
	}
}

func TestStatePersistsAcrossTrackers(t *testing.T) {
	ctx := context.Background()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	defer store.Close()

	first := New(ctx, store)
	tx := first.AddTransaction(ctx, draft(models.TypeLend, "50", "Bob"))
	first.RenamePerson(ctx, tx.PersonID, "Robert")

	second := New(ctx, store)
	if len(second.Persons()) != 1 || second.Persons()[0].Name != "Robert" {
		t.Errorf("persons = %+v, want renamed Robert", second.Persons())
	}
	txs := second.Transactions()
	if len(txs) != 1 || txs[0].Person != "Robert" {
		t.Errorf("transactions = %+v, want propagated rename", txs)
	}
}

func TestLoadFailureDegradesToEmpty(t *testing.T) {
	ctx := context.Background()

	dir := t.TempDir()
	store, err := jsonfile.New(dir)
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "transactions.json"), []byte("{broken"), 0644); err != nil {
		t.Fatalf("failed to corrupt store: %v", err)
	}

	tr := New(ctx, store)
	if len(tr.Transactions()) != 0 {
		t.Errorf("transactions = %d, want 0 after load failure", len(tr.Transactions()))
	}

	// The tracker stays usable.
	tr.AddTransaction(ctx, draft(models.TypeIncome, "1", ""))
	if len(tr.Transactions()) != 1 {
		t.Errorf("transactions = %d, want 1", len(tr.Transactions()))
	}
}

func TestTrackerReport(t *testing.T) {
	ctx := context.Background()
	tr := setupTracker(t)

	tr.AddTransaction(ctx, models.Transaction{
		Title:  "salary",
		Amount: decimal.NewFromInt(100),
		Date:   time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
		Type:   models.TypeIncome,
	})
	tr.AddTransaction(ctx, models.Transaction{
		Title:  "groceries",
		Amount: decimal.NewFromInt(40),
		Date:   time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC),
		Type:   models.TypeExpense,
	})

	buckets := tr.Report(aggregate.Monthly, 0)
	if len(buckets) != 1 || buckets[0].Key != "2024-01" {
		t.Fatalf("buckets = %+v, want one 2024-01 bucket", buckets)
	}
	if !buckets[0].Net.Equal(decimal.NewFromInt(60)) {
		t.Errorf("net = %s, want 60", buckets[0].Net)
	}
}
