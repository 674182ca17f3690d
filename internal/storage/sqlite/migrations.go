package sqlite

import "database/sql"

// migrations contains the SQL statements to set up the database schema.
// These run on startup to ensure the table exists.
//
// The store is a key-value table with one row per collection; each value is
// the whole collection serialized as JSON. At personal-finance scale the
// collections are small enough that whole-collection writes beat row-level
// bookkeeping.
const schema = `
CREATE TABLE IF NOT EXISTS collections (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL,
    updated_at INTEGER NOT NULL
);
`

// runMigrations executes the schema setup.
func runMigrations(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
