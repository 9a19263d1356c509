package db

import (
	"database/sql"
	"fmt"
)

// Migrate runs all schema migrations. Statements are idempotent, so it is
// safe to call on an already-migrated database.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	// seq records creation order: upserts keep it, so an edited product
	// stays where it was first added.
	`CREATE TABLE IF NOT EXISTS custom_products (
		seq        INTEGER PRIMARY KEY AUTOINCREMENT,
		id         TEXT NOT NULL UNIQUE,
		name       TEXT NOT NULL,
		category   TEXT NOT NULL
		           CHECK(category IN ('Waterproofing','Paint','Sealer')),
		yield      REAL NOT NULL CHECK(yield > 0),
		price      REAL NOT NULL CHECK(price >= 0),
		brand      TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_custom_products_category ON custom_products(category)`,
}
