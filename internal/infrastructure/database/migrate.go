package database

import (
	"context"
	"log"
)

// =====================================================
// SCHEMA BOOTSTRAP
// =====================================================
// Idempotent schema creation plus additive migrations, run once per
// process start. Ideally this would be a migration tool, but for this
// small schema we create it in place: every statement is safe to
// re-run, and failures are logged without halting startup so a
// half-migrated database still serves what it can.

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS recipes (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		image TEXT,
		rating DOUBLE PRECISION,
		description TEXT,
		ingredient_sections TEXT,
		instructions TEXT,
		notes TEXT,
		created_at BIGINT,
		user_id TEXT,
		is_public BOOLEAN DEFAULT FALSE
	)`,

	`CREATE TABLE IF NOT EXISTS users (
		id TEXT PRIMARY KEY,
		username TEXT UNIQUE,
		created_at BIGINT
	)`,

	`CREATE TABLE IF NOT EXISTS reviews (
		id TEXT PRIMARY KEY,
		recipe_id TEXT NOT NULL,
		user_id TEXT NOT NULL,
		text TEXT NOT NULL,
		created_at BIGINT,
		FOREIGN KEY (user_id) REFERENCES users (id)
	)`,
}

// Additive migrations for rows predating the ownership and visibility
// columns. ADD COLUMN IF NOT EXISTS keeps them re-runnable.
var migrationStatements = []string{
	`ALTER TABLE recipes ADD COLUMN IF NOT EXISTS user_id TEXT`,
	`ALTER TABLE recipes ADD COLUMN IF NOT EXISTS is_public BOOLEAN DEFAULT FALSE`,
}

// InitSchema creates the three tables and applies additive migrations.
func (db *PostgresDB) InitSchema(ctx context.Context) {
	if db.Pool == nil {
		log.Println("[DATABASE] Schema init skipped: no connection")
		return
	}

	for _, stmt := range schemaStatements {
		if _, err := db.Pool.Exec(ctx, stmt); err != nil {
			log.Printf("[DATABASE] Schema statement failed: %v", err)
		}
	}

	for _, stmt := range migrationStatements {
		if _, err := db.Pool.Exec(ctx, stmt); err != nil {
			log.Printf("[DATABASE] Migration failed: %v", err)
		}
	}

	log.Println("[DATABASE] Schema init completed")
}
