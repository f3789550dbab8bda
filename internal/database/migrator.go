package database

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Migrator handles database schema migrations
type Migrator struct {
	pool *pgxpool.Pool
}

// NewMigrator creates a new migration runner
func NewMigrator(pool *pgxpool.Pool) *Migrator {
	return &Migrator{pool: pool}
}

// migration is one named schema step. Statements are embedded because the
// schema is small; the tracking table keeps re-runs cheap and idempotent.
type migration struct {
	name string
	sql  string
}

var migrations = []migration{
	{
		name: "001_accounts",
		sql: `CREATE TABLE IF NOT EXISTS accounts (
			login    TEXT PRIMARY KEY,
			secret   TEXT NOT NULL,
			name     TEXT NOT NULL,
			role     TEXT NOT NULL DEFAULT 'worker',
			blocked  BOOLEAN NOT NULL DEFAULT FALSE,
			chat_id  BIGINT
		)`,
	},
	{
		name: "002_productions",
		sql: `CREATE TABLE IF NOT EXISTS productions (
			id        SERIAL PRIMARY KEY,
			owner     TEXT NOT NULL,
			category  TEXT NOT NULL,
			quantity  TEXT NOT NULL,
			ts        TEXT NOT NULL,
			model     TEXT NOT NULL DEFAULT ''
		)`,
	},
	{
		name: "003_categories",
		sql: `CREATE TABLE IF NOT EXISTS categories (
			label TEXT PRIMARY KEY
		)`,
	},
}

// RunMigrations executes all pending schema migrations in order
//
// This function:
//  1. Creates a migrations tracking table if it doesn't exist
//  2. Skips migrations that have already been run
//  3. Records successful migrations in the tracking table
func (m *Migrator) RunMigrations(ctx context.Context) error {
	log.Println("Starting database migrations...")

	if err := m.createMigrationsTable(ctx); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	applied, err := m.getAppliedMigrations(ctx)
	if err != nil {
		return fmt.Errorf("failed to get applied migrations: %w", err)
	}

	for _, mig := range migrations {
		if applied[mig.name] {
			continue
		}
		log.Printf("Running migration: %s", mig.name)
		if _, err := m.pool.Exec(ctx, mig.sql); err != nil {
			return fmt.Errorf("migration %s failed: %w", mig.name, err)
		}
		if _, err := m.pool.Exec(ctx,
			`INSERT INTO schema_migrations(name) VALUES($1)`, mig.name); err != nil {
			return fmt.Errorf("failed to record migration %s: %w", mig.name, err)
		}
	}

	log.Println("Database migrations complete")
	return nil
}

func (m *Migrator) createMigrationsTable(ctx context.Context) error {
	_, err := m.pool.Exec(ctx,
		`CREATE TABLE IF NOT EXISTS schema_migrations (
			name       TEXT PRIMARY KEY,
			applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`)
	return err
}

func (m *Migrator) getAppliedMigrations(ctx context.Context) (map[string]bool, error) {
	rows, err := m.pool.Query(ctx, `SELECT name FROM schema_migrations`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	applied := make(map[string]bool)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		applied[name] = true
	}
	return applied, rows.Err()
}
