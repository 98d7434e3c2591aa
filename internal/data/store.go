package data

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/appdotbuilder/wellness-chat-tracker/internal/biz/repo"

	_ "modernc.org/sqlite"
)

// dbtx is the shared subset of *sql.DB and *sql.Tx the queries use
type dbtx interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Store implements the persistence gateway over a sqlite database
type Store struct {
	db *sql.DB
	q  dbtx
}

var _ repo.Gateway = (*Store)(nil)

// Open opens (creating if needed) the sqlite database and ensures the schema
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to create schema: %w", err)
		}
	}

	return &Store{db: db, q: db}, nil
}

// Atomic runs fn against a transaction-bound gateway. The transaction
// commits when fn returns nil and rolls back otherwise; nested calls join
// the enclosing transaction.
func (s *Store) Atomic(ctx context.Context, fn func(repo.Gateway) error) error {
	if _, inTx := s.q.(*sql.Tx); inTx {
		return fn(s)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	if err := fn(&Store{db: s.db, q: tx}); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		age INTEGER,
		gender TEXT,
		height_cm REAL,
		weight_kg REAL,
		activity_level TEXT,
		goals TEXT NOT NULL DEFAULT '',
		onboarded INTEGER NOT NULL DEFAULT 0,
		created_at INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS messages (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		text TEXT NOT NULL,
		direction TEXT NOT NULL,
		extracted INTEGER NOT NULL DEFAULT 0,
		created_at INTEGER NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_messages_user_created ON messages(user_id, created_at)`,
	`CREATE TABLE IF NOT EXISTS activities (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		activity_type TEXT NOT NULL,
		duration_minutes INTEGER NOT NULL,
		calories REAL,
		intensity TEXT,
		note TEXT NOT NULL DEFAULT '',
		recorded_at INTEGER NOT NULL,
		created_at INTEGER NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_activities_user_recorded ON activities(user_id, recorded_at)`,
	`CREATE TABLE IF NOT EXISTS nutrition (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		meal TEXT NOT NULL,
		food TEXT NOT NULL,
		quantity TEXT NOT NULL,
		calories REAL,
		note TEXT NOT NULL DEFAULT '',
		recorded_at INTEGER NOT NULL,
		created_at INTEGER NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_nutrition_user_recorded ON nutrition(user_id, recorded_at)`,
	`CREATE TABLE IF NOT EXISTS hydration (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		amount_ml INTEGER NOT NULL,
		beverage TEXT NOT NULL,
		note TEXT NOT NULL DEFAULT '',
		recorded_at INTEGER NOT NULL,
		created_at INTEGER NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_hydration_user_recorded ON hydration(user_id, recorded_at)`,
	`CREATE TABLE IF NOT EXISTS sleep (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		bedtime INTEGER NOT NULL,
		wake_time INTEGER NOT NULL,
		duration_hours REAL NOT NULL,
		quality TEXT,
		note TEXT NOT NULL DEFAULT '',
		recorded_at INTEGER NOT NULL,
		created_at INTEGER NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_sleep_user_recorded ON sleep(user_id, recorded_at)`,
	`CREATE TABLE IF NOT EXISTS wellbeing (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		mood TEXT NOT NULL,
		stress TEXT NOT NULL,
		energy TEXT NOT NULL,
		note TEXT NOT NULL DEFAULT '',
		recorded_at INTEGER NOT NULL,
		created_at INTEGER NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_wellbeing_user_recorded ON wellbeing(user_id, recorded_at)`,
	`CREATE TABLE IF NOT EXISTS recommendations (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		category TEXT NOT NULL,
		title TEXT NOT NULL,
		description TEXT NOT NULL,
		priority TEXT NOT NULL,
		is_read INTEGER NOT NULL DEFAULT 0,
		created_at INTEGER NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_recommendations_user_created ON recommendations(user_id, created_at)`,
}
