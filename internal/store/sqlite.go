package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/pressly/goose/v3"

	"github.com/tobim/famvault/internal/account"
	"github.com/tobim/famvault/internal/store/migrations"
)

// accountKey is the single well-known key under which the one account
// record of the device is kept.
const accountKey = "userAccount"

// SQLiteStore keeps the account record as a JSON blob in a key-value table.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore wraps an already opened database handle.
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// OpenSQLiteStore opens (or creates) the database at dsn and returns a store
// bound to it. Callers still need Ready before first use.
func OpenSQLiteStore(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open account database: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// Ready runs the embedded schema migrations.
func (s *SQLiteStore) Ready(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, s.db, "."); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

// Load returns the persisted account record, or nil if none exists.
func (s *SQLiteStore) Load(ctx context.Context) (*account.Record, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM account_records WHERE key = ?`, accountKey).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load account record: %w", err)
	}
	var r account.Record
	if err := json.Unmarshal(value, &r); err != nil {
		return nil, fmt.Errorf("failed to decode account record: %w", err)
	}
	return &r, nil
}

// Save overwrites the persisted account record.
func (s *SQLiteStore) Save(ctx context.Context, r *account.Record) error {
	value, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("failed to encode account record: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO account_records (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, accountKey, value)
	if err != nil {
		return fmt.Errorf("failed to save account record: %w", err)
	}
	return nil
}

// Clear erases the persisted account record.
func (s *SQLiteStore) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM account_records WHERE key = ?`, accountKey)
	if err != nil {
		return fmt.Errorf("failed to clear account record: %w", err)
	}
	return nil
}

// Close releases the underlying database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
