package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test, giving free
// per-test isolation without any manual cleanup.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PostgresSlots stores slots as rows of the goose-migrated slots table.
// Each Write replaces the row's value wholesale, mirroring the file backend.
type PostgresSlots struct {
	db db
}

// NewPostgresSlots constructs a PostgresSlots backed by the provided db
// connection. In production pass *pgxpool.Pool; in tests pass a pgx.Tx for
// rollback isolation.
func NewPostgresSlots(db db) *PostgresSlots {
	return &PostgresSlots{db: db}
}

// Read returns the slot row's value, or ok=false when no row exists.
func (s *PostgresSlots) Read(ctx context.Context, key string) (string, bool, error) {
	const q = `SELECT value FROM slots WHERE key = @key`

	var value string
	err := s.db.QueryRow(ctx, q, pgx.NamedArgs{"key": key}).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("repo.PostgresSlots.Read: %w", err)
	}
	return value, true, nil
}

// Write upserts the slot row.
func (s *PostgresSlots) Write(ctx context.Context, key, value string) error {
	const q = `
		INSERT INTO slots (key, value)
		VALUES (@key, @value)
		ON CONFLICT (key) DO UPDATE
		SET value = EXCLUDED.value, updated_at = now()`

	if _, err := s.db.Exec(ctx, q, pgx.NamedArgs{"key": key, "value": value}); err != nil {
		return fmt.Errorf("repo.PostgresSlots.Write: %w", err)
	}
	return nil
}
