package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // pure go sqlite driver

	"nocheckin/internal/domain"
)

// SQLiteBackend stores every bucket as a row of a single state table.
type SQLiteBackend struct {
	db *sql.DB
}

// NewSQLiteBackend opens (creating if needed) the database at path.
func NewSQLiteBackend(ctx context.Context, path string) (*SQLiteBackend, error) {
	if path == "" {
		path = "nocheckin.db"
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil && !errors.Is(err, os.ErrExist) {
		return nil, fmt.Errorf("create dirs: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS state (
		bucket TEXT PRIMARY KEY,
		payload BLOB NOT NULL
	)`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create state table: %w", err)
	}
	return &SQLiteBackend{db: db}, nil
}

// Get selects the bucket's payload.
func (s *SQLiteBackend) Get(ctx context.Context, bucket domain.Bucket) ([]byte, bool, error) {
	var payload []byte
	err := s.db.QueryRowContext(ctx, `SELECT payload FROM state WHERE bucket = ?`, string(bucket)).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("select %s: %w", bucket, err)
	}
	return payload, true, nil
}

// Put upserts the bucket's payload.
func (s *SQLiteBackend) Put(ctx context.Context, bucket domain.Bucket, payload []byte) error {
	if _, err := s.db.ExecContext(ctx,
		`INSERT INTO state(bucket,payload) VALUES(?,?) ON CONFLICT(bucket) DO UPDATE SET payload=excluded.payload`,
		string(bucket), payload,
	); err != nil {
		return fmt.Errorf("upsert %s: %w", bucket, err)
	}
	return nil
}

// Delete removes the given buckets in one transaction.
func (s *SQLiteBackend) Delete(ctx context.Context, buckets ...domain.Bucket) (retErr error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if retErr != nil {
			_ = tx.Rollback()
		}
	}()
	for _, b := range buckets {
		if _, err := tx.ExecContext(ctx, `DELETE FROM state WHERE bucket = ?`, string(b)); err != nil {
			return fmt.Errorf("delete %s: %w", b, err)
		}
	}
	return tx.Commit()
}

// Close closes the database.
func (s *SQLiteBackend) Close() error { return s.db.Close() }

// Compile-time assertion that SQLiteBackend implements Backend.
var _ Backend = (*SQLiteBackend)(nil)
