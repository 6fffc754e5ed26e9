package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/lumina-app/lumina-engine/internal/core/domain"
)

var _ domain.BlobStore = (*PostgresBlobStore)(nil)

// PostgresBlobStore keeps every collection as one JSON blob in a single
// key/value table, preserving the whole-blob write-through model.
type PostgresBlobStore struct {
	db *sqlx.DB
}

// NewPostgresBlobStore creates the store and ensures its table exists.
func NewPostgresBlobStore(db *sqlx.DB) (*PostgresBlobStore, error) {
	schema := `
		CREATE TABLE IF NOT EXISTS blobs (
			key        TEXT PRIMARY KEY,
			value      JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`

	if _, err := db.Exec(schema); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "42501" {
			return nil, fmt.Errorf("blob schema setup: insufficient privileges to create table: %w", err)
		}
		return nil, fmt.Errorf("blob schema setup: %w", err)
	}

	return &PostgresBlobStore{db: db}, nil
}

func (s *PostgresBlobStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var value []byte
	err := s.db.GetContext(ctx, &value, `SELECT value FROM blobs WHERE key = $1`, key)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return value, true, nil
}

func (s *PostgresBlobStore) Set(ctx context.Context, key string, value []byte) error {
	query := `
		INSERT INTO blobs (key, value, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (key) DO UPDATE
		SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`

	_, err := s.db.ExecContext(ctx, query, key, value, time.Now().UTC())
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "22P02" {
			return fmt.Errorf("blob under %q is not valid JSON: %w", key, err)
		}
		return err
	}
	return nil
}

func (s *PostgresBlobStore) Delete(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM blobs WHERE key = $1`, key)
	return err
}

// DeleteAll removes every key the engine owns. Scoped by prefix so a
// shared database does not lose unrelated rows.
func (s *PostgresBlobStore) DeleteAll(ctx context.Context) error {
	pattern := strings.ReplaceAll(domain.KeyPrefix, "_", `\_`) + "%"
	_, err := s.db.ExecContext(ctx, `DELETE FROM blobs WHERE key LIKE $1`, pattern)
	return err
}
