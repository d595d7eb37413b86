package storage

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
)

// SQLSlot keeps each key as one row of the kv_slots table.
type SQLSlot struct {
	db *sqlx.DB
}

func NewSQLSlot(db *sqlx.DB) *SQLSlot {
	return &SQLSlot{db: db}
}

func (s *SQLSlot) Get(ctx context.Context, key string) ([]byte, error) {
	var value string
	query := `SELECT value FROM kv_slots WHERE key = $1`

	err := s.db.GetContext(ctx, &value, query, key)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSlotEmpty
	}
	if err != nil {
		return nil, err
	}

	return []byte(value), nil
}

func (s *SQLSlot) Put(ctx context.Context, key string, value []byte) error {
	query := `INSERT INTO kv_slots (key, value, updated_at)
	          VALUES ($1, $2, $3)
	          ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`

	_, err := s.db.ExecContext(ctx, query, key, string(value), time.Now().UTC())
	return err
}

func (s *SQLSlot) Delete(ctx context.Context, key string) error {
	query := `DELETE FROM kv_slots WHERE key = $1`
	_, err := s.db.ExecContext(ctx, query, key)
	return err
}

func (s *SQLSlot) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
