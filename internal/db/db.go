// Package db opens the SQL database behind the sql storage driver and keeps
// its kv_slots schema current.
package db

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

// dialects lists the database/sql drivers the sql slot runs on.
var dialects = map[string]goose.Dialect{
	"sqlite": goose.DialectSQLite3,
	"pgx":    goose.DialectPostgres,
}

// Open connects to the database and applies pending kv_slots migrations.
func Open(ctx context.Context, driver, dsn string) (*sqlx.DB, error) {
	dialect, ok := dialects[driver]
	if !ok {
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	if driver == "sqlite" {
		err := os.MkdirAll(filepath.Dir(dsn), 0755)
		if err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	database, err := sqlx.ConnectContext(ctx, driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect: %w", err)
	}

	// SQLite allows one writer; Postgres gets a small pool for concurrent reads.
	if driver == "sqlite" {
		database.SetMaxOpenConns(1)
	} else {
		database.SetMaxOpenConns(4)
		database.SetMaxIdleConns(2)
		database.SetConnMaxLifetime(5 * time.Minute)
	}

	err = migrate(ctx, database, dialect)
	if err != nil {
		_ = database.Close()
		return nil, err
	}

	slog.Info("database ready", "driver", driver)
	return database, nil
}
