package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	cfg "github.com/vibeloop/vibeloop/internal/config"
	"github.com/vibeloop/vibeloop/internal/db"
)

const (
	DriverMemory = "memory"
	DriverFile   = "file"
	DriverSQL    = "sql"
	DriverS3     = "s3"
)

// ErrSlotEmpty is returned by Slot.Get when nothing is stored under the key.
var ErrSlotEmpty = errors.New("slot is empty")

// Slot defines the interface for a persistent key-value slot
type Slot interface {
	// Get returns the stored bytes or ErrSlotEmpty
	Get(ctx context.Context, key string) ([]byte, error)

	// Put replaces the stored bytes
	Put(ctx context.Context, key string, value []byte) error

	// Delete removes the key; deleting an absent key is not an error
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the slot
	Close() error
}

// New opens the slot selected by STORAGE_DRIVER.
func New(ctx context.Context, c *cfg.Config) (Slot, error) {
	slog.Info("initializing storage", "driver", c.StorageDriver)

	switch c.StorageDriver {
	case DriverMemory:
		return NewMemorySlot(), nil
	case DriverFile:
		return NewFileSlot(c.StorageDir)
	case DriverSQL:
		database, err := db.Open(ctx, c.DBDriver, c.DBConnection)
		if err != nil {
			return nil, fmt.Errorf("failed to open database: %w", err)
		}
		return NewSQLSlot(database), nil
	case DriverS3:
		return NewS3Slot(ctx, S3Config{
			Region:    c.S3Region,
			Bucket:    c.S3Bucket,
			AccessKey: c.S3AccessKey,
			SecretKey: c.S3SecretKey,
			Endpoint:  c.S3Endpoint,
			PathStyle: c.S3PathStyle,
		})
	default:
		return nil, fmt.Errorf("unknown storage driver %q", c.StorageDriver)
	}
}
