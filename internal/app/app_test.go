package app

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vibeloop/vibeloop/internal/config"
)

func TestNew_MemoryDriver(t *testing.T) {
	cfg := &config.Config{
		StorageDriver:    "memory",
		SimulatedLatency: 0,
		RefreshInterval:  time.Minute,
	}

	a, err := New(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })

	members, err := a.MemberRepository.Members(context.Background())
	require.NoError(t, err)
	assert.Len(t, members, 5)

	_, ok := a.Store.Read(context.Background())
	assert.True(t, ok)
}

func TestNew_SQLDriver(t *testing.T) {
	ctx := context.Background()
	cfg := &config.Config{
		StorageDriver:   "sql",
		DBDriver:        "sqlite",
		DBConnection:    filepath.Join(t.TempDir(), "vibeloop.db"),
		RefreshInterval: time.Minute,
	}

	a, err := New(ctx, cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })

	_, err = a.MemberRepository.Members(ctx)
	require.NoError(t, err)
	goal, err := a.GoalRepository.Create(ctx, "3", "Plan the retro", "2026-10-18")
	require.NoError(t, err)

	snap, ok := a.Store.Read(ctx)
	require.True(t, ok)
	assert.Equal(t, goal.ID, snap.Members[2].Goals[0].ID)
}

func TestNew_UnknownDriver(t *testing.T) {
	_, err := New(context.Background(), &config.Config{StorageDriver: "tape"})

	assert.ErrorContains(t, err, "failed to initialize storage")
}
