package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/vibeloop/vibeloop/internal/model"
	"github.com/vibeloop/vibeloop/internal/storage"
)

var testNow = time.Date(2026, 10, 18, 14, 0, 0, 0, time.Local)

func clock() time.Time {
	return testNow
}

type fixture struct {
	slot    *storage.MemorySlot
	store   *storage.Store
	members MemberRepository
	goals   GoalRepository
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	slot := storage.NewMemorySlot()
	store := storage.NewStore(slot).WithClock(clock)
	opts := []Option{WithLatency(0), WithClock(clock)}
	return &fixture{
		slot:    slot,
		store:   store,
		members: NewMemberRepository(store, opts...),
		goals:   NewGoalRepository(store, opts...),
	}
}

// seeded lists members once so the sample team is persisted.
func (f *fixture) seeded(t *testing.T) *fixture {
	t.Helper()
	_, err := f.members.Members(context.Background())
	require.NoError(t, err)
	return f
}

func (f *fixture) raw(t *testing.T) string {
	t.Helper()
	b, err := f.slot.Get(context.Background(), model.StorageKey)
	require.NoError(t, err)
	return string(b)
}

func (f *fixture) snapshot(t *testing.T) *model.Snapshot {
	t.Helper()
	snap, ok := f.store.Read(context.Background())
	require.True(t, ok)
	return snap
}

func names(members []model.TeamMember) []string {
	out := make([]string, len(members))
	for i, m := range members {
		out[i] = m.Name
	}
	return out
}

// readOnlySlot drops every write.
type readOnlySlot struct {
	*storage.MemorySlot
}

func (s *readOnlySlot) Put(context.Context, string, []byte) error {
	return errors.New("read-only")
}

// flakySlot fails the next getFailures reads.
type flakySlot struct {
	*storage.MemorySlot
	getFailures int
}

func (s *flakySlot) Get(ctx context.Context, key string) ([]byte, error) {
	if s.getFailures > 0 {
		s.getFailures--
		return nil, errors.New("connection reset by peer")
	}
	return s.MemorySlot.Get(ctx, key)
}
