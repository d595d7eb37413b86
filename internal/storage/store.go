package storage

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/vibeloop/vibeloop/internal/metrics"
	"github.com/vibeloop/vibeloop/internal/model"
)

// Store owns the persisted snapshot. Slot failures never reach callers:
// they are logged, counted, and degrade to an absent read or a dropped
// write. Every operation holds the same mutex, so read-modify-write cycles
// made through Update are serialized.
type Store struct {
	slot Slot
	key  string
	now  func() time.Time
	mu   sync.Mutex
}

func NewStore(slot Slot) *Store {
	return &Store{
		slot: slot,
		key:  model.StorageKey,
		now:  time.Now,
	}
}

// WithClock overrides the lastUpdated time source.
func (s *Store) WithClock(now func() time.Time) *Store {
	s.now = now
	return s
}

// Read returns the snapshot, or false when none is stored or it can't be decoded.
func (s *Store) Read(ctx context.Context) (*model.Snapshot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, state := s.read(ctx)
	return snap, state == stateOK
}

// Write persists members as a new snapshot stamped with the current time.
func (s *Store) Write(ctx context.Context, members []model.TeamMember) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.write(ctx, members)
}

func (s *Store) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.slot.Delete(ctx, s.key)
	if err != nil {
		s.fail("clear", err)
	}
}

// InitializeIfEmpty writes seed when the slot is empty or holds an
// undecodable snapshot. A failed read leaves the slot alone.
func (s *Store) InitializeIfEmpty(ctx context.Context, seed []model.TeamMember) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch _, state := s.read(ctx); state {
	case stateOK:
		return
	case stateUnavailable:
		slog.Warn("skipping seed, snapshot could not be read")
		return
	}
	slog.Info("seeding snapshot", "member_count", len(seed))
	s.write(ctx, seed)
}

// Update runs fn against the current snapshot and persists the result when
// fn succeeds. It fails with model.ErrNoData when nothing is stored.
func (s *Store) Update(ctx context.Context, fn func(snap *model.Snapshot) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, state := s.read(ctx)
	if state != stateOK {
		return model.ErrNoData
	}

	err := fn(snap)
	if err != nil {
		return err
	}

	s.write(ctx, snap.Members)
	return nil
}

// readState tells an empty slot apart from one that holds bytes we could not
// decode and from one that could not be read at all.
type readState int

const (
	stateOK readState = iota
	stateEmpty
	stateUndecodable
	stateUnavailable
)

func (s *Store) read(ctx context.Context) (*model.Snapshot, readState) {
	data, err := s.slot.Get(ctx, s.key)
	if errors.Is(err, ErrSlotEmpty) {
		return nil, stateEmpty
	}
	if err != nil {
		s.fail("read", err)
		return nil, stateUnavailable
	}
	if len(data) == 0 {
		return nil, stateEmpty
	}

	var snap model.Snapshot
	err = json.Unmarshal(data, &snap)
	if err != nil {
		s.fail("decode", err)
		return nil, stateUndecodable
	}

	return &snap, stateOK
}

func (s *Store) write(ctx context.Context, members []model.TeamMember) {
	if members == nil {
		members = []model.TeamMember{}
	}
	for i := range members {
		if members[i].Goals == nil {
			members[i].Goals = []model.Goal{}
		}
	}

	data, err := json.Marshal(model.Snapshot{
		Members:     members,
		LastUpdated: s.now().UTC(),
	})
	if err != nil {
		s.fail("encode", err)
		return
	}

	err = s.slot.Put(ctx, s.key, data)
	if err != nil {
		s.fail("write", err)
	}
}

func (s *Store) fail(op string, err error) {
	metrics.StorageErrors.WithLabelValues(op).Inc()
	slog.Error("snapshot storage failed", "op", op, "key", s.key, "error", err)
}
