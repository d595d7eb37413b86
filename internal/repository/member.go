package repository

import (
	"context"
	"slices"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/vibeloop/vibeloop/internal/model"
	"github.com/vibeloop/vibeloop/internal/storage"
)

type MemberRepository interface {
	Members(ctx context.Context) ([]model.TeamMember, error)
	UpdateMood(ctx context.Context, memberID string, mood model.Mood, timestamp time.Time) (*model.TeamMember, error)
}

type memberRepository struct {
	store *storage.Store
	opts  options
}

func NewMemberRepository(store *storage.Store, opts ...Option) MemberRepository {
	return &memberRepository{store: store, opts: newOptions(opts)}
}

// Members seeds storage on first use and returns every member with only
// today's goals, ordered by name. When no snapshot can be read it falls back
// to the unfiltered seed.
func (r *memberRepository) Members(ctx context.Context) ([]model.TeamMember, error) {
	err := r.opts.delay(ctx)
	if err != nil {
		return nil, err
	}

	now := r.opts.now()
	seed := SeedMembers(now)
	r.store.InitializeIfEmpty(ctx, seed)

	snap, ok := r.store.Read(ctx)
	if !ok {
		return seed, nil
	}

	today := model.Day(now)
	members := make([]model.TeamMember, 0, len(snap.Members))
	for _, m := range snap.Members {
		goals := make([]model.Goal, 0, len(m.Goals))
		for _, g := range m.Goals {
			if g.Date == today {
				goals = append(goals, g)
			}
		}
		m.Goals = goals
		members = append(members, m)
	}

	// collate.Collator keeps iteration buffers; one per call.
	col := collate.New(language.English)
	slices.SortStableFunc(members, func(a, b model.TeamMember) int {
		return col.CompareString(a.Name, b.Name)
	})

	return members, nil
}

func (r *memberRepository) UpdateMood(ctx context.Context, memberID string, mood model.Mood, timestamp time.Time) (*model.TeamMember, error) {
	if !mood.Valid() {
		return nil, model.NewInvalidInputError("unknown mood " + string(mood))
	}

	err := r.opts.delay(ctx)
	if err != nil {
		return nil, err
	}

	var updated model.TeamMember
	err = r.store.Update(ctx, func(snap *model.Snapshot) error {
		i := slices.IndexFunc(snap.Members, func(m model.TeamMember) bool {
			return m.ID == memberID
		})
		if i == -1 {
			return model.NewNotFoundError("Member with id %s not found", memberID)
		}

		ts := timestamp
		snap.Members[i].Mood = &mood
		snap.Members[i].MoodUpdatedAt = &ts
		updated = snap.Members[i].Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &updated, nil
}
