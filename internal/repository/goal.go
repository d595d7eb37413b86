package repository

import (
	"context"
	"slices"

	"github.com/google/uuid"

	"github.com/vibeloop/vibeloop/internal/model"
	"github.com/vibeloop/vibeloop/internal/storage"
)

type GoalRepository interface {
	Create(ctx context.Context, memberID, description, date string) (*model.Goal, error)
	SetCompletion(ctx context.Context, goalID string, completed bool) (*model.Goal, error)
	Delete(ctx context.Context, goalID string) (bool, error)
}

type goalRepository struct {
	store *storage.Store
	opts  options
}

func NewGoalRepository(store *storage.Store, opts ...Option) GoalRepository {
	return &goalRepository{store: store, opts: newOptions(opts)}
}

func (r *goalRepository) Create(ctx context.Context, memberID, description, date string) (*model.Goal, error) {
	err := r.opts.delay(ctx)
	if err != nil {
		return nil, err
	}

	var goal model.Goal
	err = r.store.Update(ctx, func(snap *model.Snapshot) error {
		i := slices.IndexFunc(snap.Members, func(m model.TeamMember) bool {
			return m.ID == memberID
		})
		if i == -1 {
			return model.NewNotFoundError("Member with id %s not found", memberID)
		}

		goal = model.Goal{
			ID:          uuid.NewString(),
			MemberID:    memberID,
			Description: description,
			Completed:   false,
			CreatedAt:   r.opts.now().UTC(),
			Date:        date,
		}
		snap.Members[i].Goals = append(snap.Members[i].Goals, goal)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &goal, nil
}

// SetCompletion updates the first goal with goalID in member-then-goal order.
func (r *goalRepository) SetCompletion(ctx context.Context, goalID string, completed bool) (*model.Goal, error) {
	err := r.opts.delay(ctx)
	if err != nil {
		return nil, err
	}

	var goal model.Goal
	err = r.store.Update(ctx, func(snap *model.Snapshot) error {
		mi, gi, ok := findGoal(snap.Members, goalID)
		if !ok {
			return model.NewNotFoundError("Goal with id %s not found", goalID)
		}

		snap.Members[mi].Goals[gi].Completed = completed
		goal = snap.Members[mi].Goals[gi]
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &goal, nil
}

func (r *goalRepository) Delete(ctx context.Context, goalID string) (bool, error) {
	err := r.opts.delay(ctx)
	if err != nil {
		return false, err
	}

	err = r.store.Update(ctx, func(snap *model.Snapshot) error {
		mi, gi, ok := findGoal(snap.Members, goalID)
		if !ok {
			return model.NewNotFoundError("Goal with id %s not found", goalID)
		}

		snap.Members[mi].Goals = slices.Delete(snap.Members[mi].Goals, gi, gi+1)
		return nil
	})
	if err != nil {
		return false, err
	}

	return true, nil
}

func findGoal(members []model.TeamMember, goalID string) (memberIdx, goalIdx int, ok bool) {
	for mi, m := range members {
		for gi, g := range m.Goals {
			if g.ID == goalID {
				return mi, gi, true
			}
		}
	}
	return -1, -1, false
}
