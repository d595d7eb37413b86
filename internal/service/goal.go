package service

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/vibeloop/vibeloop/internal/model"
	"github.com/vibeloop/vibeloop/internal/repository"
	"github.com/vibeloop/vibeloop/internal/validation"
)

// GoalService wraps goal mutations with a loading flag and the last failure message.
type GoalService struct {
	repo repository.GoalRepository

	mu      sync.RWMutex
	loading bool
	errMsg  string
}

func NewGoalService(repo repository.GoalRepository) *GoalService {
	return &GoalService{repo: repo}
}

func (s *GoalService) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// ErrorMessage returns the last failure message, or "" when the last call succeeded.
func (s *GoalService) ErrorMessage() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.errMsg
}

func (s *GoalService) Create(ctx context.Context, req model.CreateGoalRequest) (*model.Goal, error) {
	s.set(true, "")
	goal, err := s.create(ctx, req)
	if err != nil {
		slog.Error("failed to add goal", "error", err, "member_id", req.MemberID)
		s.set(false, message(err, "Failed to add goal"))
		return nil, err
	}
	s.set(false, "")
	return goal, nil
}

func (s *GoalService) create(ctx context.Context, req model.CreateGoalRequest) (*model.Goal, error) {
	err := validation.ValidateID("member", req.MemberID)
	if err != nil {
		return nil, err
	}
	err = validation.ValidateGoalDescription(req.Description)
	if err != nil {
		return nil, err
	}
	err = validation.ValidateGoalDate(req.Date)
	if err != nil {
		return nil, err
	}

	return s.repo.Create(ctx, req.MemberID, strings.TrimSpace(req.Description), req.Date)
}

// Toggle sets a goal's completion flag.
func (s *GoalService) Toggle(ctx context.Context, goalID string, completed bool) (*model.Goal, error) {
	s.setError("")
	goal, err := s.repo.SetCompletion(ctx, goalID, completed)
	if err != nil {
		slog.Error("failed to update goal", "error", err, "goal_id", goalID)
		s.setError(message(err, "Failed to update goal"))
		return nil, err
	}
	return goal, nil
}

func (s *GoalService) Remove(ctx context.Context, goalID string) error {
	s.setError("")
	_, err := s.repo.Delete(ctx, goalID)
	if err != nil {
		slog.Error("failed to delete goal", "error", err, "goal_id", goalID)
		s.setError(message(err, "Failed to delete goal"))
		return err
	}
	return nil
}

func (s *GoalService) set(loading bool, errMsg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = loading
	s.errMsg = errMsg
}

func (s *GoalService) setError(errMsg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errMsg = errMsg
}
