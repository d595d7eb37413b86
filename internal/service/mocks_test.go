package service

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/vibeloop/vibeloop/internal/model"
)

type MockMemberRepository struct {
	mock.Mock
}

func (m *MockMemberRepository) Members(ctx context.Context) ([]model.TeamMember, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.TeamMember), args.Error(1)
}

func (m *MockMemberRepository) UpdateMood(ctx context.Context, memberID string, mood model.Mood, timestamp time.Time) (*model.TeamMember, error) {
	args := m.Called(ctx, memberID, mood, timestamp)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TeamMember), args.Error(1)
}

type MockGoalRepository struct {
	mock.Mock
}

func (m *MockGoalRepository) Create(ctx context.Context, memberID, description, date string) (*model.Goal, error) {
	args := m.Called(ctx, memberID, description, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Goal), args.Error(1)
}

func (m *MockGoalRepository) SetCompletion(ctx context.Context, goalID string, completed bool) (*model.Goal, error) {
	args := m.Called(ctx, goalID, completed)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Goal), args.Error(1)
}

func (m *MockGoalRepository) Delete(ctx context.Context, goalID string) (bool, error) {
	args := m.Called(ctx, goalID)
	return args.Bool(0), args.Error(1)
}

// countingMemberRepository counts Members calls without recording them.
type countingMemberRepository struct {
	calls atomic.Int64
}

func (r *countingMemberRepository) Members(context.Context) ([]model.TeamMember, error) {
	r.calls.Add(1)
	return []model.TeamMember{{ID: "1", Name: "Alice Johnson", Goals: []model.Goal{}}}, nil
}

func (r *countingMemberRepository) UpdateMood(context.Context, string, model.Mood, time.Time) (*model.TeamMember, error) {
	return nil, model.ErrNotFound
}

func moodPtr(m model.Mood) *model.Mood {
	return &m
}
