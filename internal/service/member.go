package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"

	"github.com/vibeloop/vibeloop/internal/model"
	"github.com/vibeloop/vibeloop/internal/repository"
)

// DefaultRefreshInterval is how often StartAutoRefresh re-fetches members.
const DefaultRefreshInterval = 30 * time.Second

// MemberService holds the last fetched member list for presentation.
// It is never the source of truth: every mutation goes through the repository.
type MemberService struct {
	repo            repository.MemberRepository
	refreshInterval time.Duration

	mu      sync.RWMutex
	members []model.TeamMember
	loading bool
	errMsg  string
	changes chan struct{}
}

func NewMemberService(repo repository.MemberRepository, refreshInterval time.Duration) *MemberService {
	if refreshInterval <= 0 {
		refreshInterval = DefaultRefreshInterval
	}
	return &MemberService{
		repo:            repo,
		refreshInterval: refreshInterval,
		members:         []model.TeamMember{},
		changes:         make(chan struct{}, 1),
	}
}

func (s *MemberService) Members() []model.TeamMember {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return model.CloneMembers(s.members)
}

func (s *MemberService) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// ErrorMessage returns the last failure message, or "" when the last call succeeded.
func (s *MemberService) ErrorMessage() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.errMsg
}

// Changes signals after any change of the cached list, loading flag or
// error message. Signals coalesce: a slow reader sees one pending signal.
func (s *MemberService) Changes() <-chan struct{} {
	return s.changes
}

// Fetch reloads the member list. Failures are captured in ErrorMessage and
// leave the cached list untouched.
func (s *MemberService) Fetch(ctx context.Context) {
	_, _ = s.Refresh(ctx)
}

// Refresh reloads the member list like Fetch and also returns this call's
// own result, independent of failures recorded by concurrent callers.
func (s *MemberService) Refresh(ctx context.Context) ([]model.TeamMember, error) {
	s.update(func() {
		s.loading = true
		s.errMsg = ""
	})

	members, err := s.repo.Members(ctx)
	if err != nil {
		slog.Error("failed to fetch members", "error", err)
		s.update(func() {
			s.loading = false
			s.errMsg = message(err, "Failed to fetch members")
		})
		return nil, err
	}

	s.update(func() {
		s.loading = false
		s.errMsg = ""
		s.members = members
	})
	return model.CloneMembers(members), nil
}

// UpdateMood persists a new mood and patches the cached member in place.
func (s *MemberService) UpdateMood(ctx context.Context, memberID string, req model.UpdateMoodRequest) (*model.TeamMember, error) {
	s.update(func() {
		s.errMsg = ""
	})

	if req.Timestamp.IsZero() {
		req.Timestamp = time.Now().UTC()
	}

	updated, err := s.repo.UpdateMood(ctx, memberID, req.Mood, req.Timestamp)
	if err != nil {
		slog.Error("failed to update mood", "error", err, "member_id", memberID)
		s.update(func() {
			s.errMsg = message(err, "Failed to update mood")
		})
		return nil, err
	}

	s.update(func() {
		for i := range s.members {
			if s.members[i].ID == memberID {
				// Cached goals stay as fetched (today only).
				patched := updated.Clone()
				patched.Goals = s.members[i].Goals
				s.members[i] = patched
				break
			}
		}
	})

	return updated, nil
}

// StartAutoRefresh fetches members every refresh interval until the returned
// stop function is called or ctx is done.
func (s *MemberService) StartAutoRefresh(ctx context.Context) (func(), error) {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}

	_, err = scheduler.NewJob(
		gocron.DurationJob(s.refreshInterval),
		gocron.NewTask(func() {
			s.Fetch(ctx)
		}),
		gocron.WithName("member_refresh"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		_ = scheduler.Shutdown()
		return nil, fmt.Errorf("failed to register refresh job: %w", err)
	}

	scheduler.Start()
	slog.Debug("member auto-refresh started", "interval", s.refreshInterval)

	var once sync.Once
	shutdown := func() {
		once.Do(func() {
			err := scheduler.Shutdown()
			if err != nil {
				slog.Error("failed to shutdown refresh scheduler", "error", err)
			}
			slog.Debug("member auto-refresh stopped")
		})
	}
	unwatch := context.AfterFunc(ctx, shutdown)

	return func() {
		unwatch()
		shutdown()
	}, nil
}

func (s *MemberService) update(fn func()) {
	s.mu.Lock()
	fn()
	s.mu.Unlock()

	select {
	case s.changes <- struct{}{}:
	default:
	}
}

// message turns a failure into the text shown to users.
func message(err error, fallback string) string {
	if err == nil || err.Error() == "" {
		return fallback
	}
	return err.Error()
}
