package app

import (
	"context"
	"fmt"

	"github.com/vibeloop/vibeloop/internal/config"
	"github.com/vibeloop/vibeloop/internal/repository"
	"github.com/vibeloop/vibeloop/internal/service"
	"github.com/vibeloop/vibeloop/internal/storage"
)

type App struct {
	Cfg              *config.Config
	Slot             storage.Slot
	Store            *storage.Store
	MemberRepository repository.MemberRepository
	GoalRepository   repository.GoalRepository
	MemberService    *service.MemberService
	GoalService      *service.GoalService
}

func New(ctx context.Context, cfg *config.Config) (*App, error) {
	// Storage
	slot, err := storage.New(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}
	store := storage.NewStore(slot)

	return NewWithStore(cfg, slot, store), nil
}

// NewWithStore wires repositories and services on top of an existing store.
func NewWithStore(cfg *config.Config, slot storage.Slot, store *storage.Store) *App {
	// Repositories
	opts := []repository.Option{repository.WithLatency(cfg.SimulatedLatency)}
	memberRepository := repository.NewMemberRepository(store, opts...)
	goalRepository := repository.NewGoalRepository(store, opts...)

	// Services
	memberService := service.NewMemberService(memberRepository, cfg.RefreshInterval)
	goalService := service.NewGoalService(goalRepository)

	return &App{
		Cfg:              cfg,
		Slot:             slot,
		Store:            store,
		MemberRepository: memberRepository,
		GoalRepository:   goalRepository,
		MemberService:    memberService,
		GoalService:      goalService,
	}
}

func (a *App) Close() error {
	if a.Slot != nil {
		return a.Slot.Close()
	}
	return nil
}
