package routes

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vibeloop/vibeloop/internal/app"
	"github.com/vibeloop/vibeloop/internal/handler"
	"github.com/vibeloop/vibeloop/internal/middleware"
)

func SetupRoutes(app *app.App) http.Handler {
	// Handlers
	members := handler.NewMemberHandler(app.MemberService)
	goals := handler.NewGoalHandler(app.GoalService)
	stats := handler.NewStatsHandler(app.MemberService)

	mux := http.NewServeMux()

	// ============================================================================
	// OPERATIONS
	// ============================================================================

	mux.HandleFunc("GET /healthz", handler.Health)
	mux.Handle("GET /metrics", promhttp.Handler())

	// ============================================================================
	// API
	// ============================================================================

	// Members
	mux.HandleFunc("GET /api/members", members.List)
	mux.HandleFunc("PUT /api/members/{id}/mood", members.UpdateMood)

	// Goals
	mux.HandleFunc("POST /api/goals", goals.Create)
	mux.HandleFunc("PATCH /api/goals/{id}", goals.Update)
	mux.HandleFunc("DELETE /api/goals/{id}", goals.Delete)

	// Stats
	mux.HandleFunc("GET /api/stats", stats.Show)

	// Global middleware - executed in order (top to bottom)
	handler := middleware.Chain(
		mux,
		middleware.RequestID,
		middleware.RequestLogging,
		middleware.Metrics,
		middleware.RateLimitWrites(middleware.NewRateLimiter(app.Cfg.WriteRateLimit, time.Minute)),
	)

	return handler
}
