package handler

import (
	"net/http"

	"github.com/vibeloop/vibeloop/internal/service"
)

type StatsHandler struct {
	memberService *service.MemberService
}

func NewStatsHandler(memberService *service.MemberService) *StatsHandler {
	return &StatsHandler{
		memberService: memberService,
	}
}

// Show refreshes the member list and summarizes today's goals and moods.
func (h *StatsHandler) Show(w http.ResponseWriter, r *http.Request) {
	members, err := h.memberService.Refresh(r.Context())
	if err != nil {
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, service.Stats(members))
}
