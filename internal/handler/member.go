package handler

import (
	"net/http"

	"github.com/vibeloop/vibeloop/internal/model"
	"github.com/vibeloop/vibeloop/internal/service"
)

type MemberHandler struct {
	memberService *service.MemberService
}

func NewMemberHandler(memberService *service.MemberService) *MemberHandler {
	return &MemberHandler{
		memberService: memberService,
	}
}

func (h *MemberHandler) List(w http.ResponseWriter, r *http.Request) {
	members, err := h.memberService.Refresh(r.Context())
	if err != nil {
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, members)
}

func (h *MemberHandler) UpdateMood(w http.ResponseWriter, r *http.Request) {
	memberID := r.PathValue("id")

	var req model.UpdateMoodRequest
	err := decodeJSON(r, &req)
	if err != nil {
		handleError(w, err)
		return
	}

	if req.Mood == "" {
		handleError(w, model.NewInvalidInputError("mood is required"))
		return
	}

	member, err := h.memberService.UpdateMood(r.Context(), memberID, req)
	if err != nil {
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, member)
}
