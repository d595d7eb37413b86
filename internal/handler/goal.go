package handler

import (
	"net/http"
	"time"

	"github.com/vibeloop/vibeloop/internal/model"
	"github.com/vibeloop/vibeloop/internal/service"
)

type GoalHandler struct {
	goalService *service.GoalService
	now         func() time.Time
}

func NewGoalHandler(goalService *service.GoalService) *GoalHandler {
	return &GoalHandler{
		goalService: goalService,
		now:         time.Now,
	}
}

func (h *GoalHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateGoalRequest
	err := decodeJSON(r, &req)
	if err != nil {
		handleError(w, err)
		return
	}

	if req.Date == "" {
		req.Date = model.Day(h.now())
	}

	goal, err := h.goalService.Create(r.Context(), req)
	if err != nil {
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, goal)
}

func (h *GoalHandler) Update(w http.ResponseWriter, r *http.Request) {
	goalID := r.PathValue("id")

	var req struct {
		Completed *bool `json:"completed"`
	}
	err := decodeJSON(r, &req)
	if err != nil {
		handleError(w, err)
		return
	}

	if req.Completed == nil {
		handleError(w, model.NewInvalidInputError("completed is required"))
		return
	}

	goal, err := h.goalService.Toggle(r.Context(), goalID, *req.Completed)
	if err != nil {
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, goal)
}

func (h *GoalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	goalID := r.PathValue("id")

	err := h.goalService.Remove(r.Context(), goalID)
	if err != nil {
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, SuccessResponse{Success: true})
}
