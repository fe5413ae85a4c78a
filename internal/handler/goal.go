package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/pilgrimlabs/pilgrim/internal/ctxkeys"
	"github.com/pilgrimlabs/pilgrim/internal/model"
	"github.com/pilgrimlabs/pilgrim/internal/repository"
	"github.com/pilgrimlabs/pilgrim/internal/service"
)

type GoalHandler struct {
	goalService *service.GoalService
}

func NewGoalHandler(goalService *service.GoalService) *GoalHandler {
	return &GoalHandler{
		goalService: goalService,
	}
}

type goalRequest struct {
	Title            string     `json:"title"`
	Emoji            string     `json:"emoji"`
	EnergyCount      int        `json:"energy_count"`
	ExperienceReward int        `json:"experience_reward"`
	GoalRepeat       string     `json:"goal_repeat"`
	RelatedVerse     *string    `json:"related_verse"`
	Category         string     `json:"category"`
	GoalColor        string     `json:"goal_color"`
	GoalTimeSet      *time.Time `json:"goal_time_set"`
}

func (r goalRequest) input() service.GoalInput {
	return service.GoalInput{
		Title:            r.Title,
		Emoji:            r.Emoji,
		EnergyCount:      r.EnergyCount,
		ExperienceReward: r.ExperienceReward,
		GoalRepeat:       r.GoalRepeat,
		RelatedVerse:     r.RelatedVerse,
		Category:         r.Category,
		GoalColor:        r.GoalColor,
		GoalTimeSet:      r.GoalTimeSet,
	}
}

func (h *GoalHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var req goalRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	goal, err := h.goalService.Create(user.ID, req.input())
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondJSON(w, http.StatusCreated, goal)
}

func (h *GoalHandler) List(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	category := r.URL.Query().Get("category")

	var goals []*model.Goal
	var err error
	if category != "" {
		goals, err = h.goalService.GoalsByCategory(user.ID, category)
	} else {
		goals, err = h.goalService.Goals(user.ID)
	}
	if err != nil {
		slog.Error("failed to list goals", "error", err, "user_id", user.ID)
		respondError(w, http.StatusInternalServerError, "failed to list goals")
		return
	}

	respondJSON(w, http.StatusOK, goals)
}

func (h *GoalHandler) ByID(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	goalID := r.PathValue("id")

	goal, err := h.goalService.ByID(user.ID, goalID)
	if err != nil {
		if errors.Is(err, repository.ErrGoalNotFound) {
			respondError(w, http.StatusNotFound, "goal not found")
			return
		}
		slog.Error("failed to get goal", "error", err, "user_id", user.ID, "goal_id", goalID)
		respondError(w, http.StatusInternalServerError, "failed to get goal")
		return
	}

	respondJSON(w, http.StatusOK, goal)
}

func (h *GoalHandler) Update(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	goalID := r.PathValue("id")

	var req goalRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	goal, err := h.goalService.Update(user.ID, goalID, req.input())
	if err != nil {
		if errors.Is(err, repository.ErrGoalNotFound) {
			respondError(w, http.StatusNotFound, "goal not found")
			return
		}
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, goal)
}

func (h *GoalHandler) Complete(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, h.goalService.Complete, "complete")
}

func (h *GoalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, h.goalService.SoftDelete, "delete")
}

func (h *GoalHandler) Reschedule(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, h.goalService.RescheduleToToday, "reschedule")
}

func (h *GoalHandler) mutate(w http.ResponseWriter, r *http.Request, op func(userID, goalID string) (*model.Goal, error), name string) {
	user := ctxkeys.User(r.Context())
	goalID := r.PathValue("id")

	goal, err := op(user.ID, goalID)
	if err != nil {
		if errors.Is(err, repository.ErrGoalNotFound) {
			respondError(w, http.StatusNotFound, "goal not found")
			return
		}
		slog.Error("failed to "+name+" goal", "error", err, "user_id", user.ID, "goal_id", goalID)
		respondError(w, http.StatusInternalServerError, "failed to "+name+" goal")
		return
	}

	respondJSON(w, http.StatusOK, goal)
}
