package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/pilgrimlabs/pilgrim/internal/cache"
	"github.com/pilgrimlabs/pilgrim/internal/ctxkeys"
	"github.com/pilgrimlabs/pilgrim/internal/repository"
	"github.com/pilgrimlabs/pilgrim/internal/service"
)

type UserHandler struct {
	userService        *service.UserService
	progressionService *service.ProgressionService
	profileCache       *cache.ProfileCache
}

func NewUserHandler(userService *service.UserService, progressionService *service.ProgressionService, profileCache *cache.ProfileCache) *UserHandler {
	return &UserHandler{
		userService:        userService,
		progressionService: progressionService,
		profileCache:       profileCache,
	}
}

func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	respondJSON(w, http.StatusOK, user)
}

type updateUsernameRequest struct {
	Username string `json:"username"`
}

func (h *UserHandler) UpdateUsername(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var req updateUsernameRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	updated, err := h.userService.UpdateUsername(user.ID, req.Username)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			respondError(w, http.StatusConflict, "username already taken")
			return
		}
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, updated)
}

type addExperienceRequest struct {
	Points int `json:"points"`
}

func (h *UserHandler) AddExperience(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var req addExperienceRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	updated, err := h.progressionService.AddExperience(user.ID, req.Points)
	if err != nil {
		if errors.Is(err, service.ErrInvalidExperience) {
			respondError(w, http.StatusBadRequest, "points must be positive")
			return
		}
		if errors.Is(err, repository.ErrUserNotFound) {
			respondError(w, http.StatusNotFound, "user not found")
			return
		}
		slog.Error("failed to add experience", "error", err, "user_id", user.ID)
		respondError(w, http.StatusInternalServerError, "failed to add experience")
		return
	}

	respondJSON(w, http.StatusOK, updated)
}

func (h *UserHandler) ResetEnergy(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	updated, err := h.progressionService.ResetEnergy(user.ID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			respondError(w, http.StatusNotFound, "user not found")
			return
		}
		slog.Error("failed to reset energy", "error", err, "user_id", user.ID)
		respondError(w, http.StatusInternalServerError, "failed to reset energy")
		return
	}

	// Keep the warm-start blob in step with the store.
	cacheErr := h.profileCache.SetProfile(r.Context(), updated)
	if cacheErr != nil {
		slog.Warn("failed to refresh cached profile", "error", cacheErr, "user_id", user.ID)
	}

	respondJSON(w, http.StatusOK, updated)
}
