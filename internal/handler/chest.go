package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/pilgrimlabs/pilgrim/internal/ctxkeys"
	"github.com/pilgrimlabs/pilgrim/internal/model"
	"github.com/pilgrimlabs/pilgrim/internal/service"
)

type ChestHandler struct {
	chestService *service.ChestService
}

func NewChestHandler(chestService *service.ChestService) *ChestHandler {
	return &ChestHandler{
		chestService: chestService,
	}
}

type openChestResponse struct {
	Tier    string         `json:"tier"`
	Rewards []model.Reward `json:"rewards"`
}

// Open rolls the chest for this session. The client holds onto the returned
// set and reveals rewards one at a time in order.
func (h *ChestHandler) Open(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	tier := r.PathValue("tier")

	rewards, err := h.chestService.Generate(tier)
	if err != nil {
		if errors.Is(err, service.ErrUnknownChestTier) {
			respondError(w, http.StatusBadRequest, "unknown chest tier")
			return
		}
		slog.Error("failed to open chest", "error", err, "user_id", user.ID, "tier", tier)
		respondError(w, http.StatusInternalServerError, "failed to open chest")
		return
	}

	respondJSON(w, http.StatusOK, openChestResponse{Tier: tier, Rewards: rewards})
}

type claimChestRequest struct {
	Rewards []model.Reward `json:"rewards"`
}

// Claim records the aggregated summary after the final reward is revealed.
func (h *ChestHandler) Claim(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	tier := r.PathValue("tier")

	var req claimChestRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	claim, err := h.chestService.Claim(user.ID, tier, req.Rewards)
	if err != nil {
		if errors.Is(err, service.ErrUnknownChestTier) {
			respondError(w, http.StatusBadRequest, "unknown chest tier")
			return
		}
		if errors.Is(err, service.ErrEmptyChestClaim) {
			respondError(w, http.StatusBadRequest, "rewards are required")
			return
		}
		slog.Error("failed to claim chest", "error", err, "user_id", user.ID, "tier", tier)
		respondError(w, http.StatusInternalServerError, "failed to claim chest")
		return
	}

	respondJSON(w, http.StatusCreated, claim)
}

func (h *ChestHandler) Claims(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	claims, err := h.chestService.Claims(user.ID)
	if err != nil {
		slog.Error("failed to list chest claims", "error", err, "user_id", user.ID)
		respondError(w, http.StatusInternalServerError, "failed to list chest claims")
		return
	}

	respondJSON(w, http.StatusOK, claims)
}
