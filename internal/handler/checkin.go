package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/pilgrimlabs/pilgrim/internal/ctxkeys"
	"github.com/pilgrimlabs/pilgrim/internal/service"
)

type CheckInHandler struct {
	checkInService *service.CheckInService
}

func NewCheckInHandler(checkInService *service.CheckInService) *CheckInHandler {
	return &CheckInHandler{
		checkInService: checkInService,
	}
}

type recordCheckInRequest struct {
	DenariiEarned    int             `json:"denarii_earned"`
	MannaEarned      int             `json:"manna_earned"`
	FruitEarned      int             `json:"fruit_earned"`
	EnergyEarned     int             `json:"energy_earned"`
	QuestionsAnswers json.RawMessage `json:"questions_answers"`
	BonusRewards     json.RawMessage `json:"bonus_rewards"`
}

func (h *CheckInHandler) Record(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var req recordCheckInRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	// One check-in per day, enforced here with a count-then-insert. Two
	// concurrent requests can still both pass the count; the ledger accepts
	// that.
	count, err := h.checkInService.CountToday(user.ID)
	if err != nil {
		slog.Error("failed to count check-ins", "error", err, "user_id", user.ID)
		respondError(w, http.StatusInternalServerError, "failed to record check-in")
		return
	}
	if count > 0 {
		respondError(w, http.StatusConflict, "already checked in today")
		return
	}

	checkIn, err := h.checkInService.Record(service.CheckInInput{
		UserID:           user.ID,
		DenariiEarned:    req.DenariiEarned,
		MannaEarned:      req.MannaEarned,
		FruitEarned:      req.FruitEarned,
		EnergyEarned:     req.EnergyEarned,
		QuestionsAnswers: req.QuestionsAnswers,
		BonusRewards:     req.BonusRewards,
	})
	if err != nil {
		if errors.Is(err, service.ErrNegativeCheckInEarns) {
			respondError(w, http.StatusBadRequest, "earned amounts must not be negative")
			return
		}
		slog.Error("failed to record check-in", "error", err, "user_id", user.ID)
		respondError(w, http.StatusInternalServerError, "failed to record check-in")
		return
	}

	respondJSON(w, http.StatusCreated, checkIn)
}

type checkInTodayResponse struct {
	Count     int  `json:"count"`
	CheckedIn bool `json:"checked_in"`
}

func (h *CheckInHandler) Today(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	count, err := h.checkInService.CountToday(user.ID)
	if err != nil {
		slog.Error("failed to count check-ins", "error", err, "user_id", user.ID)
		respondError(w, http.StatusInternalServerError, "failed to count check-ins")
		return
	}

	respondJSON(w, http.StatusOK, checkInTodayResponse{Count: count, CheckedIn: count > 0})
}

func (h *CheckInHandler) Latest(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	checkIn, err := h.checkInService.Latest(user.ID)
	if err != nil {
		slog.Error("failed to get latest check-in", "error", err, "user_id", user.ID)
		respondError(w, http.StatusInternalServerError, "failed to get latest check-in")
		return
	}

	// No check-in yet is not an error; the client gets an explicit null.
	respondJSON(w, http.StatusOK, checkIn)
}

func (h *CheckInHandler) List(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	checkIns, err := h.checkInService.CheckIns(user.ID)
	if err != nil {
		slog.Error("failed to list check-ins", "error", err, "user_id", user.ID)
		respondError(w, http.StatusInternalServerError, "failed to list check-ins")
		return
	}

	respondJSON(w, http.StatusOK, checkIns)
}
