package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/pilgrimlabs/pilgrim/internal/ctxkeys"
	"github.com/pilgrimlabs/pilgrim/internal/repository"
	"github.com/pilgrimlabs/pilgrim/internal/service"
)

type CharacterHandler struct {
	characterService *service.CharacterService
}

func NewCharacterHandler(characterService *service.CharacterService) *CharacterHandler {
	return &CharacterHandler{
		characterService: characterService,
	}
}

type characterRequest struct {
	Name     string `json:"name"`
	Emoji    string `json:"emoji"`
	Portrait string `json:"portrait"`
}

func (h *CharacterHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var req characterRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	character, err := h.characterService.Create(user.ID, req.Name, req.Emoji, req.Portrait)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondJSON(w, http.StatusCreated, character)
}

func (h *CharacterHandler) Update(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	characterID := r.PathValue("id")

	var req characterRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	character, err := h.characterService.Update(user.ID, characterID, req.Name, req.Emoji, req.Portrait)
	if err != nil {
		if errors.Is(err, repository.ErrCharacterNotFound) {
			respondError(w, http.StatusNotFound, "character not found")
			return
		}
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, character)
}

func (h *CharacterHandler) List(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	characters, err := h.characterService.Characters(user.ID)
	if err != nil {
		slog.Error("failed to list characters", "error", err, "user_id", user.ID)
		respondError(w, http.StatusInternalServerError, "failed to list characters")
		return
	}

	respondJSON(w, http.StatusOK, characters)
}

func (h *CharacterHandler) Selected(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	character, err := h.characterService.Selected(user.ID)
	if err != nil {
		slog.Error("failed to get selected character", "error", err, "user_id", user.ID)
		respondError(w, http.StatusInternalServerError, "failed to get selected character")
		return
	}

	respondJSON(w, http.StatusOK, character)
}

func (h *CharacterHandler) Select(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	characterID := r.PathValue("id")

	character, err := h.characterService.Select(user.ID, characterID)
	if err != nil {
		if errors.Is(err, repository.ErrCharacterNotFound) {
			respondError(w, http.StatusNotFound, "character not found")
			return
		}
		slog.Error("failed to select character", "error", err, "user_id", user.ID, "character_id", characterID)
		respondError(w, http.StatusInternalServerError, "failed to select character")
		return
	}

	respondJSON(w, http.StatusOK, character)
}

func (h *CharacterHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	characterID := r.PathValue("id")

	character, err := h.characterService.SoftDelete(user.ID, characterID)
	if err != nil {
		if errors.Is(err, repository.ErrCharacterNotFound) {
			respondError(w, http.StatusNotFound, "character not found")
			return
		}
		slog.Error("failed to delete character", "error", err, "user_id", user.ID, "character_id", characterID)
		respondError(w, http.StatusInternalServerError, "failed to delete character")
		return
	}

	respondJSON(w, http.StatusOK, character)
}
