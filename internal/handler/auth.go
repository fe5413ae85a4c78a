package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/pilgrimlabs/pilgrim/internal/cache"
	"github.com/pilgrimlabs/pilgrim/internal/model"
	"github.com/pilgrimlabs/pilgrim/internal/repository"
	"github.com/pilgrimlabs/pilgrim/internal/service"
)

type AuthHandler struct {
	authService  *service.AuthService
	userService  *service.UserService
	profileCache *cache.ProfileCache
}

func NewAuthHandler(authService *service.AuthService, userService *service.UserService, profileCache *cache.ProfileCache) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		userService:  userService,
		profileCache: profileCache,
	}
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type sessionResponse struct {
	Token string      `json:"token"`
	User  *model.User `json:"user"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	user, err := h.authService.Register(req.Username, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrEmailAlreadyExists) {
			respondError(w, http.StatusConflict, "email already in use")
			return
		}
		if errors.Is(err, repository.ErrDuplicateUsername) {
			respondError(w, http.StatusConflict, "username already taken")
			return
		}
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.respondSession(w, r, user, http.StatusCreated)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	user, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			respondError(w, http.StatusUnauthorized, "invalid email or password")
			return
		}
		slog.Error("login failed", "error", err)
		respondError(w, http.StatusInternalServerError, "login failed")
		return
	}

	h.respondSession(w, r, user, http.StatusOK)
}

// WarmStart serves the last cached profile so the client can render
// immediately after launch, before any token round trip. A blob miss falls
// through to the store via the cached raw id; a fully cold cache answers an
// explicit null.
func (h *AuthHandler) WarmStart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, err := h.profileCache.Profile(ctx)
	if err != nil {
		slog.Warn("failed to read cached profile", "error", err)
	}
	if user != nil {
		respondJSON(w, http.StatusOK, user)
		return
	}

	id, err := h.profileCache.UserID(ctx)
	if err != nil {
		slog.Warn("failed to read cached user id", "error", err)
	}
	if id == "" {
		respondJSON(w, http.StatusOK, nil)
		return
	}

	user, err = h.userService.ByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			// Stale id, likely a deleted account. Drop the entries so the
			// next launch starts cold.
			clearErr := h.profileCache.Clear(ctx)
			if clearErr != nil {
				slog.Warn("failed to clear stale cached profile", "error", clearErr)
			}
			respondJSON(w, http.StatusOK, nil)
			return
		}
		slog.Error("failed to load profile for warm start", "error", err, "user_id", id)
		respondError(w, http.StatusInternalServerError, "failed to load profile")
		return
	}

	cacheErr := h.profileCache.SetProfile(ctx, user)
	if cacheErr != nil {
		slog.Warn("failed to cache profile", "error", cacheErr, "user_id", user.ID)
	}

	respondJSON(w, http.StatusOK, user)
}

// Logout drops the warm-start entries. Sessions are stateless JWTs, so there
// is nothing else to revoke server-side.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	err := h.profileCache.Clear(r.Context())
	if err != nil {
		slog.Warn("failed to clear cached profile", "error", err)
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *AuthHandler) respondSession(w http.ResponseWriter, r *http.Request, user *model.User, status int) {
	token, err := h.authService.GenerateJWT(user)
	if err != nil {
		slog.Error("failed to generate session token", "error", err, "user_id", user.ID)
		respondError(w, http.StatusInternalServerError, "failed to create session")
		return
	}

	// Warm-start cache is best effort; a failed write only costs the next
	// launch one profile fetch.
	err = h.profileCache.SetProfile(r.Context(), user)
	if err != nil {
		slog.Warn("failed to cache profile", "error", err, "user_id", user.ID)
	}

	respondJSON(w, status, sessionResponse{Token: token, User: user})
}
