package routes

import (
	"net/http"

	"github.com/pilgrimlabs/pilgrim/internal/app"
	"github.com/pilgrimlabs/pilgrim/internal/handler"
	"github.com/pilgrimlabs/pilgrim/internal/middleware"
)

func SetupRoutes(app *app.App) http.Handler {
	// Handlers
	auth := handler.NewAuthHandler(app.AuthService, app.UserService, app.ProfileCache)
	user := handler.NewUserHandler(app.UserService, app.ProgressionService, app.ProfileCache)
	checkIn := handler.NewCheckInHandler(app.CheckInService)
	goal := handler.NewGoalHandler(app.GoalService)
	character := handler.NewCharacterHandler(app.CharacterService)
	chest := handler.NewChestHandler(app.ChestService)

	mux := http.NewServeMux()

	// ============================================================================
	// PUBLIC ROUTES
	// ============================================================================

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	// Auth (rate limited)
	rateLimiter := middleware.RateLimitAuth()

	mux.HandleFunc("POST /auth/register", rateLimiter(auth.Register))
	mux.HandleFunc("POST /auth/login", rateLimiter(auth.Login))
	mux.HandleFunc("POST /auth/logout", auth.Logout)

	// Warm start: serve the cached profile before any token round trip
	mux.HandleFunc("GET /auth/warm-start", auth.WarmStart)

	// ============================================================================
	// PROTECTED ROUTES (/app/*)
	// ============================================================================

	// Profile & progression
	mux.HandleFunc("GET /app/me", middleware.RequireAuth(user.Me))
	mux.HandleFunc("PATCH /app/me/username", middleware.RequireAuth(user.UpdateUsername))
	mux.HandleFunc("POST /app/me/experience", middleware.RequireAuth(user.AddExperience))
	mux.HandleFunc("POST /app/me/energy/reset", middleware.RequireAuth(user.ResetEnergy))

	// Check-ins
	mux.HandleFunc("POST /app/check-ins", middleware.RequireAuth(checkIn.Record))
	mux.HandleFunc("GET /app/check-ins", middleware.RequireAuth(checkIn.List))
	mux.HandleFunc("GET /app/check-ins/today", middleware.RequireAuth(checkIn.Today))
	mux.HandleFunc("GET /app/check-ins/latest", middleware.RequireAuth(checkIn.Latest))

	// Goals
	mux.HandleFunc("POST /app/goals", middleware.RequireAuth(goal.Create))
	mux.HandleFunc("GET /app/goals", middleware.RequireAuth(goal.List))
	mux.HandleFunc("GET /app/goals/{id}", middleware.RequireAuth(goal.ByID))
	mux.HandleFunc("PUT /app/goals/{id}", middleware.RequireAuth(goal.Update))
	mux.HandleFunc("POST /app/goals/{id}/complete", middleware.RequireAuth(goal.Complete))
	mux.HandleFunc("POST /app/goals/{id}/reschedule", middleware.RequireAuth(goal.Reschedule))
	mux.HandleFunc("DELETE /app/goals/{id}", middleware.RequireAuth(goal.Delete))

	// Characters
	mux.HandleFunc("POST /app/characters", middleware.RequireAuth(character.Create))
	mux.HandleFunc("GET /app/characters", middleware.RequireAuth(character.List))
	mux.HandleFunc("PUT /app/characters/{id}", middleware.RequireAuth(character.Update))
	mux.HandleFunc("GET /app/characters/selected", middleware.RequireAuth(character.Selected))
	mux.HandleFunc("POST /app/characters/{id}/select", middleware.RequireAuth(character.Select))
	mux.HandleFunc("DELETE /app/characters/{id}", middleware.RequireAuth(character.Delete))

	// Chests
	mux.HandleFunc("POST /app/chests/{tier}/open", middleware.RequireAuth(chest.Open))
	mux.HandleFunc("POST /app/chests/{tier}/claim", middleware.RequireAuth(chest.Claim))
	mux.HandleFunc("GET /app/chests/claims", middleware.RequireAuth(chest.Claims))

	// Global middleware - executed in order (top to bottom)
	handler := middleware.Chain(
		mux,
		middleware.RequestLogging,
		middleware.AuthMiddleware(app.AuthService, app.UserService, app.CharacterService),
	)

	return handler
}
