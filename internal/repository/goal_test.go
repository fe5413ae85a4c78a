package repository

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pilgrimlabs/pilgrim/internal/model"
)

func seedGoal(t *testing.T, repo GoalRepository, userID, title, category string, at time.Time) *model.Goal {
	t.Helper()

	verse := "Philippians 4:13"
	goal := &model.Goal{
		ID:               uuid.New().String(),
		UserID:           userID,
		Title:            title,
		Emoji:            "🔥",
		EnergyCount:      10,
		ExperienceReward: 25,
		GoalRepeat:       model.GoalRepeatDaily,
		RelatedVerse:     &verse,
		Category:         category,
		GoalColor:        "#7C3AED",
		CreatedAt:        at,
		UpdatedAt:        at,
	}
	if err := repo.Create(goal); err != nil {
		t.Fatalf("seed goal: %v", err)
	}

	return goal
}

func TestGoalCreateByIDRoundTrip(t *testing.T) {
	database := openTestDB(t)
	users := NewUserRepository(database)
	repo := NewGoalRepository(database)
	now := time.Date(2026, 3, 2, 7, 0, 0, 0, time.UTC)

	user := seedUser(t, users, "phoebe", now)
	goal := seedGoal(t, repo, user.ID, "Morning prayer", "prayer", now)

	got, err := repo.ByID(user.ID, goal.ID)
	if err != nil {
		t.Fatalf("get goal: %v", err)
	}
	if got.Title != goal.Title || got.Emoji != goal.Emoji || got.Category != goal.Category || got.GoalColor != goal.GoalColor {
		t.Fatalf("expected caller-supplied fields to round-trip")
	}
	if got.EnergyCount != goal.EnergyCount || got.ExperienceReward != goal.ExperienceReward || got.GoalRepeat != goal.GoalRepeat {
		t.Fatalf("expected reward fields to round-trip")
	}
	if got.RelatedVerse == nil || *got.RelatedVerse != *goal.RelatedVerse {
		t.Fatalf("expected related verse to round-trip")
	}
	if got.IsDeleted {
		t.Fatalf("expected a new goal to not be deleted")
	}
	if got.CompletedAt != nil {
		t.Fatalf("expected a new goal to have no completion timestamp")
	}
}

func TestGoalUpdatePersistsCallerTimestamp(t *testing.T) {
	database := openTestDB(t)
	users := NewUserRepository(database)
	repo := NewGoalRepository(database)
	now := time.Date(2026, 4, 1, 8, 0, 0, 0, time.UTC)

	user := seedUser(t, users, "lydia", now)
	goal := seedGoal(t, repo, user.ID, "Evening reading", "study", now)

	goal.Title = "Evening scripture reading"
	goal.UpdatedAt = now.Add(2 * time.Hour)
	if err := repo.Update(goal); err != nil {
		t.Fatalf("update goal: %v", err)
	}

	got, err := repo.ByID(user.ID, goal.ID)
	if err != nil {
		t.Fatalf("get goal: %v", err)
	}
	if got.Title != "Evening scripture reading" {
		t.Fatalf("expected updated title, got %q", got.Title)
	}
	if !got.UpdatedAt.Equal(goal.UpdatedAt) {
		t.Fatalf("expected stored updated_at %v, got %v", goal.UpdatedAt, got.UpdatedAt)
	}
}

func TestGoalsOrderedNewestFirst(t *testing.T) {
	database := openTestDB(t)
	users := NewUserRepository(database)
	repo := NewGoalRepository(database)
	now := time.Date(2026, 3, 2, 7, 0, 0, 0, time.UTC)

	user := seedUser(t, users, "urbanus", now)
	seedGoal(t, repo, user.ID, "Read one chapter", "study", now)
	second := seedGoal(t, repo, user.ID, "Evening gratitude", "prayer", now.Add(time.Hour))

	goals, err := repo.Goals(user.ID)
	if err != nil {
		t.Fatalf("list goals: %v", err)
	}
	if len(goals) != 2 {
		t.Fatalf("expected 2 goals, got %d", len(goals))
	}
	if goals[0].ID != second.ID {
		t.Fatalf("expected newest goal first")
	}
}

func TestGoalSoftDeleteExcludedFromListings(t *testing.T) {
	database := openTestDB(t)
	users := NewUserRepository(database)
	repo := NewGoalRepository(database)
	now := time.Date(2026, 3, 2, 7, 0, 0, 0, time.UTC)

	user := seedUser(t, users, "junia", now)
	keep := seedGoal(t, repo, user.ID, "Fast on Friday", "fasting", now)
	drop := seedGoal(t, repo, user.ID, "Memorize a verse", "study", now.Add(time.Minute))

	if err := repo.SoftDelete(user.ID, drop.ID, now.Add(time.Hour)); err != nil {
		t.Fatalf("soft delete: %v", err)
	}

	goals, err := repo.Goals(user.ID)
	if err != nil {
		t.Fatalf("list goals: %v", err)
	}
	if len(goals) != 1 || goals[0].ID != keep.ID {
		t.Fatalf("expected soft-deleted goal excluded from listing")
	}

	// Category listing applies the same soft-delete filter.
	byCategory, err := repo.GoalsByCategory(user.ID, "study")
	if err != nil {
		t.Fatalf("list goals by category: %v", err)
	}
	if len(byCategory) != 0 {
		t.Fatalf("expected soft-deleted goal excluded from category listing")
	}

	// Still readable by id, with the deletion stamp set.
	got, err := repo.ByID(user.ID, drop.ID)
	if err != nil {
		t.Fatalf("get soft-deleted goal: %v", err)
	}
	if !got.IsDeleted || got.DeletedAt == nil {
		t.Fatalf("expected goal flagged deleted with a timestamp")
	}
}

func TestGoalsByCategoryFilters(t *testing.T) {
	database := openTestDB(t)
	users := NewUserRepository(database)
	repo := NewGoalRepository(database)
	now := time.Date(2026, 3, 2, 7, 0, 0, 0, time.UTC)

	user := seedUser(t, users, "apollos", now)
	seedGoal(t, repo, user.ID, "Morning prayer", "prayer", now)
	seedGoal(t, repo, user.ID, "Read one chapter", "study", now.Add(time.Minute))

	goals, err := repo.GoalsByCategory(user.ID, "prayer")
	if err != nil {
		t.Fatalf("list goals by category: %v", err)
	}
	if len(goals) != 1 || goals[0].Category != "prayer" {
		t.Fatalf("expected only prayer goals, got %d", len(goals))
	}
}

func TestGoalCompleteOverwritesTimestamp(t *testing.T) {
	database := openTestDB(t)
	users := NewUserRepository(database)
	repo := NewGoalRepository(database)
	now := time.Date(2026, 3, 2, 7, 0, 0, 0, time.UTC)

	user := seedUser(t, users, "timothy", now)
	goal := seedGoal(t, repo, user.ID, "Morning prayer", "prayer", now)

	first := now.Add(time.Hour)
	if err := repo.Complete(user.ID, goal.ID, first); err != nil {
		t.Fatalf("complete goal: %v", err)
	}

	// Completing again simply overwrites the stamp, there is no guard.
	second := now.Add(2 * time.Hour)
	if err := repo.Complete(user.ID, goal.ID, second); err != nil {
		t.Fatalf("complete goal again: %v", err)
	}

	got, err := repo.ByID(user.ID, goal.ID)
	if err != nil {
		t.Fatalf("get goal: %v", err)
	}
	if got.CompletedAt == nil || !got.CompletedAt.Equal(second) {
		t.Fatalf("expected completion stamp %v, got %v", second, got.CompletedAt)
	}
}

func TestGoalReschedule(t *testing.T) {
	database := openTestDB(t)
	users := NewUserRepository(database)
	repo := NewGoalRepository(database)
	now := time.Date(2026, 3, 2, 7, 0, 0, 0, time.UTC)

	user := seedUser(t, users, "barnabas", now)
	goal := seedGoal(t, repo, user.ID, "Evening gratitude", "prayer", now)

	timeSet := now.Add(48 * time.Hour)
	if err := repo.Reschedule(user.ID, goal.ID, timeSet); err != nil {
		t.Fatalf("reschedule goal: %v", err)
	}

	got, err := repo.ByID(user.ID, goal.ID)
	if err != nil {
		t.Fatalf("get goal: %v", err)
	}
	if got.GoalTimeSet == nil || !got.GoalTimeSet.Equal(timeSet) {
		t.Fatalf("expected goal time %v, got %v", timeSet, got.GoalTimeSet)
	}
	if got.CompletedAt != nil || got.IsDeleted {
		t.Fatalf("expected reschedule to leave completion and deletion untouched")
	}
}

func TestGoalOpsNotFound(t *testing.T) {
	database := openTestDB(t)
	users := NewUserRepository(database)
	repo := NewGoalRepository(database)
	now := time.Date(2026, 3, 2, 7, 0, 0, 0, time.UTC)

	user := seedUser(t, users, "mark", now)
	missing := uuid.New().String()

	if _, err := repo.ByID(user.ID, missing); !errors.Is(err, ErrGoalNotFound) {
		t.Fatalf("expected ErrGoalNotFound from ByID, got %v", err)
	}
	if err := repo.Complete(user.ID, missing, now); !errors.Is(err, ErrGoalNotFound) {
		t.Fatalf("expected ErrGoalNotFound from Complete, got %v", err)
	}
	if err := repo.SoftDelete(user.ID, missing, now); !errors.Is(err, ErrGoalNotFound) {
		t.Fatalf("expected ErrGoalNotFound from SoftDelete, got %v", err)
	}
	if err := repo.Reschedule(user.ID, missing, now); !errors.Is(err, ErrGoalNotFound) {
		t.Fatalf("expected ErrGoalNotFound from Reschedule, got %v", err)
	}
}
