package repository

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pilgrimlabs/pilgrim/internal/db"
	"github.com/pilgrimlabs/pilgrim/internal/model"
)

func openTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "pilgrim.db")
	database, err := db.Init("sqlite", path)
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	t.Cleanup(func() {
		if err := database.Close(); err != nil {
			t.Fatalf("close database: %v", err)
		}
	})

	if err := db.RunMigrations(database.DB, "sqlite"); err != nil {
		t.Fatalf("run migrations: %v", err)
	}

	return database
}

func seedUser(t *testing.T, repo UserRepository, username string, at time.Time) *model.User {
	t.Helper()

	user := &model.User{
		ID:               uuid.New().String(),
		Username:         username,
		Email:            username + "@example.com",
		Level:            1,
		ExperiencePoints: 0,
		EnergyPoints:     100,
		EnergyLastReset:  at,
		CreatedAt:        at,
	}
	if err := repo.Create(user); err != nil {
		t.Fatalf("seed user: %v", err)
	}

	return user
}
