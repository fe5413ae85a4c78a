package service

import (
	"testing"
	"time"

	"github.com/pilgrimlabs/pilgrim/internal/model"
	"github.com/pilgrimlabs/pilgrim/internal/repository"
	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	users map[string]*model.User
}

func newFakeUserRepo(users ...*model.User) *fakeUserRepo {
	repo := &fakeUserRepo{users: map[string]*model.User{}}
	for _, user := range users {
		clone := *user
		repo.users[user.ID] = &clone
	}
	return repo
}

func (r *fakeUserRepo) Create(user *model.User) error {
	for _, existing := range r.users {
		if existing.Email == user.Email {
			return repository.ErrDuplicateEmail
		}
		if existing.Username == user.Username {
			return repository.ErrDuplicateUsername
		}
	}
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *fakeUserRepo) ByID(id string) (*model.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	clone := *user
	return &clone, nil
}

func (r *fakeUserRepo) ByEmail(email string) (*model.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			clone := *user
			return &clone, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (r *fakeUserRepo) Update(user *model.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return repository.ErrUserNotFound
	}
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *fakeUserRepo) UpdateProgress(id string, level, experiencePoints int) error {
	user, ok := r.users[id]
	if !ok {
		return repository.ErrUserNotFound
	}
	user.Level = level
	user.ExperiencePoints = experiencePoints
	return nil
}

func (r *fakeUserRepo) ResetEnergy(id string, energyPoints int, resetAt time.Time) error {
	user, ok := r.users[id]
	if !ok {
		return repository.ErrUserNotFound
	}
	user.EnergyPoints = energyPoints
	user.EnergyLastReset = resetAt
	return nil
}

func (r *fakeUserRepo) TouchLastLogin(id string, at time.Time) error {
	user, ok := r.users[id]
	if !ok {
		return repository.ErrUserNotFound
	}
	user.LastLogin = &at
	return nil
}

func (r *fakeUserRepo) Delete(id string) error {
	if _, ok := r.users[id]; !ok {
		return repository.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

func testUser(level, experience int) *model.User {
	return &model.User{
		ID:               "user-1",
		Username:         "pilgrim",
		Email:            "pilgrim@example.com",
		Level:            level,
		ExperiencePoints: experience,
		EnergyPoints:     40,
	}
}

func TestAddExperienceExactThresholdLevelsUp(t *testing.T) {
	// Threshold for level L is 100*L; hitting it exactly levels up.
	repo := newFakeUserRepo(testUser(2, 150))
	svc := NewProgressionService(repo, 100)

	user, err := svc.AddExperience("user-1", 50)
	require.NoError(t, err)
	require.Equal(t, 3, user.Level)
	require.Equal(t, 200, user.ExperiencePoints)
}

func TestAddExperienceOneBelowThresholdStays(t *testing.T) {
	repo := newFakeUserRepo(testUser(2, 150))
	svc := NewProgressionService(repo, 100)

	user, err := svc.AddExperience("user-1", 49)
	require.NoError(t, err)
	require.Equal(t, 2, user.Level)
	require.Equal(t, 199, user.ExperiencePoints)
}

func TestAddExperienceSingleStepCap(t *testing.T) {
	// A huge award still bumps the level by exactly one per call, even
	// though the new total crosses several thresholds.
	repo := newFakeUserRepo(testUser(1, 0))
	svc := NewProgressionService(repo, 100)

	user, err := svc.AddExperience("user-1", 10_000)
	require.NoError(t, err)
	require.Equal(t, 2, user.Level)
	require.Equal(t, 10_000, user.ExperiencePoints)
}

func TestAddExperienceScenario(t *testing.T) {
	// level=3, xp=250, threshold=300: +60 crosses it.
	repo := newFakeUserRepo(testUser(3, 250))
	svc := NewProgressionService(repo, 100)

	user, err := svc.AddExperience("user-1", 60)
	require.NoError(t, err)
	require.Equal(t, 4, user.Level)
	require.Equal(t, 310, user.ExperiencePoints)

	// From the new state (threshold=400), +5 does not level up.
	user, err = svc.AddExperience("user-1", 5)
	require.NoError(t, err)
	require.Equal(t, 4, user.Level)
	require.Equal(t, 315, user.ExperiencePoints)
}

func TestAddExperienceRejectsNonPositive(t *testing.T) {
	repo := newFakeUserRepo(testUser(1, 0))
	svc := NewProgressionService(repo, 100)

	_, err := svc.AddExperience("user-1", 0)
	require.ErrorIs(t, err, ErrInvalidExperience)

	_, err = svc.AddExperience("user-1", -10)
	require.ErrorIs(t, err, ErrInvalidExperience)
}

func TestAddExperienceUserNotFound(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewProgressionService(repo, 100)

	_, err := svc.AddExperience("missing", 10)
	require.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestResetEnergy(t *testing.T) {
	repo := newFakeUserRepo(testUser(2, 150))
	svc := NewProgressionService(repo, 100)

	resetAt := time.Date(2026, 3, 6, 0, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return resetAt }

	user, err := svc.ResetEnergy("user-1")
	require.NoError(t, err)
	require.Equal(t, 100, user.EnergyPoints)
	require.Equal(t, resetAt, user.EnergyLastReset)

	// Unconditional: a second reset just re-stamps.
	later := resetAt.Add(5 * time.Minute)
	svc.now = func() time.Time { return later }

	user, err = svc.ResetEnergy("user-1")
	require.NoError(t, err)
	require.Equal(t, 100, user.EnergyPoints)
	require.Equal(t, later, user.EnergyLastReset)
}

func TestResetEnergyUserNotFound(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewProgressionService(repo, 100)

	_, err := svc.ResetEnergy("missing")
	require.ErrorIs(t, err, repository.ErrUserNotFound)
}
