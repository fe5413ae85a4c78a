package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/pilgrimlabs/pilgrim/internal/model"
	"github.com/pilgrimlabs/pilgrim/internal/repository"
)

var (
	ErrInvalidExperience = errors.New("experience points must be positive")
)

type ProgressionService struct {
	userRepository repository.UserRepository
	energyDefault  int
	now            func() time.Time
}

func NewProgressionService(userRepository repository.UserRepository, energyDefault int) *ProgressionService {
	return &ProgressionService{
		userRepository: userRepository,
		energyDefault:  energyDefault,
		now:            time.Now,
	}
}

// AddExperience credits experience to the user and persists the resulting
// level. The threshold for the current level is 100 * level; crossing it
// bumps the level by exactly one. A single call never levels up more than
// once, no matter how large the award is.
func (s *ProgressionService) AddExperience(userID string, points int) (*model.User, error) {
	if points <= 0 {
		return nil, ErrInvalidExperience
	}

	user, err := s.userRepository.ByID(userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get user %s: %w", userID, err)
	}

	newExperience := user.ExperiencePoints + points
	newLevel := user.Level
	if newExperience >= user.ExperienceThreshold() {
		newLevel = user.Level + 1
	}

	err = s.userRepository.UpdateProgress(userID, newLevel, newExperience)
	if err != nil {
		return nil, fmt.Errorf("failed to save progress for user %s: %w", userID, err)
	}

	user.Level = newLevel
	user.ExperiencePoints = newExperience
	return user, nil
}

// ResetEnergy sets the user's energy back to the configured default and
// stamps the reset time. It runs unconditionally; deciding when a reset is
// due (once per calendar day, typically) is the caller's job.
func (s *ProgressionService) ResetEnergy(userID string) (*model.User, error) {
	user, err := s.userRepository.ByID(userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get user %s: %w", userID, err)
	}

	resetAt := s.now()
	err = s.userRepository.ResetEnergy(userID, s.energyDefault, resetAt)
	if err != nil {
		return nil, fmt.Errorf("failed to reset energy for user %s: %w", userID, err)
	}

	user.EnergyPoints = s.energyDefault
	user.EnergyLastReset = resetAt
	return user, nil
}
