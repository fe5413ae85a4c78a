package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pilgrimlabs/pilgrim/internal/model"
	"github.com/pilgrimlabs/pilgrim/internal/repository"
	"github.com/pilgrimlabs/pilgrim/internal/validation"
)

type GoalInput struct {
	Title            string
	Emoji            string
	EnergyCount      int
	ExperienceReward int
	GoalRepeat       string
	RelatedVerse     *string
	Category         string
	GoalColor        string
	GoalTimeSet      *time.Time
}

type GoalService struct {
	goalRepository repository.GoalRepository
	now            func() time.Time
}

func NewGoalService(goalRepository repository.GoalRepository) *GoalService {
	return &GoalService{
		goalRepository: goalRepository,
		now:            time.Now,
	}
}

func (s *GoalService) Create(userID string, input GoalInput) (*model.Goal, error) {
	err := validation.ValidateGoalTitle(input.Title)
	if err != nil {
		return nil, err
	}
	err = validation.ValidateGoalRepeat(input.GoalRepeat)
	if err != nil {
		return nil, err
	}
	err = validation.ValidateCategory(input.Category)
	if err != nil {
		return nil, err
	}

	now := s.now()
	goal := &model.Goal{
		ID:               uuid.New().String(),
		UserID:           userID,
		Title:            input.Title,
		Emoji:            input.Emoji,
		EnergyCount:      input.EnergyCount,
		ExperienceReward: input.ExperienceReward,
		GoalRepeat:       input.GoalRepeat,
		RelatedVerse:     input.RelatedVerse,
		Category:         input.Category,
		GoalColor:        input.GoalColor,
		GoalTimeSet:      input.GoalTimeSet,
		IsDeleted:        false,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	err = s.goalRepository.Create(goal)
	if err != nil {
		return nil, fmt.Errorf("failed to create goal for user %s: %w", userID, err)
	}

	return goal, nil
}

func (s *GoalService) ByID(userID, goalID string) (*model.Goal, error) {
	return s.goalRepository.ByID(userID, goalID)
}

// Goals lists the user's goals, newest first, excluding soft-deleted rows.
func (s *GoalService) Goals(userID string) ([]*model.Goal, error) {
	goals, err := s.goalRepository.Goals(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals for user %s: %w", userID, err)
	}

	return goals, nil
}

// GoalsByCategory lists like Goals with an additional category filter.
// Soft-deleted rows are excluded here too.
func (s *GoalService) GoalsByCategory(userID, category string) ([]*model.Goal, error) {
	goals, err := s.goalRepository.GoalsByCategory(userID, category)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s goals for user %s: %w", category, userID, err)
	}

	return goals, nil
}

func (s *GoalService) Update(userID, goalID string, input GoalInput) (*model.Goal, error) {
	goal, err := s.goalRepository.ByID(userID, goalID)
	if err != nil {
		return nil, err
	}

	err = validation.ValidateGoalTitle(input.Title)
	if err != nil {
		return nil, err
	}
	err = validation.ValidateGoalRepeat(input.GoalRepeat)
	if err != nil {
		return nil, err
	}
	err = validation.ValidateCategory(input.Category)
	if err != nil {
		return nil, err
	}

	goal.Title = input.Title
	goal.Emoji = input.Emoji
	goal.EnergyCount = input.EnergyCount
	goal.ExperienceReward = input.ExperienceReward
	goal.GoalRepeat = input.GoalRepeat
	goal.RelatedVerse = input.RelatedVerse
	goal.Category = input.Category
	goal.GoalColor = input.GoalColor
	goal.GoalTimeSet = input.GoalTimeSet
	goal.UpdatedAt = s.now()

	err = s.goalRepository.Update(goal)
	if err != nil {
		return nil, fmt.Errorf("failed to update goal %s: %w", goalID, err)
	}

	return goal, nil
}

// Complete stamps completed_at. Calling it again simply overwrites the
// timestamp; there is no double-completion guard.
func (s *GoalService) Complete(userID, goalID string) (*model.Goal, error) {
	completedAt := s.now()

	err := s.goalRepository.Complete(userID, goalID, completedAt)
	if err != nil {
		if err == repository.ErrGoalNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("failed to complete goal %s: %w", goalID, err)
	}

	return s.goalRepository.ByID(userID, goalID)
}

// SoftDelete flags the goal deleted. The row stays readable by id but drops
// out of all listings.
func (s *GoalService) SoftDelete(userID, goalID string) (*model.Goal, error) {
	deletedAt := s.now()

	err := s.goalRepository.SoftDelete(userID, goalID, deletedAt)
	if err != nil {
		if err == repository.ErrGoalNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("failed to delete goal %s: %w", goalID, err)
	}

	return s.goalRepository.ByID(userID, goalID)
}

// RescheduleToToday moves a missed recurring goal back onto the current day
// without touching its completion or deletion state.
func (s *GoalService) RescheduleToToday(userID, goalID string) (*model.Goal, error) {
	timeSet := s.now()

	err := s.goalRepository.Reschedule(userID, goalID, timeSet)
	if err != nil {
		if err == repository.ErrGoalNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("failed to reschedule goal %s: %w", goalID, err)
	}

	return s.goalRepository.ByID(userID, goalID)
}
