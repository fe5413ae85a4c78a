package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pilgrimlabs/pilgrim/internal/model"
	"github.com/pilgrimlabs/pilgrim/internal/repository"
)

var (
	ErrCheckInUserRequired  = errors.New("check-in user id is required")
	ErrNegativeCheckInEarns = errors.New("check-in earned amounts must not be negative")
)

type CheckInInput struct {
	UserID           string
	DenariiEarned    int
	MannaEarned      int
	FruitEarned      int
	EnergyEarned     int
	QuestionsAnswers json.RawMessage
	BonusRewards     json.RawMessage
}

type CheckInService struct {
	checkInRepository repository.CheckInRepository
	now               func() time.Time
}

func NewCheckInService(checkInRepository repository.CheckInRepository) *CheckInService {
	return &CheckInService{
		checkInRepository: checkInRepository,
		now:               time.Now,
	}
}

// Record appends a check-in row. The ledger itself does not enforce one
// check-in per day; callers gate on CountToday first, accepting the
// check-then-act window between the count and the insert.
func (s *CheckInService) Record(input CheckInInput) (*model.CheckIn, error) {
	if input.UserID == "" {
		return nil, ErrCheckInUserRequired
	}
	if input.DenariiEarned < 0 || input.MannaEarned < 0 || input.FruitEarned < 0 || input.EnergyEarned < 0 {
		return nil, ErrNegativeCheckInEarns
	}

	checkIn := &model.CheckIn{
		ID:               uuid.New().String(),
		UserID:           input.UserID,
		DenariiEarned:    input.DenariiEarned,
		MannaEarned:      input.MannaEarned,
		FruitEarned:      input.FruitEarned,
		EnergyEarned:     input.EnergyEarned,
		QuestionsAnswers: input.QuestionsAnswers,
		BonusRewards:     input.BonusRewards,
		CreatedAt:        s.now(),
	}

	err := s.checkInRepository.Create(checkIn)
	if err != nil {
		return nil, fmt.Errorf("failed to record check-in for user %s: %w", input.UserID, err)
	}

	return checkIn, nil
}

// CountToday counts the user's check-ins whose created_at falls inside the
// current local calendar day, using a half-open [midnight, next midnight)
// interval.
func (s *CheckInService) CountToday(userID string) (int, error) {
	start, end := dayBounds(s.now())

	count, err := s.checkInRepository.CountInRange(userID, start, end)
	if err != nil {
		return 0, fmt.Errorf("failed to count check-ins for user %s: %w", userID, err)
	}

	return count, nil
}

// Latest returns the user's most recent check-in, or nil when the user has
// never checked in.
func (s *CheckInService) Latest(userID string) (*model.CheckIn, error) {
	checkIn, err := s.checkInRepository.Latest(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get latest check-in for user %s: %w", userID, err)
	}

	return checkIn, nil
}

func (s *CheckInService) CheckIns(userID string) ([]*model.CheckIn, error) {
	checkIns, err := s.checkInRepository.CheckIns(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list check-ins for user %s: %w", userID, err)
	}

	return checkIns, nil
}

// dayBounds returns local midnight of the day containing t and local
// midnight of the following day.
func dayBounds(t time.Time) (time.Time, time.Time) {
	year, month, day := t.Date()
	start := time.Date(year, month, day, 0, 0, 0, 0, t.Location())
	return start, start.AddDate(0, 0, 1)
}
