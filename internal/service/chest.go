package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/pilgrimlabs/pilgrim/internal/model"
	"github.com/pilgrimlabs/pilgrim/internal/repository"
)

var (
	ErrUnknownChestTier = errors.New("unknown chest tier")
	ErrEmptyChestClaim  = errors.New("chest claim requires at least one reward")
)

type rewardRange struct {
	min int
	max int
}

// Amount ranges are inclusive on both ends, per tier and reward type.
var chestRanges = map[string]map[string]rewardRange{
	model.ChestTierDaily: {
		model.RewardTypeFruit:   {min: 500, max: 1000},
		model.RewardTypeDenarii: {min: 100, max: 200},
		model.RewardTypeManna:   {min: 1, max: 5},
	},
	model.ChestTierWeekly: {
		model.RewardTypeFruit:   {min: 2000, max: 5000},
		model.RewardTypeDenarii: {min: 500, max: 1000},
		model.RewardTypeManna:   {min: 10, max: 25},
	},
}

var rewardNames = map[string]string{
	model.RewardTypeFruit:   "Fruit of the Spirit",
	model.RewardTypeDenarii: "Denarii",
	model.RewardTypeManna:   "Manna",
}

type ChestService struct {
	chestClaimRepository repository.ChestClaimRepository
	intN                 func(n int) int
	now                  func() time.Time
}

func NewChestService(chestClaimRepository repository.ChestClaimRepository) *ChestService {
	return &ChestService{
		chestClaimRepository: chestClaimRepository,
		intN:                 rand.IntN,
		now:                  time.Now,
	}
}

// Generate rolls one chest: exactly three rewards in fixed order (fruit,
// denarii, manna), each amount drawn uniformly from the tier's inclusive
// range. The set is rolled once per chest-opening session; the client
// reveals rewards one at a time in this order without re-rolling.
func (s *ChestService) Generate(tier string) ([]model.Reward, error) {
	ranges, ok := chestRanges[tier]
	if !ok {
		return nil, ErrUnknownChestTier
	}

	types := []string{model.RewardTypeFruit, model.RewardTypeDenarii, model.RewardTypeManna}
	rewards := make([]model.Reward, 0, len(types))
	for _, rewardType := range types {
		r := ranges[rewardType]
		rewards = append(rewards, model.Reward{
			ID:     uuid.New().String(),
			Type:   rewardType,
			Amount: r.min + s.intN(r.max-r.min+1),
			Name:   rewardNames[rewardType],
		})
	}

	return rewards, nil
}

// Claim persists the aggregated summary of a fully revealed chest. Only the
// daily tier is written today.
//
// TODO: persist weekly chest claims once the weekly reward history surface
// lands; for now the weekly path only logs the summary.
func (s *ChestService) Claim(userID, tier string, rewards []model.Reward) (*model.ChestClaim, error) {
	if _, ok := chestRanges[tier]; !ok {
		return nil, ErrUnknownChestTier
	}
	if len(rewards) == 0 {
		return nil, ErrEmptyChestClaim
	}

	payload, err := json.Marshal(rewards)
	if err != nil {
		return nil, fmt.Errorf("failed to encode rewards: %w", err)
	}

	claim := &model.ChestClaim{
		ID:           uuid.New().String(),
		UserID:       userID,
		ChestType:    tier,
		Rewards:      payload,
		TotalRewards: len(rewards),
		ClaimedAt:    s.now(),
	}

	if tier == model.ChestTierWeekly {
		slog.Info("weekly chest claimed",
			"user_id", userID,
			"total_rewards", claim.TotalRewards,
			"rewards", string(payload),
		)
		return claim, nil
	}

	err = s.chestClaimRepository.Create(claim)
	if err != nil {
		return nil, fmt.Errorf("failed to save chest claim for user %s: %w", userID, err)
	}

	return claim, nil
}

func (s *ChestService) Claims(userID string) ([]*model.ChestClaim, error) {
	claims, err := s.chestClaimRepository.Claims(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list chest claims for user %s: %w", userID, err)
	}

	return claims, nil
}
