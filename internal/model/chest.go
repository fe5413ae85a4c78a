package model

import (
	"encoding/json"
	"time"
)

const (
	ChestTierDaily  = "daily"
	ChestTierWeekly = "weekly"
)

const (
	RewardTypeFruit   = "fruit"
	RewardTypeDenarii = "denarii"
	RewardTypeManna   = "manna"
)

// Reward is a single randomized currency drop inside a chest. Rewards are
// ephemeral: they exist for one chest-opening session and are persisted only
// as part of the aggregated ChestClaim summary.
type Reward struct {
	ID     string `json:"id"`
	Type   string `json:"type"`
	Amount int    `json:"amount"`
	Name   string `json:"name"`
}

// ChestClaim is the aggregated record written once the final reward in a
// chest has been revealed.
type ChestClaim struct {
	ID           string          `db:"id" json:"id"`
	UserID       string          `db:"user_id" json:"user_id"`
	ChestType    string          `db:"chest_type" json:"chest_type"`
	Rewards      json.RawMessage `db:"rewards" json:"rewards"`
	TotalRewards int             `db:"total_rewards" json:"total_rewards"`
	ClaimedAt    time.Time       `db:"claimed_at" json:"claimed_at"`
}
