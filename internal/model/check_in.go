package model

import (
	"encoding/json"
	"time"
)

type CheckIn struct {
	ID               string          `db:"id" json:"id"`
	UserID           string          `db:"user_id" json:"user_id"`
	DenariiEarned    int             `db:"denarii_earned" json:"denarii_earned"`
	MannaEarned      int             `db:"manna_earned" json:"manna_earned"`
	FruitEarned      int             `db:"fruit_earned" json:"fruit_earned"`
	EnergyEarned     int             `db:"energy_earned" json:"energy_earned"`
	QuestionsAnswers json.RawMessage `db:"questions_answers" json:"questions_answers"` // Opaque to this service
	BonusRewards     json.RawMessage `db:"bonus_rewards" json:"bonus_rewards"`
	CreatedAt        time.Time       `db:"created_at" json:"created_at"`
}
