package model

import (
	"time"
)

const (
	GoalRepeatOnce    = "once"
	GoalRepeatDaily   = "daily"
	GoalRepeatWeekly  = "weekly"
	GoalRepeatMonthly = "monthly"
)

type Goal struct {
	ID               string     `db:"id" json:"id"`
	UserID           string     `db:"user_id" json:"user_id"`
	Title            string     `db:"title" json:"title"`
	Emoji            string     `db:"emoji" json:"emoji"`
	EnergyCount      int        `db:"energy_count" json:"energy_count"`
	ExperienceReward int        `db:"experience_reward" json:"experience_reward"`
	GoalRepeat       string     `db:"goal_repeat" json:"goal_repeat"`
	RelatedVerse     *string    `db:"related_verse" json:"related_verse"`
	Category         string     `db:"category" json:"category"`
	GoalColor        string     `db:"goal_color" json:"goal_color"`
	GoalTimeSet      *time.Time `db:"goal_time_set" json:"goal_time_set"`
	CompletedAt      *time.Time `db:"completed_at" json:"completed_at"`
	IsDeleted        bool       `db:"is_deleted" json:"is_deleted"`
	DeletedAt        *time.Time `db:"deleted_at" json:"deleted_at"`
	CreatedAt        time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time  `db:"updated_at" json:"updated_at"`
}
