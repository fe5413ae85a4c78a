package model

import (
	"time"
)

type User struct {
	ID               string     `db:"id" json:"id"`
	Username         string     `db:"username" json:"username"`
	Email            string     `db:"email" json:"email"`
	PasswordHash     *string    `db:"password_hash" json:"-"` // Nullable for accounts created via external auth
	Level            int        `db:"level" json:"level"`
	ExperiencePoints int        `db:"experience_points" json:"experience_points"`
	EnergyPoints     int        `db:"energy_points" json:"energy_points"`
	EnergyLastReset  time.Time  `db:"energy_last_reset" json:"energy_last_reset"`
	LastLogin        *time.Time `db:"last_login" json:"last_login"`
	CreatedAt        time.Time  `db:"created_at" json:"created_at"`
}

func (u *User) HasPassword() bool {
	return u.PasswordHash != nil && *u.PasswordHash != ""
}

// ExperienceThreshold is the experience total at which the user's
// current level rolls over to the next one.
func (u *User) ExperienceThreshold() int {
	return 100 * u.Level
}
