package model

import (
	"time"
)

type Character struct {
	ID         string     `db:"id" json:"id"`
	UserID     string     `db:"user_id" json:"user_id"`
	Name       string     `db:"name" json:"name"`
	Emoji      string     `db:"emoji" json:"emoji"`
	Portrait   string     `db:"portrait" json:"portrait"`
	IsSelected bool       `db:"is_selected" json:"is_selected"`
	IsDeleted  bool       `db:"is_deleted" json:"is_deleted"`
	DeletedAt  *time.Time `db:"deleted_at" json:"deleted_at"`
	CreatedAt  time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time  `db:"updated_at" json:"updated_at"`
}
