package repository

import (
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pilgrimlabs/pilgrim/internal/model"
)

var (
	ErrGoalNotFound = errors.New("goal not found")
)

type GoalRepository interface {
	Create(goal *model.Goal) error
	ByID(userID, goalID string) (*model.Goal, error)
	Goals(userID string) ([]*model.Goal, error)
	GoalsByCategory(userID, category string) ([]*model.Goal, error)
	Update(goal *model.Goal) error
	Complete(userID, goalID string, completedAt time.Time) error
	SoftDelete(userID, goalID string, deletedAt time.Time) error
	Reschedule(userID, goalID string, timeSet time.Time) error
}

type goalRepository struct {
	db *sqlx.DB
}

func NewGoalRepository(db *sqlx.DB) GoalRepository {
	return &goalRepository{db: db}
}

func (r *goalRepository) Create(goal *model.Goal) error {
	query := `INSERT INTO goals (id, user_id, title, emoji, energy_count, experience_reward, goal_repeat, related_verse, category, goal_color, goal_time_set, completed_at, is_deleted, deleted_at, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`

	_, err := r.db.Exec(query,
		goal.ID,
		goal.UserID,
		goal.Title,
		goal.Emoji,
		goal.EnergyCount,
		goal.ExperienceReward,
		goal.GoalRepeat,
		goal.RelatedVerse,
		goal.Category,
		goal.GoalColor,
		goal.GoalTimeSet,
		goal.CompletedAt,
		goal.IsDeleted,
		goal.DeletedAt,
		goal.CreatedAt,
		goal.UpdatedAt,
	)

	return err
}

// ByID returns the goal regardless of its soft-delete flag, so a
// soft-deleted goal stays readable by id.
func (r *goalRepository) ByID(userID, goalID string) (*model.Goal, error) {
	goal := &model.Goal{}
	query := `SELECT * FROM goals WHERE id = $1 AND user_id = $2`

	err := r.db.Get(goal, query, goalID, userID)
	if err == sql.ErrNoRows {
		return nil, ErrGoalNotFound
	}

	return goal, err
}

func (r *goalRepository) Goals(userID string) ([]*model.Goal, error) {
	var goals []*model.Goal
	query := `SELECT * FROM goals WHERE user_id = $1 AND is_deleted = FALSE ORDER BY created_at DESC`

	err := r.db.Select(&goals, query, userID)
	if err != nil {
		return nil, err
	}

	return goals, nil
}

func (r *goalRepository) GoalsByCategory(userID, category string) ([]*model.Goal, error) {
	var goals []*model.Goal
	query := `SELECT * FROM goals WHERE user_id = $1 AND category = $2 AND is_deleted = FALSE ORDER BY created_at DESC`

	err := r.db.Select(&goals, query, userID, category)
	if err != nil {
		return nil, err
	}

	return goals, nil
}

func (r *goalRepository) Update(goal *model.Goal) error {
	query := `UPDATE goals
	          SET title = $1, emoji = $2, energy_count = $3, experience_reward = $4, goal_repeat = $5,
	              related_verse = $6, category = $7, goal_color = $8, goal_time_set = $9, updated_at = $10
	          WHERE id = $11 AND user_id = $12`

	result, err := r.db.Exec(query,
		goal.Title,
		goal.Emoji,
		goal.EnergyCount,
		goal.ExperienceReward,
		goal.GoalRepeat,
		goal.RelatedVerse,
		goal.Category,
		goal.GoalColor,
		goal.GoalTimeSet,
		goal.UpdatedAt,
		goal.ID,
		goal.UserID,
	)
	if err != nil {
		return err
	}

	return checkRowsAffected(result, ErrGoalNotFound)
}

func (r *goalRepository) Complete(userID, goalID string, completedAt time.Time) error {
	query := `UPDATE goals SET completed_at = $1, updated_at = $2 WHERE id = $3 AND user_id = $4`

	result, err := r.db.Exec(query, completedAt, completedAt, goalID, userID)
	if err != nil {
		return err
	}

	return checkRowsAffected(result, ErrGoalNotFound)
}

func (r *goalRepository) SoftDelete(userID, goalID string, deletedAt time.Time) error {
	query := `UPDATE goals SET is_deleted = TRUE, deleted_at = $1, updated_at = $2 WHERE id = $3 AND user_id = $4`

	result, err := r.db.Exec(query, deletedAt, deletedAt, goalID, userID)
	if err != nil {
		return err
	}

	return checkRowsAffected(result, ErrGoalNotFound)
}

func (r *goalRepository) Reschedule(userID, goalID string, timeSet time.Time) error {
	query := `UPDATE goals SET goal_time_set = $1, updated_at = $2 WHERE id = $3 AND user_id = $4`

	result, err := r.db.Exec(query, timeSet, timeSet, goalID, userID)
	if err != nil {
		return err
	}

	return checkRowsAffected(result, ErrGoalNotFound)
}
