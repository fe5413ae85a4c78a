package repository

import (
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pilgrimlabs/pilgrim/internal/model"
)

var (
	ErrCheckInNotFound = errors.New("check-in not found")
)

type CheckInRepository interface {
	Create(checkIn *model.CheckIn) error
	ByID(id string) (*model.CheckIn, error)
	CheckIns(userID string) ([]*model.CheckIn, error)
	CountInRange(userID string, start, end time.Time) (int, error)
	Latest(userID string) (*model.CheckIn, error)
}

type checkInRepository struct {
	db *sqlx.DB
}

func NewCheckInRepository(db *sqlx.DB) CheckInRepository {
	return &checkInRepository{db: db}
}

func (r *checkInRepository) Create(checkIn *model.CheckIn) error {
	query := `INSERT INTO check_ins (id, user_id, denarii_earned, manna_earned, fruit_earned, energy_earned, questions_answers, bonus_rewards, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.db.Exec(query,
		checkIn.ID,
		checkIn.UserID,
		checkIn.DenariiEarned,
		checkIn.MannaEarned,
		checkIn.FruitEarned,
		checkIn.EnergyEarned,
		checkIn.QuestionsAnswers,
		checkIn.BonusRewards,
		checkIn.CreatedAt,
	)

	return err
}

func (r *checkInRepository) ByID(id string) (*model.CheckIn, error) {
	checkIn := &model.CheckIn{}
	query := `SELECT * FROM check_ins WHERE id = $1`

	err := r.db.Get(checkIn, query, id)
	if err == sql.ErrNoRows {
		return nil, ErrCheckInNotFound
	}

	return checkIn, err
}

func (r *checkInRepository) CheckIns(userID string) ([]*model.CheckIn, error) {
	var checkIns []*model.CheckIn
	query := `SELECT * FROM check_ins WHERE user_id = $1 ORDER BY created_at DESC`

	err := r.db.Select(&checkIns, query, userID)
	if err != nil {
		return nil, err
	}

	return checkIns, nil
}

// CountInRange counts check-ins with created_at in the half-open
// interval [start, end).
func (r *checkInRepository) CountInRange(userID string, start, end time.Time) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM check_ins WHERE user_id = $1 AND created_at >= $2 AND created_at < $3`

	err := r.db.QueryRow(query, userID, start, end).Scan(&count)
	return count, err
}

// Latest returns the newest check-in for the user, or (nil, nil) when the
// user has never checked in. Callers must not treat the nil row as an error.
func (r *checkInRepository) Latest(userID string) (*model.CheckIn, error) {
	checkIn := &model.CheckIn{}
	query := `SELECT * FROM check_ins WHERE user_id = $1 ORDER BY created_at DESC LIMIT 1`

	err := r.db.Get(checkIn, query, userID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return checkIn, nil
}
