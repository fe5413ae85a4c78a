package repository

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/pilgrimlabs/pilgrim/internal/model"
)

var (
	ErrChestClaimNotFound = errors.New("chest claim not found")
)

type ChestClaimRepository interface {
	Create(claim *model.ChestClaim) error
	ByID(id string) (*model.ChestClaim, error)
	Claims(userID string) ([]*model.ChestClaim, error)
	Latest(userID, chestType string) (*model.ChestClaim, error)
}

type chestClaimRepository struct {
	db *sqlx.DB
}

func NewChestClaimRepository(db *sqlx.DB) ChestClaimRepository {
	return &chestClaimRepository{db: db}
}

func (r *chestClaimRepository) Create(claim *model.ChestClaim) error {
	query := `INSERT INTO chest_claims (id, user_id, chest_type, rewards, total_rewards, claimed_at)
	          VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.Exec(query,
		claim.ID,
		claim.UserID,
		claim.ChestType,
		claim.Rewards,
		claim.TotalRewards,
		claim.ClaimedAt,
	)

	return err
}

func (r *chestClaimRepository) ByID(id string) (*model.ChestClaim, error) {
	claim := &model.ChestClaim{}
	query := `SELECT * FROM chest_claims WHERE id = $1`

	err := r.db.Get(claim, query, id)
	if err == sql.ErrNoRows {
		return nil, ErrChestClaimNotFound
	}

	return claim, err
}

func (r *chestClaimRepository) Claims(userID string) ([]*model.ChestClaim, error) {
	var claims []*model.ChestClaim
	query := `SELECT * FROM chest_claims WHERE user_id = $1 ORDER BY claimed_at DESC`

	err := r.db.Select(&claims, query, userID)
	if err != nil {
		return nil, err
	}

	return claims, nil
}

// Latest returns the newest claim of the given chest type, or (nil, nil)
// when the user has never claimed one.
func (r *chestClaimRepository) Latest(userID, chestType string) (*model.ChestClaim, error) {
	claim := &model.ChestClaim{}
	query := `SELECT * FROM chest_claims WHERE user_id = $1 AND chest_type = $2 ORDER BY claimed_at DESC LIMIT 1`

	err := r.db.Get(claim, query, userID, chestType)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return claim, nil
}
