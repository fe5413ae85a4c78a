package repository

import (
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pilgrimlabs/pilgrim/internal/model"
)

var (
	ErrCharacterNotFound = errors.New("character not found")
)

type CharacterRepository interface {
	Create(character *model.Character) error
	ByID(userID, characterID string) (*model.Character, error)
	Characters(userID string) ([]*model.Character, error)
	Selected(userID string) (*model.Character, error)
	Select(userID, characterID string, at time.Time) error
	Update(character *model.Character) error
	SoftDelete(userID, characterID string, deletedAt time.Time) error
}

type characterRepository struct {
	db *sqlx.DB
}

func NewCharacterRepository(db *sqlx.DB) CharacterRepository {
	return &characterRepository{db: db}
}

func (r *characterRepository) Create(character *model.Character) error {
	query := `INSERT INTO characters (id, user_id, name, emoji, portrait, is_selected, is_deleted, deleted_at, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.db.Exec(query,
		character.ID,
		character.UserID,
		character.Name,
		character.Emoji,
		character.Portrait,
		character.IsSelected,
		character.IsDeleted,
		character.DeletedAt,
		character.CreatedAt,
		character.UpdatedAt,
	)

	return err
}

func (r *characterRepository) ByID(userID, characterID string) (*model.Character, error) {
	character := &model.Character{}
	query := `SELECT * FROM characters WHERE id = $1 AND user_id = $2`

	err := r.db.Get(character, query, characterID, userID)
	if err == sql.ErrNoRows {
		return nil, ErrCharacterNotFound
	}

	return character, err
}

func (r *characterRepository) Characters(userID string) ([]*model.Character, error) {
	var characters []*model.Character
	query := `SELECT * FROM characters WHERE user_id = $1 AND is_deleted = FALSE ORDER BY created_at DESC`

	err := r.db.Select(&characters, query, userID)
	if err != nil {
		return nil, err
	}

	return characters, nil
}

// Selected returns the user's active character, or (nil, nil) when none is
// selected.
func (r *characterRepository) Selected(userID string) (*model.Character, error) {
	character := &model.Character{}
	query := `SELECT * FROM characters WHERE user_id = $1 AND is_selected = TRUE AND is_deleted = FALSE LIMIT 1`

	err := r.db.Get(character, query, userID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return character, nil
}

// Select marks one character as active and clears the flag on the rest of
// the roster. Two statements, no transaction: a failure between them leaves
// no character selected, which callers treat the same as a fresh roster.
func (r *characterRepository) Select(userID, characterID string, at time.Time) error {
	clear := `UPDATE characters SET is_selected = FALSE, updated_at = $1 WHERE user_id = $2 AND is_selected = TRUE`
	_, err := r.db.Exec(clear, at, userID)
	if err != nil {
		return err
	}

	query := `UPDATE characters SET is_selected = TRUE, updated_at = $1 WHERE id = $2 AND user_id = $3 AND is_deleted = FALSE`
	result, err := r.db.Exec(query, at, characterID, userID)
	if err != nil {
		return err
	}

	return checkRowsAffected(result, ErrCharacterNotFound)
}

func (r *characterRepository) Update(character *model.Character) error {
	query := `UPDATE characters SET name = $1, emoji = $2, portrait = $3, updated_at = $4 WHERE id = $5 AND user_id = $6`

	result, err := r.db.Exec(query,
		character.Name,
		character.Emoji,
		character.Portrait,
		character.UpdatedAt,
		character.ID,
		character.UserID,
	)
	if err != nil {
		return err
	}

	return checkRowsAffected(result, ErrCharacterNotFound)
}

func (r *characterRepository) SoftDelete(userID, characterID string, deletedAt time.Time) error {
	query := `UPDATE characters SET is_deleted = TRUE, is_selected = FALSE, deleted_at = $1, updated_at = $2 WHERE id = $3 AND user_id = $4`

	result, err := r.db.Exec(query, deletedAt, deletedAt, characterID, userID)
	if err != nil {
		return err
	}

	return checkRowsAffected(result, ErrCharacterNotFound)
}
