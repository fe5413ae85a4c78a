package repository

import (
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pilgrimlabs/pilgrim/internal/model"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrDuplicateEmail    = errors.New("email already exists")
	ErrDuplicateUsername = errors.New("username already exists")
)

type UserRepository interface {
	Create(user *model.User) error
	ByID(id string) (*model.User, error)
	ByEmail(email string) (*model.User, error)
	Update(user *model.User) error
	UpdateProgress(id string, level, experiencePoints int) error
	ResetEnergy(id string, energyPoints int, resetAt time.Time) error
	TouchLastLogin(id string, at time.Time) error
	Delete(id string) error
}

type userRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *model.User) error {
	query := `INSERT INTO users (id, username, email, password_hash, level, experience_points, energy_points, energy_last_reset, last_login, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.db.Exec(query,
		user.ID,
		user.Username,
		user.Email,
		user.PasswordHash,
		user.Level,
		user.ExperiencePoints,
		user.EnergyPoints,
		user.EnergyLastReset,
		user.LastLogin,
		user.CreatedAt,
	)
	if err != nil {
		// Check for unique constraint violation (works for both SQLite and PostgreSQL)
		errStr := err.Error()
		if strings.Contains(errStr, "UNIQUE constraint failed") || strings.Contains(errStr, "duplicate key value") {
			if strings.Contains(errStr, "username") {
				return ErrDuplicateUsername
			}
			return ErrDuplicateEmail
		}
		return err
	}

	return nil
}

func (r *userRepository) ByID(id string) (*model.User, error) {
	user := &model.User{}
	query := `SELECT * FROM users WHERE id = $1`

	err := r.db.Get(user, query, id)
	if err == sql.ErrNoRows {
		return nil, ErrUserNotFound
	}

	return user, err
}

func (r *userRepository) ByEmail(email string) (*model.User, error) {
	user := &model.User{}
	query := `SELECT * FROM users WHERE email = $1`

	err := r.db.Get(user, query, email)
	if err == sql.ErrNoRows {
		return nil, ErrUserNotFound
	}

	return user, err
}

func (r *userRepository) Update(user *model.User) error {
	query := `UPDATE users
	          SET username = $1, email = $2, password_hash = $3, level = $4, experience_points = $5,
	              energy_points = $6, energy_last_reset = $7, last_login = $8
	          WHERE id = $9`

	result, err := r.db.Exec(query,
		user.Username,
		user.Email,
		user.PasswordHash,
		user.Level,
		user.ExperiencePoints,
		user.EnergyPoints,
		user.EnergyLastReset,
		user.LastLogin,
		user.ID,
	)
	if err != nil {
		return err
	}

	return checkRowsAffected(result, ErrUserNotFound)
}

func (r *userRepository) UpdateProgress(id string, level, experiencePoints int) error {
	query := `UPDATE users SET level = $1, experience_points = $2 WHERE id = $3`

	result, err := r.db.Exec(query, level, experiencePoints, id)
	if err != nil {
		return err
	}

	return checkRowsAffected(result, ErrUserNotFound)
}

func (r *userRepository) ResetEnergy(id string, energyPoints int, resetAt time.Time) error {
	query := `UPDATE users SET energy_points = $1, energy_last_reset = $2 WHERE id = $3`

	result, err := r.db.Exec(query, energyPoints, resetAt, id)
	if err != nil {
		return err
	}

	return checkRowsAffected(result, ErrUserNotFound)
}

func (r *userRepository) TouchLastLogin(id string, at time.Time) error {
	query := `UPDATE users SET last_login = $1 WHERE id = $2`

	result, err := r.db.Exec(query, at, id)
	if err != nil {
		return err
	}

	return checkRowsAffected(result, ErrUserNotFound)
}

func (r *userRepository) Delete(id string) error {
	query := `DELETE FROM users WHERE id = $1`

	result, err := r.db.Exec(query, id)
	if err != nil {
		return err
	}

	return checkRowsAffected(result, ErrUserNotFound)
}

func checkRowsAffected(result sql.Result, notFound error) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return notFound
	}

	return nil
}
