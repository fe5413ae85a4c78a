package service

import (
	"errors"
	"fmt"

	"github.com/pilgrimlabs/pilgrim/internal/model"
	"github.com/pilgrimlabs/pilgrim/internal/repository"
	"github.com/pilgrimlabs/pilgrim/internal/validation"
)

type UserService struct {
	userRepository repository.UserRepository
}

func NewUserService(userRepository repository.UserRepository) *UserService {
	return &UserService{
		userRepository: userRepository,
	}
}

func (s *UserService) ByID(id string) (*model.User, error) {
	return s.userRepository.ByID(id)
}

func (s *UserService) UpdateUsername(id, username string) (*model.User, error) {
	err := validation.ValidateUsername(username)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepository.ByID(id)
	if err != nil {
		return nil, err
	}

	user.Username = username
	err = s.userRepository.Update(user)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update username for user %s: %w", id, err)
	}

	return user, nil
}
