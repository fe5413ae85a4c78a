package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pilgrimlabs/pilgrim/internal/model"
	"github.com/pilgrimlabs/pilgrim/internal/repository"
)

var (
	ErrCharacterNameRequired = errors.New("character name is required")
)

type CharacterService struct {
	characterRepository repository.CharacterRepository
	now                 func() time.Time
}

func NewCharacterService(characterRepository repository.CharacterRepository) *CharacterService {
	return &CharacterService{
		characterRepository: characterRepository,
		now:                 time.Now,
	}
}

func (s *CharacterService) Create(userID, name, emoji, portrait string) (*model.Character, error) {
	if name == "" {
		return nil, ErrCharacterNameRequired
	}

	now := s.now()
	character := &model.Character{
		ID:        uuid.New().String(),
		UserID:    userID,
		Name:      name,
		Emoji:     emoji,
		Portrait:  portrait,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := s.characterRepository.Create(character)
	if err != nil {
		return nil, fmt.Errorf("failed to create character for user %s: %w", userID, err)
	}

	return character, nil
}

func (s *CharacterService) ByID(userID, characterID string) (*model.Character, error) {
	return s.characterRepository.ByID(userID, characterID)
}

func (s *CharacterService) Characters(userID string) ([]*model.Character, error) {
	characters, err := s.characterRepository.Characters(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list characters for user %s: %w", userID, err)
	}

	return characters, nil
}

func (s *CharacterService) Update(userID, characterID, name, emoji, portrait string) (*model.Character, error) {
	if name == "" {
		return nil, ErrCharacterNameRequired
	}

	character, err := s.characterRepository.ByID(userID, characterID)
	if err != nil {
		return nil, err
	}

	character.Name = name
	character.Emoji = emoji
	character.Portrait = portrait
	character.UpdatedAt = s.now()

	err = s.characterRepository.Update(character)
	if err != nil {
		return nil, fmt.Errorf("failed to update character %s: %w", characterID, err)
	}

	return character, nil
}

// Selected returns the user's active character, or nil when none is set.
func (s *CharacterService) Selected(userID string) (*model.Character, error) {
	character, err := s.characterRepository.Selected(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get selected character for user %s: %w", userID, err)
	}

	return character, nil
}

func (s *CharacterService) Select(userID, characterID string) (*model.Character, error) {
	err := s.characterRepository.Select(userID, characterID, s.now())
	if err != nil {
		if err == repository.ErrCharacterNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("failed to select character %s: %w", characterID, err)
	}

	return s.characterRepository.ByID(userID, characterID)
}

func (s *CharacterService) SoftDelete(userID, characterID string) (*model.Character, error) {
	err := s.characterRepository.SoftDelete(userID, characterID, s.now())
	if err != nil {
		if err == repository.ErrCharacterNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("failed to delete character %s: %w", characterID, err)
	}

	return s.characterRepository.ByID(userID, characterID)
}
