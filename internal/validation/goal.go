package validation

import (
	"errors"
	"strings"
)

var goalRepeats = map[string]bool{
	"once":    true,
	"daily":   true,
	"weekly":  true,
	"monthly": true,
}

// ValidateGoalTitle validates a goal title
func ValidateGoalTitle(title string) error {
	trimmed := strings.TrimSpace(title)

	if trimmed == "" {
		return errors.New("title is required")
	}

	if len(trimmed) > 200 {
		return errors.New("title is too long (max 200 characters)")
	}

	return nil
}

// ValidateGoalRepeat validates a goal repeat schedule
func ValidateGoalRepeat(repeat string) error {
	if !goalRepeats[repeat] {
		return errors.New("invalid repeat schedule")
	}
	return nil
}

// ValidateCategory validates a goal category name
func ValidateCategory(category string) error {
	trimmed := strings.TrimSpace(category)

	if trimmed == "" {
		return errors.New("category is required")
	}

	if len(trimmed) > 50 {
		return errors.New("category is too long (max 50 characters)")
	}

	return nil
}
