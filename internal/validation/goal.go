package validation

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/vibeloop/vibeloop/internal/model"
)

const (
	GoalDescriptionMin = 3
	GoalDescriptionMax = 200
)

// ValidateGoalDescription checks the trimmed description length in characters
func ValidateGoalDescription(description string) error {
	n := utf8.RuneCountInString(strings.TrimSpace(description))

	if n == 0 {
		return model.NewInvalidInputError("description is required")
	}

	if n < GoalDescriptionMin {
		return model.NewInvalidInputError("description is too short (min 3 characters)")
	}

	if n > GoalDescriptionMax {
		return model.NewInvalidInputError("description is too long (max 200 characters)")
	}

	return nil
}

// ValidateGoalDate requires a YYYY-MM-DD calendar date
func ValidateGoalDate(date string) error {
	if date == "" {
		return model.NewInvalidInputError("date is required")
	}

	_, err := time.Parse(model.DateLayout, date)
	if err != nil {
		return model.NewInvalidInputError("date must be in YYYY-MM-DD format")
	}

	return nil
}

func ValidateID(kind, id string) error {
	if strings.TrimSpace(id) == "" {
		return model.NewInvalidInputError(kind + " id is required")
	}
	return nil
}
