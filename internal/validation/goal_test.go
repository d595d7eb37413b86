package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vibeloop/vibeloop/internal/model"
)

func TestValidateGoalDescription(t *testing.T) {
	tests := []struct {
		name        string
		description string
		wantErr     string
	}{
		{"ok", "Ship the release", ""},
		{"exactly min", "abc", ""},
		{"exactly max", strings.Repeat("a", 200), ""},
		{"multibyte counts characters", strings.Repeat("é", 200), ""},
		{"empty", "   ", "description is required"},
		{"too short after trim", "  ab  ", "description is too short (min 3 characters)"},
		{"too long", strings.Repeat("a", 201), "description is too long (max 200 characters)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateGoalDescription(tt.description)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tt.wantErr)
			assert.ErrorIs(t, err, model.ErrInvalidInput)
		})
	}
}

func TestValidateGoalDate(t *testing.T) {
	assert.NoError(t, ValidateGoalDate("2026-10-18"))
	assert.ErrorIs(t, ValidateGoalDate(""), model.ErrInvalidInput)
	assert.ErrorIs(t, ValidateGoalDate("18/10/2026"), model.ErrInvalidInput)
	assert.ErrorIs(t, ValidateGoalDate("2026-02-30"), model.ErrInvalidInput)
}

func TestValidateID(t *testing.T) {
	assert.NoError(t, ValidateID("goal", "g1"))
	assert.EqualError(t, ValidateID("member", " "), "member id is required")
}
