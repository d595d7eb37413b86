package repository

import (
	"time"

	"github.com/vibeloop/vibeloop/internal/model"
)

// SeedMembers returns the sample team written on first use. Goals are filed
// under the day of now and moods are stamped with now.
func SeedMembers(now time.Time) []model.TeamMember {
	today := model.Day(now)
	stamp := now.UTC()

	goal := func(id, memberID, description string, completed bool, createdAt string) model.Goal {
		created, _ := time.Parse(time.RFC3339, createdAt)
		return model.Goal{
			ID:          id,
			MemberID:    memberID,
			Description: description,
			Completed:   completed,
			CreatedAt:   created,
			Date:        today,
		}
	}
	mood := func(m model.Mood) *model.Mood {
		return &m
	}
	at := func() *time.Time {
		ts := stamp
		return &ts
	}

	return []model.TeamMember{
		{
			ID:            "1",
			Name:          "Alice Johnson",
			Mood:          mood(model.MoodGreat),
			MoodUpdatedAt: at(),
			Goals: []model.Goal{
				goal("g1", "1", "Complete API design document", false, "2025-11-23T09:00:00Z"),
				goal("g2", "1", "Review pull requests", true, "2025-11-23T09:15:00Z"),
			},
		},
		{
			ID:            "2",
			Name:          "Bob Smith",
			Mood:          mood(model.MoodNeutral),
			MoodUpdatedAt: at(),
			Goals: []model.Goal{
				goal("g3", "2", "Fix authentication bug", false, "2025-11-23T09:30:00Z"),
			},
		},
		{
			ID:    "3",
			Name:  "Carol Davis",
			Goals: []model.Goal{},
		},
		{
			ID:            "4",
			Name:          "David Wilson",
			Mood:          mood(model.MoodStressed),
			MoodUpdatedAt: at(),
			Goals: []model.Goal{
				goal("g4", "4", "Deploy to production", false, "2025-11-23T10:00:00Z"),
				goal("g5", "4", "Database migration", false, "2025-11-23T10:15:00Z"),
				goal("g6", "4", "Update monitoring alerts", false, "2025-11-23T10:30:00Z"),
			},
		},
		{
			ID:            "5",
			Name:          "Emma Thompson",
			Mood:          mood(model.MoodGood),
			MoodUpdatedAt: at(),
			Goals: []model.Goal{
				goal("g7", "5", "Write unit tests", true, "2025-11-23T11:00:00Z"),
			},
		},
	}
}
