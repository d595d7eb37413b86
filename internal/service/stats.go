package service

import (
	"fmt"
	"math"

	"github.com/vibeloop/vibeloop/internal/model"
)

// Stats derives the team summary from members. Goals are counted as given;
// callers pass an already date-filtered list when they want today's numbers.
func Stats(members []model.TeamMember) model.TeamStats {
	total, completed := GoalCounts(members)
	return model.TeamStats{
		CompletionPercentage: CompletionPercentage(members),
		MoodBreakdown:        MoodBreakdown(members),
		TotalGoals:           total,
		CompletedGoals:       completed,
	}
}

// CompletionPercentage is completed/total rounded half up, as "<n>%".
func CompletionPercentage(members []model.TeamMember) string {
	total, completed := GoalCounts(members)
	if total == 0 {
		return model.NoGoalsYet
	}
	pct := math.Floor(float64(completed)*100/float64(total) + 0.5)
	return fmt.Sprintf("%d%%", int(pct))
}

// MoodBreakdown counts members per mood; every mood is present, members
// without a mood are not counted.
func MoodBreakdown(members []model.TeamMember) model.MoodCount {
	counts := make(model.MoodCount, len(model.Moods))
	for _, m := range model.Moods {
		counts[m] = 0
	}
	for _, member := range members {
		if member.Mood != nil && member.Mood.Valid() {
			counts[*member.Mood]++
		}
	}
	return counts
}

func GoalCounts(members []model.TeamMember) (total, completed int) {
	for _, member := range members {
		total += len(member.Goals)
		for _, g := range member.Goals {
			if g.Completed {
				completed++
			}
		}
	}
	return total, completed
}
