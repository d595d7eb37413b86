package model

// NoGoalsYet replaces the completion percentage when there is nothing to complete.
const NoGoalsYet = "No goals yet"

type MoodCount map[Mood]int

type TeamStats struct {
	CompletionPercentage string    `json:"completionPercentage"`
	MoodBreakdown        MoodCount `json:"moodBreakdown"`
	TotalGoals           int       `json:"totalGoals"`
	CompletedGoals       int       `json:"completedGoals"`
}
