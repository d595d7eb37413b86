package model

import (
	"time"
)

type TeamMember struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Mood          *Mood      `json:"mood"`
	MoodUpdatedAt *time.Time `json:"moodUpdatedAt"`
	Goals         []Goal     `json:"goals"`
}

type UpdateMoodRequest struct {
	Mood      Mood      `json:"mood"`
	Timestamp time.Time `json:"timestamp"`
}

// Clone returns a deep copy so callers can't mutate a cached or persisted record.
func (m TeamMember) Clone() TeamMember {
	out := m
	if m.Mood != nil {
		mood := *m.Mood
		out.Mood = &mood
	}
	if m.MoodUpdatedAt != nil {
		ts := *m.MoodUpdatedAt
		out.MoodUpdatedAt = &ts
	}
	out.Goals = make([]Goal, len(m.Goals))
	copy(out.Goals, m.Goals)
	return out
}

func CloneMembers(members []TeamMember) []TeamMember {
	out := make([]TeamMember, len(members))
	for i, m := range members {
		out[i] = m.Clone()
	}
	return out
}
