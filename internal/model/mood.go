package model

import "fmt"

type Mood string

const (
	MoodGreat    Mood = "great"
	MoodGood     Mood = "good"
	MoodNeutral  Mood = "neutral"
	MoodLow      Mood = "low"
	MoodStressed Mood = "stressed"
)

// Moods lists every mood in display order.
var Moods = []Mood{MoodGreat, MoodGood, MoodNeutral, MoodLow, MoodStressed}

var moodEmoji = map[Mood]string{
	MoodGreat:    "😀",
	MoodGood:     "😊",
	MoodNeutral:  "😐",
	MoodLow:      "😞",
	MoodStressed: "😤",
}

var moodLabels = map[Mood]string{
	MoodGreat:    "Great - Feeling excellent, highly productive",
	MoodGood:     "Good - Positive mood, on track",
	MoodNeutral:  "Neutral - Okay, neither good nor bad",
	MoodLow:      "Low - Struggling, could use support",
	MoodStressed: "Stressed - Overwhelmed, needs help",
}

func ParseMood(s string) (Mood, error) {
	m := Mood(s)
	if !m.Valid() {
		return "", fmt.Errorf("unknown mood %q", s)
	}
	return m, nil
}

func (m Mood) Valid() bool {
	_, ok := moodEmoji[m]
	return ok
}

func (m Mood) Emoji() string {
	return moodEmoji[m]
}

func (m Mood) Label() string {
	return moodLabels[m]
}
