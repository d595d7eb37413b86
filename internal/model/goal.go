package model

import (
	"time"
)

// DateLayout is the calendar-day format goals are filed under.
const DateLayout = "2006-01-02"

type Goal struct {
	ID          string    `json:"id"`
	MemberID    string    `json:"memberId"`
	Description string    `json:"description"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"createdAt"`
	Date        string    `json:"date"`
}

type CreateGoalRequest struct {
	MemberID    string `json:"memberId"`
	Description string `json:"description"`
	Date        string `json:"date"`
}

type UpdateGoalRequest struct {
	Completed bool `json:"completed"`
}

// Day formats t as the local calendar date used by Goal.Date.
func Day(t time.Time) string {
	return t.Format(DateLayout)
}
