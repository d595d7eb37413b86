package model

import (
	"time"
)

// StorageKey names the single slot holding the whole snapshot.
const StorageKey = "vibeloop_data"

type Snapshot struct {
	Members     []TeamMember `json:"members"`
	LastUpdated time.Time    `json:"lastUpdated"`
}
