package model

import (
	"github.com/lucianoaf8/InnSight/pkg/timeline"
)

// DashboardSummary is the derived view state for the dashboard: the
// logging streak plus the day-grouped entry history. It is recomputed on
// every fetch and never persisted.
type DashboardSummary struct {
	Streak int              `json:"streak"`
	Days   []timeline.Group `json:"days"`
}

// LogMoodRequest carries a new entry from the transport layer to the
// service. Emojis is the comma-joined wire form.
type LogMoodRequest struct {
	UserID  string
	Date    string
	Time    string
	Period  string
	Emojis  string
	Journal string
}
