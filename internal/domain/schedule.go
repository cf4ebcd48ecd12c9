package domain

import "time"

// WeeklySchedule maps weekdays to planned template IDs. It lives as a
// single document; the dashboard reads it, the schedule editor writes
// it whole.
type WeeklySchedule struct {
	ID        string              `bson:"_id" json:"id"`
	Days      map[string][]string `bson:"days" json:"days"` // "monday" -> ["lower-1", "tabata"]
	UpdatedAt time.Time           `bson:"updatedAt" json:"updatedAt"`
}

// ScheduleDocID is the fixed ID of the single schedule document.
const ScheduleDocID = "current"
