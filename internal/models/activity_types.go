package models

import "time"

// Activity defines the model for the 'activities' table.
// Dates are plain YYYY-MM-DD strings so daily queries are exact matches.
type Activity struct {
	ID           int64     `json:"id" db:"id"`
	ActivityDate string    `json:"date" db:"activity_date"`
	ActivityType string    `json:"activityType" db:"activity_type"`
	Value        float64   `json:"value" db:"value"`
	Notes        *string   `json:"notes,omitempty" db:"notes"` // Use pointer for NULL
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}

// ActivitySummary is the computed daily roll-up returned by the summary
// endpoint. It is never persisted.
type ActivitySummary struct {
	Date       string   `json:"date"`
	Steps      float64  `json:"steps"`
	SleepHours float64  `json:"sleepHours"`
	WaterCups  float64  `json:"waterCups"`
	Mood       *float64 `json:"mood,omitempty"`
}
