package models

import "time"

// MeditationSession defines the model for the 'meditation_sessions' table
type MeditationSession struct {
	ID              int64     `json:"id" db:"id"`
	SessionDate     string    `json:"date" db:"session_date"`
	PracticeType    string    `json:"practiceType" db:"practice_type"`
	DurationMinutes int       `json:"durationMinutes" db:"duration_minutes"`
	MoodBefore      *string   `json:"moodBefore,omitempty" db:"mood_before"`
	MoodAfter       *string   `json:"moodAfter,omitempty" db:"mood_after"`
	Notes           *string   `json:"notes,omitempty" db:"notes"`
	CreatedAt       time.Time `json:"createdAt" db:"created_at"`
}

// MeditationStats is computed over the full session history.
type MeditationStats struct {
	TotalMinutes  int            `json:"totalMinutes"`
	TotalSessions int            `json:"totalSessions"`
	ByPractice    map[string]int `json:"byPractice"`
	CurrentStreak int            `json:"currentStreak"`
}
