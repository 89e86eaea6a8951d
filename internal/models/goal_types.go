package models

import "time"

// Goal defines the model for the 'goals' table
type Goal struct {
	ID           int64     `json:"id" db:"id"`
	Title        string    `json:"title" db:"title"`
	Category     string    `json:"category" db:"category"`
	TargetValue  float64   `json:"targetValue" db:"target_value"`
	CurrentValue float64   `json:"currentValue" db:"current_value"`
	Unit         *string   `json:"unit,omitempty" db:"unit"`
	TargetDate   *string   `json:"targetDate,omitempty" db:"target_date"`
	IsCompleted  bool      `json:"isCompleted" db:"is_completed"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`
}
