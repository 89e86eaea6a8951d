package models

import "time"

// RhythmVisual defines the model for the 'rhythm_visuals' table
type RhythmVisual struct {
	ID             int64     `json:"id" db:"id"`
	RhythmCategory string    `json:"rhythmCategory" db:"rhythm_category"`
	RhythmName     string    `json:"rhythmName" db:"rhythm_name"`
	ImageURL       string    `json:"imageUrl" db:"image_url"`
	VideoURL       *string   `json:"videoUrl,omitempty" db:"video_url"`
	MonthActive    int       `json:"monthActive" db:"month_active"`
	DisplayOrder   int       `json:"displayOrder" db:"display_order"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
}

// RenewalVisual defines the model for the 'renewal_visuals' table.
// Exactly one of Season / Month / DayOfWeek is meaningful, discriminated
// by VisualType (seasonal | monthly | daily).
type RenewalVisual struct {
	ID          int64     `json:"id" db:"id"`
	VisualType  string    `json:"visualType" db:"visual_type"`
	Season      *string   `json:"season,omitempty" db:"season"`
	Month       *int      `json:"month,omitempty" db:"month"`
	DayOfWeek   *int      `json:"dayOfWeek,omitempty" db:"day_of_week"`
	ImageURL    string    `json:"imageUrl" db:"image_url"`
	Description *string   `json:"description,omitempty" db:"description"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}
