package models

import "time"

// VisualTheme defines the model for the 'visual_themes' table
type VisualTheme struct {
	ID              int64     `json:"id" db:"id"`
	Name            string    `json:"name" db:"name"`
	PrimaryColor    string    `json:"primaryColor" db:"primary_color"`
	SecondaryColor  string    `json:"secondaryColor" db:"secondary_color"`
	AccentColor     string    `json:"accentColor" db:"accent_color"`
	BackgroundColor string    `json:"backgroundColor" db:"background_color"`
	SurfaceColor    string    `json:"surfaceColor" db:"surface_color"`
	TextColor       string    `json:"textColor" db:"text_color"`
	MutedColor      string    `json:"mutedColor" db:"muted_color"`
	IsActive        bool      `json:"isActive" db:"is_active"`
	CreatedAt       time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time `json:"updatedAt" db:"updated_at"`
}
