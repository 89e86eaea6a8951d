package models

import "time"

// WeeklyQuote defines the model for the 'weekly_quotes' table.
// week_start_date is always a Monday; a UNIQUE KEY keeps it one row per week.
type WeeklyQuote struct {
	ID            int64     `json:"id" db:"id"`
	WeekStartDate string    `json:"weekStartDate" db:"week_start_date"`
	QuoteText     string    `json:"quoteText" db:"quote_text"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
}
