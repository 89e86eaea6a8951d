package models

import "time"

// JournalEntry defines the model for the 'journal_entries' table
type JournalEntry struct {
	ID        int64     `json:"id" db:"id"`
	EntryDate string    `json:"date" db:"entry_date"`
	Title     string    `json:"title" db:"title"`
	Content   string    `json:"content" db:"content"`
	Mood      *string   `json:"mood,omitempty" db:"mood"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
