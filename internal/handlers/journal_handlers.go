package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/halcyon-app/halcyon-api/internal/dates"
	"github.com/halcyon-app/halcyon-api/internal/models"
	"go.uber.org/zap"
)

//
// --- Journal Handlers ---
//

// ListJournalEntries is the handler for GET /api/journal
// Optional filter: ?date=YYYY-MM-DD. Unfiltered results come back newest-first.
func (h *Handlers) ListJournalEntries(c *gin.Context) {
	query := `
		SELECT id, entry_date, title, content, mood, created_at
		FROM journal_entries`
	args := []interface{}{}

	if date := c.Query("date"); date != "" {
		query += " WHERE entry_date = ?"
		args = append(args, date)
	}
	query += " ORDER BY created_at DESC"

	rows, err := h.DB.Query(query, args...)
	if err != nil {
		h.Log.Error("journal list query failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database query failed"})
		return
	}
	defer rows.Close()

	var entries []*models.JournalEntry
	for rows.Next() {
		var entry models.JournalEntry
		if err := rows.Scan(
			&entry.ID,
			&entry.EntryDate,
			&entry.Title,
			&entry.Content,
			&entry.Mood,
			&entry.CreatedAt,
		); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to scan journal row"})
			return
		}
		entries = append(entries, &entry)
	}
	if err = rows.Err(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error iterating journal rows"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"entries": entries})
}

// CreateJournalEntryInput defines the JSON input for a journal entry
type CreateJournalEntryInput struct {
	Date    string  `json:"date" binding:"required"`
	Title   string  `json:"title" binding:"required"`
	Content string  `json:"content" binding:"required"`
	Mood    *string `json:"mood"`
}

// CreateJournalEntry is the handler for POST /api/journal
func (h *Handlers) CreateJournalEntry(c *gin.Context) {
	var input CreateJournalEntryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if _, err := dates.ParseDay(input.Date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	entry := &models.JournalEntry{
		EntryDate: input.Date,
		Title:     input.Title,
		Content:   input.Content,
		Mood:      input.Mood,
		CreatedAt: time.Now(),
	}

	query := `
		INSERT INTO journal_entries
		(entry_date, title, content, mood, created_at)
		VALUES (?, ?, ?, ?, ?)`

	result, err := h.DB.Exec(query, entry.EntryDate, entry.Title, entry.Content, entry.Mood, entry.CreatedAt)
	if err != nil {
		h.Log.Error("journal insert failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create journal entry"})
		return
	}

	id, err := result.LastInsertId()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get new entry ID"})
		return
	}
	entry.ID = id

	c.JSON(http.StatusCreated, gin.H{"entry": entry})
}

// DeleteJournalEntry is the handler for DELETE /api/journal/:id
func (h *Handlers) DeleteJournalEntry(c *gin.Context) {
	result, err := h.DB.Exec("DELETE FROM journal_entries WHERE id = ?", c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete journal entry"})
		return
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check affected rows"})
		return
	}
	if rowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Journal entry not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Journal entry deleted"})
}
