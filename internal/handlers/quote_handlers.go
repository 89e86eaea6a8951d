package handlers

import (
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/halcyon-app/halcyon-api/internal/ai"
	"github.com/halcyon-app/halcyon-api/internal/dates"
	"github.com/halcyon-app/halcyon-api/internal/models"
	"go.uber.org/zap"
)

//
// --- Weekly Quote Handlers ---
//
// Quotes are keyed by the Monday of the current week and the table has a
// UNIQUE KEY on that column, so "one quote per week" holds under
// concurrent requests without a delete-then-insert window.
//

// GetCurrentQuote is the handler for GET /api/quotes/current
// Returns this week's quote, generating and storing one if absent.
func (h *Handlers) GetCurrentQuote(c *gin.Context) {
	weekStart := dates.Day(dates.WeekStart(h.now()))

	quote, found, err := h.lookupQuote(weekStart)
	if err != nil {
		h.Log.Error("quote lookup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database query failed"})
		return
	}
	if found {
		c.JSON(http.StatusOK, gin.H{"quote": quote})
		return
	}

	text, err := h.AI.Generate(c.Request.Context(), ai.QuotePrompt, "Write this week's quote.")
	if err != nil {
		h.Log.Error("quote generation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Quote generation failed"})
		return
	}

	// If a concurrent request won the insert race, LAST_INSERT_ID(id)
	// hands back the winner's row id and our text is discarded.
	result, err := h.DB.Exec(`
		INSERT INTO weekly_quotes (week_start_date, quote_text, created_at)
		VALUES (?, ?, ?)
		ON DUPLICATE KEY UPDATE id = LAST_INSERT_ID(id)`,
		weekStart, text, time.Now())
	if err != nil {
		h.Log.Error("quote insert failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store quote"})
		return
	}
	id, err := result.LastInsertId()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get quote ID"})
		return
	}

	var stored models.WeeklyQuote
	err = h.DB.QueryRow(`
		SELECT id, week_start_date, quote_text, created_at
		FROM weekly_quotes
		WHERE id = ?`, id).Scan(&stored.ID, &stored.WeekStartDate, &stored.QuoteText, &stored.CreatedAt)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database query failed"})
		return
	}

	h.Log.Info("weekly quote generated", zap.String("weekStart", weekStart))
	c.JSON(http.StatusOK, gin.H{"quote": stored})
}

// RegenerateQuote is the handler for POST /api/quotes/regenerate
// Unconditionally replaces this week's quote. Destructive: the previous
// text is gone once the upsert lands.
func (h *Handlers) RegenerateQuote(c *gin.Context) {
	weekStart := dates.Day(dates.WeekStart(h.now()))

	text, err := h.AI.Generate(c.Request.Context(), ai.QuotePrompt, "Write this week's quote.")
	if err != nil {
		h.Log.Error("quote generation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Quote generation failed"})
		return
	}

	_, err = h.DB.Exec(`
		INSERT INTO weekly_quotes (week_start_date, quote_text, created_at)
		VALUES (?, ?, ?)
		ON DUPLICATE KEY UPDATE quote_text = VALUES(quote_text), created_at = VALUES(created_at)`,
		weekStart, text, time.Now())
	if err != nil {
		h.Log.Error("quote upsert failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store quote"})
		return
	}

	quote, found, err := h.lookupQuote(weekStart)
	if err != nil || !found {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database query failed"})
		return
	}

	h.Log.Info("weekly quote regenerated", zap.String("weekStart", weekStart))
	c.JSON(http.StatusOK, gin.H{"quote": quote})
}

func (h *Handlers) lookupQuote(weekStart string) (*models.WeeklyQuote, bool, error) {
	var quote models.WeeklyQuote
	err := h.DB.QueryRow(`
		SELECT id, week_start_date, quote_text, created_at
		FROM weekly_quotes
		WHERE week_start_date = ?`, weekStart).
		Scan(&quote.ID, &quote.WeekStartDate, &quote.QuoteText, &quote.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return &quote, true, nil
}
