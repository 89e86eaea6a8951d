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
// --- Meditation Handlers ---
//

// ListMeditationSessions is the handler for GET /api/meditation
// Optional filter: ?date=YYYY-MM-DD. Unfiltered results come back newest-first.
func (h *Handlers) ListMeditationSessions(c *gin.Context) {
	query := `
		SELECT id, session_date, practice_type, duration_minutes, mood_before, mood_after, notes, created_at
		FROM meditation_sessions`
	args := []interface{}{}

	if date := c.Query("date"); date != "" {
		query += " WHERE session_date = ?"
		args = append(args, date)
	}
	query += " ORDER BY created_at DESC"

	rows, err := h.DB.Query(query, args...)
	if err != nil {
		h.Log.Error("meditation list query failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database query failed"})
		return
	}
	defer rows.Close()

	var sessions []*models.MeditationSession
	for rows.Next() {
		var session models.MeditationSession
		if err := rows.Scan(
			&session.ID,
			&session.SessionDate,
			&session.PracticeType,
			&session.DurationMinutes,
			&session.MoodBefore,
			&session.MoodAfter,
			&session.Notes,
			&session.CreatedAt,
		); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to scan session row"})
			return
		}
		sessions = append(sessions, &session)
	}
	if err = rows.Err(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error iterating session rows"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"sessions": sessions})
}

// CreateMeditationSessionInput defines the JSON input for logging a session
type CreateMeditationSessionInput struct {
	Date            string  `json:"date" binding:"required"`
	PracticeType    string  `json:"practiceType" binding:"required"`
	DurationMinutes *int    `json:"durationMinutes" binding:"required"`
	MoodBefore      *string `json:"moodBefore"`
	MoodAfter       *string `json:"moodAfter"`
	Notes           *string `json:"notes"`
}

// CreateMeditationSession is the handler for POST /api/meditation
func (h *Handlers) CreateMeditationSession(c *gin.Context) {
	var input CreateMeditationSessionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if _, err := dates.ParseDay(input.Date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	session := &models.MeditationSession{
		SessionDate:     input.Date,
		PracticeType:    input.PracticeType,
		DurationMinutes: *input.DurationMinutes,
		MoodBefore:      input.MoodBefore,
		MoodAfter:       input.MoodAfter,
		Notes:           input.Notes,
		CreatedAt:       time.Now(),
	}

	query := `
		INSERT INTO meditation_sessions
		(session_date, practice_type, duration_minutes, mood_before, mood_after, notes, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`

	result, err := h.DB.Exec(query,
		session.SessionDate, session.PracticeType, session.DurationMinutes,
		session.MoodBefore, session.MoodAfter, session.Notes, session.CreatedAt)
	if err != nil {
		h.Log.Error("meditation insert failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session"})
		return
	}

	id, err := result.LastInsertId()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get new session ID"})
		return
	}
	session.ID = id

	c.JSON(http.StatusCreated, gin.H{"session": session})
}

// DeleteMeditationSession is the handler for DELETE /api/meditation/:id
func (h *Handlers) DeleteMeditationSession(c *gin.Context) {
	result, err := h.DB.Exec("DELETE FROM meditation_sessions WHERE id = ?", c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete session"})
		return
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check affected rows"})
		return
	}
	if rowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Meditation session not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Meditation session deleted"})
}

// GetMeditationStats is the handler for GET /api/meditation/stats
// Computed over the full history: total minutes, session count, a
// per-practice histogram, and the current consecutive-day streak.
func (h *Handlers) GetMeditationStats(c *gin.Context) {
	rows, err := h.DB.Query(`
		SELECT session_date, practice_type, duration_minutes
		FROM meditation_sessions
		ORDER BY session_date DESC`)
	if err != nil {
		h.Log.Error("meditation stats query failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database query failed"})
		return
	}
	defer rows.Close()

	stats := models.MeditationStats{ByPractice: map[string]int{}}
	sessionDays := map[string]bool{}
	for rows.Next() {
		var day, practice string
		var minutes int
		if err := rows.Scan(&day, &practice, &minutes); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to scan session row"})
			return
		}
		stats.TotalMinutes += minutes
		stats.TotalSessions++
		stats.ByPractice[practice]++
		sessionDays[day] = true
	}
	if err = rows.Err(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error iterating session rows"})
		return
	}

	stats.CurrentStreak = currentStreak(sessionDays, h.now())

	c.JSON(http.StatusOK, gin.H{"stats": stats})
}

// currentStreak walks backward from today one calendar day at a time and
// counts matches until the first gap. A history of {today, today-1,
// today-3} scores 2: today-3 is unreachable past the missing today-2.
// No session today means streak zero.
func currentStreak(sessionDays map[string]bool, today time.Time) int {
	streak := 0
	expected := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
	for sessionDays[dates.Day(expected)] {
		streak++
		expected = expected.AddDate(0, 0, -1)
	}
	return streak
}
