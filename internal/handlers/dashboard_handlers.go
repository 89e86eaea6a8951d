package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/halcyon-app/halcyon-api/internal/dates"
	"go.uber.org/zap"
)

// GetDailyOverview is the handler for GET /api/dashboard/today
// One object summarizing today across the four tracking domains.
func (h *Handlers) GetDailyOverview(c *gin.Context) {
	today := dates.Day(h.now())

	var activityCount int
	var calories float64
	var workoutMinutes, meditationMinutes int

	queries := []struct {
		query string
		dest  interface{}
	}{
		{"SELECT COUNT(*) FROM activities WHERE activity_date = ?", &activityCount},
		{"SELECT COALESCE(SUM(calories), 0) FROM nutrition_logs WHERE log_date = ?", &calories},
		{"SELECT COALESCE(SUM(duration_minutes), 0) FROM workouts WHERE workout_date = ?", &workoutMinutes},
		{"SELECT COALESCE(SUM(duration_minutes), 0) FROM meditation_sessions WHERE session_date = ?", &meditationMinutes},
	}
	for _, q := range queries {
		if err := h.DB.QueryRow(q.query, today).Scan(q.dest); err != nil {
			h.Log.Error("daily overview query failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database query failed"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"date":              today,
		"activityCount":     activityCount,
		"totalCalories":     calories,
		"workoutMinutes":    workoutMinutes,
		"meditationMinutes": meditationMinutes,
	})
}
