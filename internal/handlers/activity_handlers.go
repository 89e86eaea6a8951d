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
// --- Activity Handlers ---
//

// ListActivities is the handler for GET /api/activities
// Optional filters: ?date=YYYY-MM-DD and ?type=steps|sleep|water|mood_check.
// Unfiltered results come back newest-first.
func (h *Handlers) ListActivities(c *gin.Context) {
	// 1. --- Build Query ---
	query := `
		SELECT id, activity_date, activity_type, value, notes, created_at
		FROM activities`
	args := []interface{}{}

	date := c.Query("date")
	activityType := c.Query("type")
	switch {
	case date != "" && activityType != "":
		query += " WHERE activity_date = ? AND activity_type = ?"
		args = append(args, date, activityType)
	case date != "":
		query += " WHERE activity_date = ?"
		args = append(args, date)
	case activityType != "":
		query += " WHERE activity_type = ?"
		args = append(args, activityType)
	}
	query += " ORDER BY created_at DESC"

	// 2. --- Execute Query ---
	rows, err := h.DB.Query(query, args...)
	if err != nil {
		h.Log.Error("activity list query failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database query failed"})
		return
	}
	defer rows.Close()

	// 3. --- Scan Rows into Slice ---
	var activities []*models.Activity
	for rows.Next() {
		var activity models.Activity
		if err := rows.Scan(
			&activity.ID,
			&activity.ActivityDate,
			&activity.ActivityType,
			&activity.Value,
			&activity.Notes,
			&activity.CreatedAt,
		); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to scan activity row"})
			return
		}
		activities = append(activities, &activity)
	}
	if err = rows.Err(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error iterating activity rows"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"activities": activities})
}

// CreateActivityInput defines the JSON input for logging an activity
type CreateActivityInput struct {
	Date         string   `json:"date" binding:"required"`
	ActivityType string   `json:"activityType" binding:"required"`
	Value        *float64 `json:"value" binding:"required"`
	Notes        *string  `json:"notes"`
}

// CreateActivity is the handler for POST /api/activities
func (h *Handlers) CreateActivity(c *gin.Context) {
	var input CreateActivityInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if _, err := dates.ParseDay(input.Date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	activity := &models.Activity{
		ActivityDate: input.Date,
		ActivityType: input.ActivityType,
		Value:        *input.Value,
		Notes:        input.Notes,
		CreatedAt:    time.Now(),
	}

	query := `
		INSERT INTO activities
		(activity_date, activity_type, value, notes, created_at)
		VALUES (?, ?, ?, ?, ?)`

	result, err := h.DB.Exec(query, activity.ActivityDate, activity.ActivityType, activity.Value, activity.Notes, activity.CreatedAt)
	if err != nil {
		h.Log.Error("activity insert failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create activity"})
		return
	}

	id, err := result.LastInsertId()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get new activity ID"})
		return
	}
	activity.ID = id

	c.JSON(http.StatusCreated, gin.H{"activity": activity})
}

// DeleteActivity is the handler for DELETE /api/activities/:id
func (h *Handlers) DeleteActivity(c *gin.Context) {
	result, err := h.DB.Exec("DELETE FROM activities WHERE id = ?", c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete activity"})
		return
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check affected rows"})
		return
	}
	if rowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Activity not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Activity deleted"})
}

// GetActivitySummary is the handler for GET /api/activities/summary
// It folds one day's rows into a fixed-shape object, one field per
// activity type.
func (h *Handlers) GetActivitySummary(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		date = dates.Day(h.now())
	} else if _, err := dates.ParseDay(date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	// Oldest-first so that when a type was logged twice, the most
	// recently created row deterministically wins the fold below.
	query := `
		SELECT id, activity_date, activity_type, value, notes, created_at
		FROM activities
		WHERE activity_date = ?
		ORDER BY created_at ASC, id ASC`

	rows, err := h.DB.Query(query, date)
	if err != nil {
		h.Log.Error("activity summary query failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database query failed"})
		return
	}
	defer rows.Close()

	var activities []*models.Activity
	for rows.Next() {
		var activity models.Activity
		if err := rows.Scan(
			&activity.ID,
			&activity.ActivityDate,
			&activity.ActivityType,
			&activity.Value,
			&activity.Notes,
			&activity.CreatedAt,
		); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to scan activity row"})
			return
		}
		activities = append(activities, &activity)
	}
	if err = rows.Err(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error iterating activity rows"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"summary": summarizeActivities(date, activities)})
}

// summarizeActivities maps each activity type onto its summary field.
// Input is ordered oldest-first, so later rows overwrite earlier ones.
func summarizeActivities(date string, activities []*models.Activity) models.ActivitySummary {
	summary := models.ActivitySummary{Date: date}
	for _, a := range activities {
		switch a.ActivityType {
		case "steps":
			summary.Steps = a.Value
		case "sleep":
			summary.SleepHours = a.Value
		case "water":
			summary.WaterCups = a.Value
		case "mood_check":
			v := a.Value
			summary.Mood = &v
		}
	}
	return summary
}
