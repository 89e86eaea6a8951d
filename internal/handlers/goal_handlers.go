package handlers

import (
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/halcyon-app/halcyon-api/internal/models"
	"go.uber.org/zap"
)

//
// --- Goal Handlers ---
//

// ListGoals is the handler for GET /api/goals
// Optional filter: ?category=. Unfiltered results come back newest-first.
func (h *Handlers) ListGoals(c *gin.Context) {
	query := `
		SELECT id, title, category, target_value, current_value, unit, target_date, is_completed, created_at, updated_at
		FROM goals`
	args := []interface{}{}

	if category := c.Query("category"); category != "" {
		query += " WHERE category = ?"
		args = append(args, category)
	}
	query += " ORDER BY created_at DESC"

	rows, err := h.DB.Query(query, args...)
	if err != nil {
		h.Log.Error("goal list query failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database query failed"})
		return
	}
	defer rows.Close()

	var goals []*models.Goal
	for rows.Next() {
		var goal models.Goal
		if err := rows.Scan(
			&goal.ID,
			&goal.Title,
			&goal.Category,
			&goal.TargetValue,
			&goal.CurrentValue,
			&goal.Unit,
			&goal.TargetDate,
			&goal.IsCompleted,
			&goal.CreatedAt,
			&goal.UpdatedAt,
		); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to scan goal row"})
			return
		}
		goals = append(goals, &goal)
	}
	if err = rows.Err(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error iterating goal rows"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"goals": goals})
}

// CreateGoalInput defines the JSON input for creating a goal
type CreateGoalInput struct {
	Title       string   `json:"title" binding:"required"`
	Category    string   `json:"category" binding:"required"`
	TargetValue *float64 `json:"targetValue" binding:"required"`
	Unit        *string  `json:"unit"`
	TargetDate  *string  `json:"targetDate"`
}

// CreateGoal is the handler for POST /api/goals
func (h *Handlers) CreateGoal(c *gin.Context) {
	var input CreateGoalInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	now := time.Now()
	goal := &models.Goal{
		Title:       input.Title,
		Category:    input.Category,
		TargetValue: *input.TargetValue,
		Unit:        input.Unit,
		TargetDate:  input.TargetDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	query := `
		INSERT INTO goals
		(title, category, target_value, current_value, unit, target_date, is_completed, created_at, updated_at)
		VALUES (?, ?, ?, 0, ?, ?, 0, ?, ?)`

	result, err := h.DB.Exec(query,
		goal.Title, goal.Category, goal.TargetValue, goal.Unit, goal.TargetDate,
		goal.CreatedAt, goal.UpdatedAt)
	if err != nil {
		h.Log.Error("goal insert failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create goal"})
		return
	}

	id, err := result.LastInsertId()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get new goal ID"})
		return
	}
	goal.ID = id

	c.JSON(http.StatusCreated, gin.H{"goal": goal})
}

// UpdateGoalProgressInput defines the JSON input for a progress update
type UpdateGoalProgressInput struct {
	CurrentValue *float64 `json:"currentValue" binding:"required"`
}

// UpdateGoalProgress is the handler for PATCH /api/goals/:id/progress
// Reaching the target marks the goal completed in the same statement.
func (h *Handlers) UpdateGoalProgress(c *gin.Context) {
	var input UpdateGoalProgressInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	goalID := c.Param("id")

	var goal models.Goal
	err := h.DB.QueryRow(
		"SELECT id, target_value FROM goals WHERE id = ?", goalID).
		Scan(&goal.ID, &goal.TargetValue)
	if errors.Is(err, sql.ErrNoRows) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Goal not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database query failed"})
		return
	}

	completed := *input.CurrentValue >= goal.TargetValue
	_, err = h.DB.Exec(
		"UPDATE goals SET current_value = ?, is_completed = ?, updated_at = ? WHERE id = ?",
		*input.CurrentValue, completed, time.Now(), goalID)
	if err != nil {
		h.Log.Error("goal progress update failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update goal"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "Goal progress updated",
		"isCompleted": completed,
	})
}

// DeleteGoal is the handler for DELETE /api/goals/:id
func (h *Handlers) DeleteGoal(c *gin.Context) {
	result, err := h.DB.Exec("DELETE FROM goals WHERE id = ?", c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete goal"})
		return
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check affected rows"})
		return
	}
	if rowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Goal not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Goal deleted"})
}
