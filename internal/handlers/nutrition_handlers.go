package handlers

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/halcyon-app/halcyon-api/internal/dates"
	"github.com/halcyon-app/halcyon-api/internal/models"
	"go.uber.org/zap"
)

//
// --- Nutrition Handlers ---
//

// ListNutritionLogs is the handler for GET /api/nutrition
// Optional filter: ?date=YYYY-MM-DD. Unfiltered results come back newest-first.
func (h *Handlers) ListNutritionLogs(c *gin.Context) {
	query := `
		SELECT id, log_date, meal_type, food_name, calories, protein, carbs, fats, notes, created_at
		FROM nutrition_logs`
	args := []interface{}{}

	if date := c.Query("date"); date != "" {
		query += " WHERE log_date = ?"
		args = append(args, date)
	}
	query += " ORDER BY created_at DESC"

	rows, err := h.DB.Query(query, args...)
	if err != nil {
		h.Log.Error("nutrition list query failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database query failed"})
		return
	}
	defer rows.Close()

	logs, err := scanNutritionLogs(rows)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to scan nutrition rows"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"logs": logs})
}

// CreateNutritionLogInput defines the JSON input for logging a meal
type CreateNutritionLogInput struct {
	Date     string   `json:"date" binding:"required"`
	MealType string   `json:"mealType" binding:"required"`
	FoodName string   `json:"foodName" binding:"required"`
	Calories *float64 `json:"calories" binding:"required"`
	Protein  *float64 `json:"protein"`
	Carbs    *float64 `json:"carbs"`
	Fats     *float64 `json:"fats"`
	Notes    *string  `json:"notes"`
}

// CreateNutritionLog is the handler for POST /api/nutrition
func (h *Handlers) CreateNutritionLog(c *gin.Context) {
	var input CreateNutritionLogInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if _, err := dates.ParseDay(input.Date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	log := &models.NutritionLog{
		LogDate:   input.Date,
		MealType:  input.MealType,
		FoodName:  input.FoodName,
		Calories:  *input.Calories,
		Protein:   input.Protein,
		Carbs:     input.Carbs,
		Fats:      input.Fats,
		Notes:     input.Notes,
		CreatedAt: time.Now(),
	}

	query := `
		INSERT INTO nutrition_logs
		(log_date, meal_type, food_name, calories, protein, carbs, fats, notes, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	result, err := h.DB.Exec(query,
		log.LogDate, log.MealType, log.FoodName, log.Calories,
		log.Protein, log.Carbs, log.Fats, log.Notes, log.CreatedAt)
	if err != nil {
		h.Log.Error("nutrition insert failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create nutrition log"})
		return
	}

	id, err := result.LastInsertId()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get new log ID"})
		return
	}
	log.ID = id

	c.JSON(http.StatusCreated, gin.H{"log": log})
}

// DeleteNutritionLog is the handler for DELETE /api/nutrition/:id
func (h *Handlers) DeleteNutritionLog(c *gin.Context) {
	result, err := h.DB.Exec("DELETE FROM nutrition_logs WHERE id = ?", c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete nutrition log"})
		return
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check affected rows"})
		return
	}
	if rowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Nutrition log not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Nutrition log deleted"})
}

// GetNutritionSummary is the handler for GET /api/nutrition/summary
// It sums calories and macros across one day's logs and returns the
// constituent rows alongside the totals.
func (h *Handlers) GetNutritionSummary(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		date = dates.Day(h.now())
	} else if _, err := dates.ParseDay(date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	query := `
		SELECT id, log_date, meal_type, food_name, calories, protein, carbs, fats, notes, created_at
		FROM nutrition_logs
		WHERE log_date = ?
		ORDER BY created_at ASC, id ASC`

	rows, err := h.DB.Query(query, date)
	if err != nil {
		h.Log.Error("nutrition summary query failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database query failed"})
		return
	}
	defer rows.Close()

	logs, err := scanNutritionLogs(rows)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to scan nutrition rows"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"summary": summarizeNutrition(date, logs)})
}

// summarizeNutrition folds one day's logs into totals. Missing macros
// count as zero.
func summarizeNutrition(date string, logs []*models.NutritionLog) models.NutritionSummary {
	summary := models.NutritionSummary{Date: date, Logs: logs}
	if summary.Logs == nil {
		summary.Logs = []*models.NutritionLog{}
	}
	for _, log := range logs {
		summary.TotalCalories += log.Calories
		if log.Protein != nil {
			summary.TotalProtein += *log.Protein
		}
		if log.Carbs != nil {
			summary.TotalCarbs += *log.Carbs
		}
		if log.Fats != nil {
			summary.TotalFats += *log.Fats
		}
	}
	return summary
}

func scanNutritionLogs(rows *sql.Rows) ([]*models.NutritionLog, error) {
	var logs []*models.NutritionLog
	for rows.Next() {
		var log models.NutritionLog
		if err := rows.Scan(
			&log.ID,
			&log.LogDate,
			&log.MealType,
			&log.FoodName,
			&log.Calories,
			&log.Protein,
			&log.Carbs,
			&log.Fats,
			&log.Notes,
			&log.CreatedAt,
		); err != nil {
			return nil, err
		}
		logs = append(logs, &log)
	}
	return logs, rows.Err()
}
