package handlers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/halcyon-app/halcyon-api/internal/models"
)

func floatPtr(f float64) *float64 { return &f }

func TestSummarizeNutrition(t *testing.T) {
	logs := []*models.NutritionLog{
		{Calories: 500, Protein: floatPtr(20)},
		{Calories: 300, Protein: floatPtr(10)},
	}

	summary := summarizeNutrition("2026-08-27", logs)

	assert.Equal(t, "2026-08-27", summary.Date)
	assert.Equal(t, 800.0, summary.TotalCalories)
	assert.Equal(t, 30.0, summary.TotalProtein)
	assert.Equal(t, 0.0, summary.TotalCarbs)
	assert.Equal(t, 0.0, summary.TotalFats)
	assert.Len(t, summary.Logs, 2)
}

func TestSummarizeNutritionEmptyDay(t *testing.T) {
	summary := summarizeNutrition("2026-08-27", nil)

	assert.Equal(t, 0.0, summary.TotalCalories)
	assert.NotNil(t, summary.Logs)
	assert.Len(t, summary.Logs, 0)
}

func TestGetNutritionSummary(t *testing.T) {
	h, mock := newTestHandlers(t)

	cols := []string{"id", "log_date", "meal_type", "food_name", "calories", "protein", "carbs", "fats", "notes", "created_at"}
	rows := sqlmock.NewRows(cols).
		AddRow(1, "2026-08-27", "breakfast", "Oatmeal", 500.0, 20.0, nil, nil, nil, time.Now()).
		AddRow(2, "2026-08-27", "lunch", "Salad", 300.0, 10.0, nil, nil, nil, time.Now())
	mock.ExpectQuery("SELECT (.+) FROM nutrition_logs").
		WithArgs("2026-08-27").
		WillReturnRows(rows)

	router := gin.New()
	router.GET("/api/nutrition/summary", h.GetNutritionSummary)

	w := performRequest(router, http.MethodGet, "/api/nutrition/summary?date=2026-08-27", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Summary struct {
			Date          string  `json:"date"`
			TotalCalories float64 `json:"totalCalories"`
			TotalProtein  float64 `json:"totalProtein"`
		} `json:"summary"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "2026-08-27", resp.Summary.Date)
	assert.Equal(t, 800.0, resp.Summary.TotalCalories)
	assert.Equal(t, 30.0, resp.Summary.TotalProtein)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetNutritionSummaryDefaultsToToday(t *testing.T) {
	h, mock := newTestHandlers(t)

	cols := []string{"id", "log_date", "meal_type", "food_name", "calories", "protein", "carbs", "fats", "notes", "created_at"}
	mock.ExpectQuery("SELECT (.+) FROM nutrition_logs").
		WithArgs("2026-08-27").
		WillReturnRows(sqlmock.NewRows(cols))

	router := gin.New()
	router.GET("/api/nutrition/summary", h.GetNutritionSummary)

	w := performRequest(router, http.MethodGet, "/api/nutrition/summary", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateNutritionLog(t *testing.T) {
	h, mock := newTestHandlers(t)

	mock.ExpectExec("INSERT INTO nutrition_logs").
		WillReturnResult(sqlmock.NewResult(3, 1))

	router := gin.New()
	router.POST("/api/nutrition", h.CreateNutritionLog)

	body := `{"date": "2026-08-27", "mealType": "dinner", "foodName": "Pasta", "calories": 650}`
	w := performRequest(router, http.MethodPost, "/api/nutrition", jsonBody(body))
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"foodName":"Pasta"`)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteNutritionLogNotFound(t *testing.T) {
	h, mock := newTestHandlers(t)

	mock.ExpectExec("DELETE FROM nutrition_logs").
		WithArgs("42").
		WillReturnResult(sqlmock.NewResult(0, 0))

	router := gin.New()
	router.DELETE("/api/nutrition/:id", h.DeleteNutritionLog)

	w := performRequest(router, http.MethodDelete, "/api/nutrition/42", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}
