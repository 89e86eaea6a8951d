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

func TestSummarizeActivities(t *testing.T) {
	// Oldest-first, as the summary query orders them. The second steps
	// entry was created later, so it wins.
	activities := []*models.Activity{
		{ActivityType: "steps", Value: 4000},
		{ActivityType: "sleep", Value: 7.5},
		{ActivityType: "steps", Value: 9000},
		{ActivityType: "mood_check", Value: 4},
	}

	summary := summarizeActivities("2026-08-27", activities)

	assert.Equal(t, "2026-08-27", summary.Date)
	assert.Equal(t, 9000.0, summary.Steps)
	assert.Equal(t, 7.5, summary.SleepHours)
	assert.Equal(t, 0.0, summary.WaterCups)
	require.NotNil(t, summary.Mood)
	assert.Equal(t, 4.0, *summary.Mood)
}

func TestGetActivitySummary(t *testing.T) {
	h, mock := newTestHandlers(t)

	cols := []string{"id", "activity_date", "activity_type", "value", "notes", "created_at"}
	rows := sqlmock.NewRows(cols).
		AddRow(1, "2026-08-27", "water", 3.0, nil, time.Now()).
		AddRow(2, "2026-08-27", "water", 5.0, nil, time.Now())
	mock.ExpectQuery("SELECT (.+) FROM activities").
		WithArgs("2026-08-27").
		WillReturnRows(rows)

	router := gin.New()
	router.GET("/api/activities/summary", h.GetActivitySummary)

	w := performRequest(router, http.MethodGet, "/api/activities/summary?date=2026-08-27", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Summary struct {
			WaterCups float64  `json:"waterCups"`
			Mood      *float64 `json:"mood"`
		} `json:"summary"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 5.0, resp.Summary.WaterCups)
	assert.Nil(t, resp.Summary.Mood)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetActivitySummaryRejectsBadDate(t *testing.T) {
	h, _ := newTestHandlers(t)

	router := gin.New()
	router.GET("/api/activities/summary", h.GetActivitySummary)

	w := performRequest(router, http.MethodGet, "/api/activities/summary?date=yesterday", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListActivitiesWithFilters(t *testing.T) {
	h, mock := newTestHandlers(t)

	cols := []string{"id", "activity_date", "activity_type", "value", "notes", "created_at"}
	mock.ExpectQuery("SELECT (.+) FROM activities").
		WithArgs("2026-08-27", "steps").
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(1, "2026-08-27", "steps", 8000.0, nil, time.Now()))

	router := gin.New()
	router.GET("/api/activities", h.ListActivities)

	w := performRequest(router, http.MethodGet, "/api/activities?date=2026-08-27&type=steps", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"activityType":"steps"`)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateActivity(t *testing.T) {
	h, mock := newTestHandlers(t)

	mock.ExpectExec("INSERT INTO activities").
		WithArgs("2026-08-27", "steps", 8000.0, nil, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(12, 1))

	router := gin.New()
	router.POST("/api/activities", h.CreateActivity)

	body := `{"date": "2026-08-27", "activityType": "steps", "value": 8000}`
	w := performRequest(router, http.MethodPost, "/api/activities", jsonBody(body))
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"id":12`)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteActivityNotFound(t *testing.T) {
	h, mock := newTestHandlers(t)

	mock.ExpectExec("DELETE FROM activities").
		WithArgs("5").
		WillReturnResult(sqlmock.NewResult(0, 0))

	router := gin.New()
	router.DELETE("/api/activities/:id", h.DeleteActivity)

	w := performRequest(router, http.MethodDelete, "/api/activities/5", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}
