package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var themeCols = []string{"id", "name", "primary_color", "secondary_color", "accent_color",
	"background_color", "surface_color", "text_color", "muted_color", "is_active", "created_at", "updated_at"}

func TestGetActiveTheme(t *testing.T) {
	h, mock := newTestHandlers(t)

	mock.ExpectQuery("WHERE is_active = 1").
		WillReturnRows(sqlmock.NewRows(themeCols).
			AddRow(1, "Dawn", "#FFB347", "#FFD1DC", "#FF6961", "#FFF8F0", "#FFFFFF", "#333333", "#999999", true, time.Now(), time.Now()))

	router := gin.New()
	router.GET("/api/themes/active", h.GetActiveTheme)

	w := performRequest(router, http.MethodGet, "/api/themes/active", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"name":"Dawn"`)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetActiveThemeNoneSet(t *testing.T) {
	h, mock := newTestHandlers(t)

	mock.ExpectQuery("WHERE is_active = 1").
		WillReturnRows(sqlmock.NewRows(themeCols))

	router := gin.New()
	router.GET("/api/themes/active", h.GetActiveTheme)

	w := performRequest(router, http.MethodGet, "/api/themes/active", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateThemeAppliesOnlyProvidedFields(t *testing.T) {
	h, mock := newTestHandlers(t)

	mock.ExpectQuery("SELECT id FROM visual_themes").
		WithArgs("1").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectExec("UPDATE visual_themes SET primary_color = \\?, updated_at = \\?").
		WithArgs("#123456", sqlmock.AnyArg(), "1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	router := gin.New()
	router.PATCH("/api/themes/:id", h.UpdateTheme)

	w := performRequest(router, http.MethodPatch, "/api/themes/1", jsonBody(`{"primaryColor": "#123456"}`))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateThemeEmptyBody(t *testing.T) {
	h, _ := newTestHandlers(t)

	router := gin.New()
	router.PATCH("/api/themes/:id", h.UpdateTheme)

	w := performRequest(router, http.MethodPatch, "/api/themes/1", jsonBody(`{}`))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateThemeNotFound(t *testing.T) {
	h, mock := newTestHandlers(t)

	mock.ExpectQuery("SELECT id FROM visual_themes").
		WithArgs("99").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	router := gin.New()
	router.PATCH("/api/themes/:id", h.UpdateTheme)

	w := performRequest(router, http.MethodPatch, "/api/themes/99", jsonBody(`{"name": "Dusk"}`))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestActivateThemeDeactivatesOthersInSameTransaction(t *testing.T) {
	h, mock := newTestHandlers(t)

	mock.ExpectBegin()
	mock.ExpectExec("SET is_active = 0").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("SET is_active = 1").
		WithArgs(sqlmock.AnyArg(), "3").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	router := gin.New()
	router.POST("/api/themes/:id/activate", h.ActivateTheme)

	w := performRequest(router, http.MethodPost, "/api/themes/3/activate", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestActivateThemeNotFound(t *testing.T) {
	h, mock := newTestHandlers(t)

	mock.ExpectBegin()
	mock.ExpectExec("SET is_active = 0").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("SET is_active = 1").
		WithArgs(sqlmock.AnyArg(), "99").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	router := gin.New()
	router.POST("/api/themes/:id/activate", h.ActivateTheme)

	w := performRequest(router, http.MethodPost, "/api/themes/99/activate", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}
