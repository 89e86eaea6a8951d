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

func TestListJournalEntriesByDate(t *testing.T) {
	h, mock := newTestHandlers(t)

	cols := []string{"id", "entry_date", "title", "content", "mood", "created_at"}
	mock.ExpectQuery("FROM journal_entries").
		WithArgs("2026-08-27").
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(1, "2026-08-27", "Slow morning", "Long walk before work.", "calm", time.Now()))

	router := gin.New()
	router.GET("/api/journal", h.ListJournalEntries)

	w := performRequest(router, http.MethodGet, "/api/journal?date=2026-08-27", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"title":"Slow morning"`)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateJournalEntry(t *testing.T) {
	h, mock := newTestHandlers(t)

	mock.ExpectExec("INSERT INTO journal_entries").
		WithArgs("2026-08-27", "Slow morning", "Long walk before work.", nil, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(2, 1))

	router := gin.New()
	router.POST("/api/journal", h.CreateJournalEntry)

	body := `{"date": "2026-08-27", "title": "Slow morning", "content": "Long walk before work."}`
	w := performRequest(router, http.MethodPost, "/api/journal", jsonBody(body))
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"id":2`)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteJournalEntryNotFound(t *testing.T) {
	h, mock := newTestHandlers(t)

	mock.ExpectExec("DELETE FROM journal_entries").
		WithArgs("99").
		WillReturnResult(sqlmock.NewResult(0, 0))

	router := gin.New()
	router.DELETE("/api/journal/:id", h.DeleteJournalEntry)

	w := performRequest(router, http.MethodDelete, "/api/journal/99", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}
