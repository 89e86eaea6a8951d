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

var quoteCols = []string{"id", "week_start_date", "quote_text", "created_at"}

// testNow's Monday is 2026-08-24.
const testWeekStart = "2026-08-24"

func TestGetCurrentQuoteReturnsExistingWithoutGenerating(t *testing.T) {
	h, mock := newTestHandlers(t)
	stub := &stubGenerator{Text: "should never be used"}
	h.AI = stub

	mock.ExpectQuery("FROM weekly_quotes").
		WithArgs(testWeekStart).
		WillReturnRows(sqlmock.NewRows(quoteCols).
			AddRow(1, testWeekStart, "Rest is productive.", time.Now()))

	router := gin.New()
	router.GET("/api/quotes/current", h.GetCurrentQuote)

	w := performRequest(router, http.MethodGet, "/api/quotes/current", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Rest is productive.")
	assert.Equal(t, 0, stub.Calls)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetCurrentQuoteGeneratesWhenMissing(t *testing.T) {
	h, mock := newTestHandlers(t)
	stub := &stubGenerator{Text: "Small steps still move you forward."}
	h.AI = stub

	mock.ExpectQuery("FROM weekly_quotes").
		WithArgs(testWeekStart).
		WillReturnRows(sqlmock.NewRows(quoteCols))
	mock.ExpectExec("INSERT INTO weekly_quotes").
		WithArgs(testWeekStart, stub.Text, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(5, 1))
	mock.ExpectQuery("FROM weekly_quotes").
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows(quoteCols).
			AddRow(5, testWeekStart, stub.Text, time.Now()))

	router := gin.New()
	router.GET("/api/quotes/current", h.GetCurrentQuote)

	w := performRequest(router, http.MethodGet, "/api/quotes/current", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), stub.Text)
	assert.Equal(t, 1, stub.Calls)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegenerateQuoteReplacesCurrentWeek(t *testing.T) {
	h, mock := newTestHandlers(t)
	stub := &stubGenerator{Text: "Begin again, gently."}
	h.AI = stub

	mock.ExpectExec("INSERT INTO weekly_quotes").
		WithArgs(testWeekStart, stub.Text, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 2))
	mock.ExpectQuery("FROM weekly_quotes").
		WithArgs(testWeekStart).
		WillReturnRows(sqlmock.NewRows(quoteCols).
			AddRow(1, testWeekStart, stub.Text, time.Now()))

	router := gin.New()
	router.POST("/api/quotes/regenerate", h.RegenerateQuote)

	w := performRequest(router, http.MethodPost, "/api/quotes/regenerate", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), stub.Text)
	assert.Equal(t, 1, stub.Calls)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetCurrentQuoteGeneratorFailure(t *testing.T) {
	h, mock := newTestHandlers(t)
	h.AI = &stubGenerator{Err: assert.AnError}

	mock.ExpectQuery("FROM weekly_quotes").
		WithArgs(testWeekStart).
		WillReturnRows(sqlmock.NewRows(quoteCols))

	router := gin.New()
	router.GET("/api/quotes/current", h.GetCurrentQuote)

	w := performRequest(router, http.MethodGet, "/api/quotes/current", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}
