package handlers

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// testNow is a Thursday; the Monday of its week is 2026-08-24.
var testNow = time.Date(2026, time.August, 27, 10, 30, 0, 0, time.UTC)

func newTestHandlers(t *testing.T) (*Handlers, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	h := &Handlers{
		DB:  db,
		Log: zap.NewNop(),
		Now: func() time.Time { return testNow },
	}
	return h, mock
}

// stubGenerator is a canned Generator implementation. Calls counts how
// often the model was (not) contacted.
type stubGenerator struct {
	Text  string
	Err   error
	Calls int
}

func (s *stubGenerator) Generate(_ context.Context, _, _ string) (string, error) {
	s.Calls++
	return s.Text, s.Err
}

func performRequest(router *gin.Engine, method, path string, body io.Reader) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func jsonBody(s string) io.Reader {
	return strings.NewReader(s)
}

// fakeAuth stands in for the JWT middleware on protected routes.
func fakeAuth(userID int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("userID", userID)
		c.Next()
	}
}
