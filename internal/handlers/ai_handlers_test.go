package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func aiRouter(h *Handlers) *gin.Engine {
	router := gin.New()
	router.POST("/api/admin/content/generate", h.GenerateContent)
	router.POST("/api/admin/content/improve", h.ImproveContent)
	router.POST("/api/admin/content/features", h.GenerateFeatureList)
	return router
}

func TestGenerateContent(t *testing.T) {
	h, _ := newTestHandlers(t)
	stub := &stubGenerator{Text: "Welcome back. Take a breath."}
	h.AI = stub

	body := `{"contentType": "welcome_message", "context": "morning screen"}`
	w := performRequest(aiRouter(h), http.MethodPost, "/api/admin/content/generate", jsonBody(body))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Take a breath.")
	assert.Equal(t, 1, stub.Calls)
}

func TestGenerateContentUnknownTypeSkipsModel(t *testing.T) {
	h, _ := newTestHandlers(t)
	stub := &stubGenerator{Text: "unused"}
	h.AI = stub

	body := `{"contentType": "spam_blast"}`
	w := performRequest(aiRouter(h), http.MethodPost, "/api/admin/content/generate", jsonBody(body))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 0, stub.Calls)
}

func TestImproveContentUnknownToneSkipsModel(t *testing.T) {
	h, _ := newTestHandlers(t)
	stub := &stubGenerator{Text: "unused"}
	h.AI = stub

	body := `{"text": "hello", "tone": "aggressive"}`
	w := performRequest(aiRouter(h), http.MethodPost, "/api/admin/content/improve", jsonBody(body))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 0, stub.Calls)
}

func TestGenerateFeatureListParsesJSONArray(t *testing.T) {
	h, _ := newTestHandlers(t)
	h.AI = &stubGenerator{Text: `["Unlimited sessions", "Offline mode"]`}

	body := `{"planTier": "premium"}`
	w := performRequest(aiRouter(h), http.MethodPost, "/api/admin/content/features", jsonBody(body))
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Features []string `json:"features"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []string{"Unlimited sessions", "Offline mode"}, resp.Features)
}

func TestGenerateFeatureListFallsBackToLines(t *testing.T) {
	h, _ := newTestHandlers(t)
	h.AI = &stubGenerator{Text: "- Unlimited sessions\n- Offline mode\n"}

	body := `{"planTier": "lifetime"}`
	w := performRequest(aiRouter(h), http.MethodPost, "/api/admin/content/features", jsonBody(body))
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Features []string `json:"features"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []string{"Unlimited sessions", "Offline mode"}, resp.Features)
}

func TestGenerateFeatureListUnknownTier(t *testing.T) {
	h, _ := newTestHandlers(t)
	stub := &stubGenerator{Text: "unused"}
	h.AI = stub

	body := `{"planTier": "free"}`
	w := performRequest(aiRouter(h), http.MethodPost, "/api/admin/content/features", jsonBody(body))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 0, stub.Calls)
}
