package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/halcyon-app/halcyon-api/internal/ai"
	"go.uber.org/zap"
)

//
// --- AI Content Handlers ---
//
// Each endpoint maps a closed enum onto a canned system prompt and
// forwards one completion call. Unknown enum values are rejected before
// the model is ever contacted.
//

// GenerateContentInput defines the JSON input for admin copy generation
type GenerateContentInput struct {
	ContentType string `json:"contentType" binding:"required"`
	Context     string `json:"context"`
}

// GenerateContent is the handler for POST /api/admin/content/generate
func (h *Handlers) GenerateContent(c *gin.Context) {
	var input GenerateContentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	systemPrompt, ok := ai.SystemPrompt(ai.ContentKind(input.ContentType))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown content type: " + input.ContentType})
		return
	}

	userPrompt := "Write the copy now."
	if input.Context != "" {
		userPrompt = "Context: " + input.Context + "\n\n" + userPrompt
	}

	text, err := h.AI.Generate(c.Request.Context(), systemPrompt, userPrompt)
	if err != nil {
		h.Log.Error("content generation failed", zap.Error(err), zap.String("contentType", input.ContentType))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Content generation failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"content": text})
}

// ImproveContentInput defines the JSON input for the rewrite endpoint
type ImproveContentInput struct {
	Text    string `json:"text" binding:"required"`
	Tone    string `json:"tone" binding:"required"`
	Context string `json:"context"`
}

// ImproveContent is the handler for POST /api/admin/content/improve
func (h *Handlers) ImproveContent(c *gin.Context) {
	var input ImproveContentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	systemPrompt, ok := ai.TonePrompt(ai.Tone(input.Tone))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown tone: " + input.Tone})
		return
	}

	userPrompt := input.Text
	if input.Context != "" {
		userPrompt = "Context: " + input.Context + "\n\n" + userPrompt
	}

	text, err := h.AI.Generate(c.Request.Context(), systemPrompt, userPrompt)
	if err != nil {
		h.Log.Error("content rewrite failed", zap.Error(err), zap.String("tone", input.Tone))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Content generation failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"content": text})
}

// FeatureListInput defines the JSON input for the plan feature endpoint
type FeatureListInput struct {
	PlanTier string `json:"planTier" binding:"required"`
}

// GenerateFeatureList is the handler for POST /api/admin/content/features
// The model is asked for a JSON array; when it answers with anything
// else, ai.ParseFeatureList degrades to line splitting.
func (h *Handlers) GenerateFeatureList(c *gin.Context) {
	var input FeatureListInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	systemPrompt, ok := ai.PlanPrompt(ai.PlanTier(input.PlanTier))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown plan tier: " + input.PlanTier})
		return
	}

	text, err := h.AI.Generate(c.Request.Context(), systemPrompt, "List the features now.")
	if err != nil {
		h.Log.Error("feature list generation failed", zap.Error(err), zap.String("planTier", input.PlanTier))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Content generation failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"features": ai.ParseFeatureList(text)})
}
