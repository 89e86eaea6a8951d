package handlers

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/halcyon-app/halcyon-api/internal/dates"
	"github.com/halcyon-app/halcyon-api/internal/models"
	"go.uber.org/zap"
)

//
// --- Rhythm Visual Handlers ---
//

// ListRhythmVisuals is the handler for GET /api/visuals/rhythm
// Filters: ?month=1..12 (defaults to the current month) and an optional
// ?category=. Ordered by display_order.
func (h *Handlers) ListRhythmVisuals(c *gin.Context) {
	month := int(h.now().Month())
	if raw := c.Query("month"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 12 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "month must be 1-12"})
			return
		}
		month = parsed
	}

	query := `
		SELECT id, rhythm_category, rhythm_name, image_url, video_url, month_active, display_order, created_at
		FROM rhythm_visuals
		WHERE month_active = ?`
	args := []interface{}{month}

	if category := c.Query("category"); category != "" {
		query += " AND rhythm_category = ?"
		args = append(args, category)
	}
	query += " ORDER BY display_order ASC, id ASC"

	rows, err := h.DB.Query(query, args...)
	if err != nil {
		h.Log.Error("rhythm visual query failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database query failed"})
		return
	}
	defer rows.Close()

	var visuals []*models.RhythmVisual
	for rows.Next() {
		var visual models.RhythmVisual
		if err := rows.Scan(
			&visual.ID,
			&visual.RhythmCategory,
			&visual.RhythmName,
			&visual.ImageURL,
			&visual.VideoURL,
			&visual.MonthActive,
			&visual.DisplayOrder,
			&visual.CreatedAt,
		); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to scan visual row"})
			return
		}
		visuals = append(visuals, &visual)
	}
	if err = rows.Err(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error iterating visual rows"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"visuals": visuals})
}

// CreateRhythmVisualInput defines the JSON input for a rhythm visual
type CreateRhythmVisualInput struct {
	RhythmCategory string  `json:"rhythmCategory" binding:"required"`
	RhythmName     string  `json:"rhythmName" binding:"required"`
	ImageURL       string  `json:"imageUrl" binding:"required"`
	VideoURL       *string `json:"videoUrl"`
	MonthActive    int     `json:"monthActive" binding:"required,min=1,max=12"`
	DisplayOrder   int     `json:"displayOrder"`
}

// CreateRhythmVisual is the handler for POST /api/visuals/rhythm
func (h *Handlers) CreateRhythmVisual(c *gin.Context) {
	var input CreateRhythmVisualInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	visual := &models.RhythmVisual{
		RhythmCategory: input.RhythmCategory,
		RhythmName:     input.RhythmName,
		ImageURL:       input.ImageURL,
		VideoURL:       input.VideoURL,
		MonthActive:    input.MonthActive,
		DisplayOrder:   input.DisplayOrder,
		CreatedAt:      time.Now(),
	}

	result, err := h.DB.Exec(`
		INSERT INTO rhythm_visuals
		(rhythm_category, rhythm_name, image_url, video_url, month_active, display_order, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		visual.RhythmCategory, visual.RhythmName, visual.ImageURL, visual.VideoURL,
		visual.MonthActive, visual.DisplayOrder, visual.CreatedAt)
	if err != nil {
		h.Log.Error("rhythm visual insert failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create visual"})
		return
	}

	id, err := result.LastInsertId()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get new visual ID"})
		return
	}
	visual.ID = id

	c.JSON(http.StatusCreated, gin.H{"visual": visual})
}

// DeleteRhythmVisual is the handler for DELETE /api/visuals/rhythm/:id
func (h *Handlers) DeleteRhythmVisual(c *gin.Context) {
	result, err := h.DB.Exec("DELETE FROM rhythm_visuals WHERE id = ?", c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete visual"})
		return
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check affected rows"})
		return
	}
	if rowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Rhythm visual not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Rhythm visual deleted"})
}

//
// --- Renewal Visual Handlers ---
//

const renewalColumns = "id, visual_type, season, month, day_of_week, image_url, description, created_at"

func scanRenewal(row interface{ Scan(...interface{}) error }, v *models.RenewalVisual) error {
	return row.Scan(
		&v.ID,
		&v.VisualType,
		&v.Season,
		&v.Month,
		&v.DayOfWeek,
		&v.ImageURL,
		&v.Description,
		&v.CreatedAt,
	)
}

// GetCurrentRenewalVisual is the handler for GET /api/visuals/renewal/current
// Priority fallback evaluated fresh on every request, no caching:
// seasonal match, else monthly, else day-of-week, else any row at all,
// else 404. Ties within a tier break on LIMIT 1.
func (h *Handlers) GetCurrentRenewalVisual(c *gin.Context) {
	now := h.now()
	season := dates.Season(now.Month())
	month := int(now.Month())
	dayOfWeek := int(now.Weekday())

	tiers := []struct {
		query string
		args  []interface{}
	}{
		{"SELECT " + renewalColumns + " FROM renewal_visuals WHERE visual_type = 'seasonal' AND season = ? LIMIT 1", []interface{}{season}},
		{"SELECT " + renewalColumns + " FROM renewal_visuals WHERE visual_type = 'monthly' AND month = ? LIMIT 1", []interface{}{month}},
		{"SELECT " + renewalColumns + " FROM renewal_visuals WHERE visual_type = 'daily' AND day_of_week = ? LIMIT 1", []interface{}{dayOfWeek}},
		{"SELECT " + renewalColumns + " FROM renewal_visuals LIMIT 1", nil},
	}

	for _, tier := range tiers {
		var visual models.RenewalVisual
		err := scanRenewal(h.DB.QueryRow(tier.query, tier.args...), &visual)
		if errors.Is(err, sql.ErrNoRows) {
			continue
		}
		if err != nil {
			h.Log.Error("renewal visual query failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database query failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"visual": visual})
		return
	}

	c.JSON(http.StatusNotFound, gin.H{"error": "No renewal visuals configured"})
}

// ListRenewalVisuals is the handler for GET /api/visuals/renewal
func (h *Handlers) ListRenewalVisuals(c *gin.Context) {
	rows, err := h.DB.Query("SELECT " + renewalColumns + " FROM renewal_visuals ORDER BY created_at DESC")
	if err != nil {
		h.Log.Error("renewal list query failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database query failed"})
		return
	}
	defer rows.Close()

	var visuals []*models.RenewalVisual
	for rows.Next() {
		var visual models.RenewalVisual
		if err := scanRenewal(rows, &visual); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to scan visual row"})
			return
		}
		visuals = append(visuals, &visual)
	}
	if err = rows.Err(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error iterating visual rows"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"visuals": visuals})
}

// CreateRenewalVisualInput defines the JSON input for a renewal visual.
// The discriminant field must match the visual type.
type CreateRenewalVisualInput struct {
	VisualType  string  `json:"visualType" binding:"required,oneof=seasonal monthly daily"`
	Season      *string `json:"season" binding:"omitempty,oneof=spring summer fall winter"`
	Month       *int    `json:"month" binding:"omitempty,min=1,max=12"`
	DayOfWeek   *int    `json:"dayOfWeek" binding:"omitempty,min=0,max=6"`
	ImageURL    string  `json:"imageUrl" binding:"required"`
	Description *string `json:"description"`
}

// CreateRenewalVisual is the handler for POST /api/visuals/renewal
func (h *Handlers) CreateRenewalVisual(c *gin.Context) {
	var input CreateRenewalVisualInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	switch input.VisualType {
	case "seasonal":
		if input.Season == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "seasonal visuals require a season"})
			return
		}
	case "monthly":
		if input.Month == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "monthly visuals require a month"})
			return
		}
	case "daily":
		if input.DayOfWeek == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "daily visuals require a dayOfWeek"})
			return
		}
	}

	visual := &models.RenewalVisual{
		VisualType:  input.VisualType,
		Season:      input.Season,
		Month:       input.Month,
		DayOfWeek:   input.DayOfWeek,
		ImageURL:    input.ImageURL,
		Description: input.Description,
		CreatedAt:   time.Now(),
	}

	result, err := h.DB.Exec(`
		INSERT INTO renewal_visuals
		(visual_type, season, month, day_of_week, image_url, description, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		visual.VisualType, visual.Season, visual.Month, visual.DayOfWeek,
		visual.ImageURL, visual.Description, visual.CreatedAt)
	if err != nil {
		h.Log.Error("renewal visual insert failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create visual"})
		return
	}

	id, err := result.LastInsertId()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get new visual ID"})
		return
	}
	visual.ID = id

	c.JSON(http.StatusCreated, gin.H{"visual": visual})
}

// DeleteRenewalVisual is the handler for DELETE /api/visuals/renewal/:id
func (h *Handlers) DeleteRenewalVisual(c *gin.Context) {
	result, err := h.DB.Exec("DELETE FROM renewal_visuals WHERE id = ?", c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete visual"})
		return
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check affected rows"})
		return
	}
	if rowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Renewal visual not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Renewal visual deleted"})
}
