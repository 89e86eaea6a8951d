package handlers

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/halcyon-app/halcyon-api/internal/models"
	"go.uber.org/zap"
)

//
// --- Visual Theme Handlers ---
//
// Themes are read-mostly: no delete endpoint. At most one theme is
// active; activation flips the rest off in the same transaction.
//

const themeColumns = `id, name, primary_color, secondary_color, accent_color,
	background_color, surface_color, text_color, muted_color, is_active, created_at, updated_at`

func scanTheme(row interface{ Scan(...interface{}) error }, theme *models.VisualTheme) error {
	return row.Scan(
		&theme.ID,
		&theme.Name,
		&theme.PrimaryColor,
		&theme.SecondaryColor,
		&theme.AccentColor,
		&theme.BackgroundColor,
		&theme.SurfaceColor,
		&theme.TextColor,
		&theme.MutedColor,
		&theme.IsActive,
		&theme.CreatedAt,
		&theme.UpdatedAt,
	)
}

// ListThemes is the handler for GET /api/themes
func (h *Handlers) ListThemes(c *gin.Context) {
	rows, err := h.DB.Query("SELECT " + themeColumns + " FROM visual_themes ORDER BY created_at DESC")
	if err != nil {
		h.Log.Error("theme list query failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database query failed"})
		return
	}
	defer rows.Close()

	var themes []*models.VisualTheme
	for rows.Next() {
		var theme models.VisualTheme
		if err := scanTheme(rows, &theme); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to scan theme row"})
			return
		}
		themes = append(themes, &theme)
	}
	if err = rows.Err(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error iterating theme rows"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"themes": themes})
}

// GetActiveTheme is the handler for GET /api/themes/active
func (h *Handlers) GetActiveTheme(c *gin.Context) {
	var theme models.VisualTheme
	row := h.DB.QueryRow("SELECT " + themeColumns + " FROM visual_themes WHERE is_active = 1 LIMIT 1")
	err := scanTheme(row, &theme)
	if errors.Is(err, sql.ErrNoRows) {
		c.JSON(http.StatusNotFound, gin.H{"error": "No active theme"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database query failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"theme": theme})
}

// CreateThemeInput defines the JSON input for creating a theme
type CreateThemeInput struct {
	Name            string `json:"name" binding:"required"`
	PrimaryColor    string `json:"primaryColor" binding:"required"`
	SecondaryColor  string `json:"secondaryColor" binding:"required"`
	AccentColor     string `json:"accentColor" binding:"required"`
	BackgroundColor string `json:"backgroundColor" binding:"required"`
	SurfaceColor    string `json:"surfaceColor" binding:"required"`
	TextColor       string `json:"textColor" binding:"required"`
	MutedColor      string `json:"mutedColor" binding:"required"`
}

// CreateTheme is the handler for POST /api/themes
func (h *Handlers) CreateTheme(c *gin.Context) {
	var input CreateThemeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	now := time.Now()
	theme := &models.VisualTheme{
		Name:            input.Name,
		PrimaryColor:    input.PrimaryColor,
		SecondaryColor:  input.SecondaryColor,
		AccentColor:     input.AccentColor,
		BackgroundColor: input.BackgroundColor,
		SurfaceColor:    input.SurfaceColor,
		TextColor:       input.TextColor,
		MutedColor:      input.MutedColor,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	query := `
		INSERT INTO visual_themes
		(name, primary_color, secondary_color, accent_color, background_color,
		 surface_color, text_color, muted_color, is_active, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, 0, ?, ?)`

	result, err := h.DB.Exec(query,
		theme.Name, theme.PrimaryColor, theme.SecondaryColor, theme.AccentColor,
		theme.BackgroundColor, theme.SurfaceColor, theme.TextColor, theme.MutedColor,
		theme.CreatedAt, theme.UpdatedAt)
	if err != nil {
		h.Log.Error("theme insert failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create theme"})
		return
	}

	id, err := result.LastInsertId()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get new theme ID"})
		return
	}
	theme.ID = id

	c.JSON(http.StatusCreated, gin.H{"theme": theme})
}

// UpdateThemeInput carries only the fields the client wants changed.
type UpdateThemeInput struct {
	Name            *string `json:"name"`
	PrimaryColor    *string `json:"primaryColor"`
	SecondaryColor  *string `json:"secondaryColor"`
	AccentColor     *string `json:"accentColor"`
	BackgroundColor *string `json:"backgroundColor"`
	SurfaceColor    *string `json:"surfaceColor"`
	TextColor       *string `json:"textColor"`
	MutedColor      *string `json:"mutedColor"`
}

// UpdateTheme is the handler for PATCH /api/themes/:id
// Partial update: only fields present in the body are applied, and
// updated_at always refreshes.
func (h *Handlers) UpdateTheme(c *gin.Context) {
	var input UpdateThemeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	set := []string{}
	args := []interface{}{}
	add := func(column string, v *string) {
		if v != nil {
			set = append(set, column+" = ?")
			args = append(args, *v)
		}
	}
	add("name", input.Name)
	add("primary_color", input.PrimaryColor)
	add("secondary_color", input.SecondaryColor)
	add("accent_color", input.AccentColor)
	add("background_color", input.BackgroundColor)
	add("surface_color", input.SurfaceColor)
	add("text_color", input.TextColor)
	add("muted_color", input.MutedColor)

	if len(set) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No fields to update"})
		return
	}

	themeID := c.Param("id")

	var existingID int64
	err := h.DB.QueryRow("SELECT id FROM visual_themes WHERE id = ?", themeID).Scan(&existingID)
	if errors.Is(err, sql.ErrNoRows) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Theme not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database query failed"})
		return
	}

	set = append(set, "updated_at = ?")
	args = append(args, time.Now(), themeID)

	query := fmt.Sprintf("UPDATE visual_themes SET %s WHERE id = ?", strings.Join(set, ", "))
	if _, err := h.DB.Exec(query, args...); err != nil {
		h.Log.Error("theme update failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update theme"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Theme updated"})
}

// ActivateTheme is the handler for POST /api/themes/:id/activate
// Deactivate-all plus activate-one runs in a single transaction so two
// themes can never both read active.
func (h *Handlers) ActivateTheme(c *gin.Context) {
	themeID := c.Param("id")

	tx, err := h.DB.Begin()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start transaction"})
		return
	}
	defer tx.Rollback()

	if _, err := tx.Exec("UPDATE visual_themes SET is_active = 0 WHERE is_active = 1"); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to deactivate themes"})
		return
	}

	result, err := tx.Exec("UPDATE visual_themes SET is_active = 1, updated_at = ? WHERE id = ?", time.Now(), themeID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to activate theme"})
		return
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check affected rows"})
		return
	}
	if rowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Theme not found"})
		return
	}

	if err := tx.Commit(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to commit activation"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Theme activated"})
}
