package handlers

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gosimple/slug"
	"github.com/halcyon-app/halcyon-api/internal/models"
	"go.uber.org/zap"
)

//
// --- Admin Category Handlers ---
//

// ListAdminCategories is the handler for GET /api/admin/categories
func (h *Handlers) ListAdminCategories(c *gin.Context) {
	query := `
		SELECT id, category_name, icon_name, route_path, display_order, is_active, created_at, updated_at
		FROM admin_categories
		ORDER BY display_order ASC, id ASC`

	rows, err := h.DB.Query(query)
	if err != nil {
		h.Log.Error("category list query failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database query failed"})
		return
	}
	defer rows.Close()

	var categories []*models.AdminCategory
	for rows.Next() {
		var category models.AdminCategory
		if err := rows.Scan(
			&category.ID,
			&category.CategoryName,
			&category.IconName,
			&category.RoutePath,
			&category.DisplayOrder,
			&category.IsActive,
			&category.CreatedAt,
			&category.UpdatedAt,
		); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to scan category row"})
			return
		}
		categories = append(categories, &category)
	}
	if err = rows.Err(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error iterating category rows"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// CreateAdminCategoryInput defines the JSON input for creating a category
type CreateAdminCategoryInput struct {
	CategoryName string `json:"categoryName" binding:"required"`
	IconName     string `json:"iconName" binding:"required"`
	RoutePath    string `json:"routePath"`
	DisplayOrder int    `json:"displayOrder"`
}

// CreateAdminCategory is the handler for POST /api/admin/categories
// An omitted routePath is derived from the category name.
func (h *Handlers) CreateAdminCategory(c *gin.Context) {
	var input CreateAdminCategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	routePath := input.RoutePath
	if routePath == "" {
		routePath = "/" + slug.Make(input.CategoryName)
	}

	now := time.Now()
	category := &models.AdminCategory{
		CategoryName: input.CategoryName,
		IconName:     input.IconName,
		RoutePath:    routePath,
		DisplayOrder: input.DisplayOrder,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	query := `
		INSERT INTO admin_categories
		(category_name, icon_name, route_path, display_order, is_active, created_at, updated_at)
		VALUES (?, ?, ?, ?, 1, ?, ?)`

	result, err := h.DB.Exec(query,
		category.CategoryName, category.IconName, category.RoutePath,
		category.DisplayOrder, category.CreatedAt, category.UpdatedAt)
	if err != nil {
		h.Log.Error("category insert failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create category"})
		return
	}

	id, err := result.LastInsertId()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get new category ID"})
		return
	}
	category.ID = id

	c.JSON(http.StatusCreated, gin.H{"category": category})
}

// UpdateAdminCategoryInput carries only the fields the client wants changed.
type UpdateAdminCategoryInput struct {
	CategoryName *string `json:"categoryName"`
	IconName     *string `json:"iconName"`
	RoutePath    *string `json:"routePath"`
	DisplayOrder *int    `json:"displayOrder"`
	IsActive     *bool   `json:"isActive"`
}

// UpdateAdminCategory is the handler for PATCH /api/admin/categories/:id
func (h *Handlers) UpdateAdminCategory(c *gin.Context) {
	var input UpdateAdminCategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	set := []string{}
	args := []interface{}{}
	if input.CategoryName != nil {
		set = append(set, "category_name = ?")
		args = append(args, *input.CategoryName)
	}
	if input.IconName != nil {
		set = append(set, "icon_name = ?")
		args = append(args, *input.IconName)
	}
	if input.RoutePath != nil {
		set = append(set, "route_path = ?")
		args = append(args, *input.RoutePath)
	}
	if input.DisplayOrder != nil {
		set = append(set, "display_order = ?")
		args = append(args, *input.DisplayOrder)
	}
	if input.IsActive != nil {
		set = append(set, "is_active = ?")
		args = append(args, *input.IsActive)
	}
	if len(set) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No fields to update"})
		return
	}

	categoryID := c.Param("id")

	var existingID int64
	err := h.DB.QueryRow("SELECT id FROM admin_categories WHERE id = ?", categoryID).Scan(&existingID)
	if errors.Is(err, sql.ErrNoRows) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database query failed"})
		return
	}

	set = append(set, "updated_at = ?")
	args = append(args, time.Now(), categoryID)

	query := fmt.Sprintf("UPDATE admin_categories SET %s WHERE id = ?", strings.Join(set, ", "))
	if _, err := h.DB.Exec(query, args...); err != nil {
		h.Log.Error("category update failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update category"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Category updated"})
}

// DeleteAdminCategory is the handler for DELETE /api/admin/categories/:id
func (h *Handlers) DeleteAdminCategory(c *gin.Context) {
	result, err := h.DB.Exec("DELETE FROM admin_categories WHERE id = ?", c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete category"})
		return
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check affected rows"})
		return
	}
	if rowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Category deleted"})
}
