package models

import "time"

// AdminCategory defines the model for the 'admin_categories' table
type AdminCategory struct {
	ID           int64     `json:"id" db:"id"`
	CategoryName string    `json:"categoryName" db:"category_name"`
	IconName     string    `json:"iconName" db:"icon_name"`
	RoutePath    string    `json:"routePath" db:"route_path"`
	DisplayOrder int       `json:"displayOrder" db:"display_order"`
	IsActive     bool      `json:"isActive" db:"is_active"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`
}
