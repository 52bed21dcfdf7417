package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type CategoryAdminDTO struct {
	ID           uint      `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	ImageURL     string    `json:"image_url"`
	IsActive     bool      `json:"is_active"`
	DisplayOrder int       `json:"display_order"`
	ItemCount    int64     `json:"item_count"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// MenuItemDTO is a menu row joined with its category and rating rollup.
// Missing rollups read as zero.
type MenuItemDTO struct {
	ID              uint            `json:"id"`
	CategoryID      uint            `json:"category_id"`
	CategoryName    string          `json:"category_name"`
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	Price           decimal.Decimal `json:"price"`
	ImageURL        string          `json:"image_url"`
	IsAvailable     bool            `json:"is_available"`
	IsFeatured      bool            `json:"is_featured"`
	PreparationTime int             `json:"preparation_time"`
	AverageRating   decimal.Decimal `json:"average_rating"`
	TotalRatings    int             `json:"total_ratings"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}
